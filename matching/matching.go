package matching

import (
	"sort"

	"github.com/katalvlaran/bimatch/bipgraph"
)

// Matching is a partial injective mapping from top vertices to bottom
// vertices. The zero value is not usable; construct with New.
type Matching struct {
	pairs map[int64]int64 // top ID -> bottom ID
}

// New returns an empty Matching.
func New() Matching {
	return Matching{pairs: make(map[int64]int64)}
}

// Clone returns an independent copy of m. Because map values are reference
// types in Go, every mutating method below must be called on a Clone, never
// directly on a Matching shared with another recursion frame.
func (m Matching) Clone() Matching {
	out := make(map[int64]int64, len(m.pairs))
	for t, b := range m.pairs {
		out[t] = b
	}

	return Matching{pairs: out}
}

// Get returns the bottom vertex top is matched to, if any.
func (m Matching) Get(top int64) (bottom int64, ok bool) {
	bottom, ok = m.pairs[top]

	return bottom, ok
}

// HasTop reports whether top is matched to some bottom vertex.
func (m Matching) HasTop(top int64) bool {
	_, ok := m.pairs[top]

	return ok
}

// Set records that top is matched to bottom, overwriting any previous
// partner for top.
func (m Matching) Set(top, bottom int64) {
	m.pairs[top] = bottom
}

// Delete removes top's pair, if any. A no-op if top is unmatched.
func (m Matching) Delete(top int64) {
	delete(m.pairs, top)
}

// Len returns |M|.
func (m Matching) Len() int { return len(m.pairs) }

// Pairs returns every (top, bottom) pair, sorted by top ID for deterministic
// output and easy test comparison.
func (m Matching) Pairs() [][2]int64 {
	out := make([][2]int64, 0, len(m.pairs))
	for t, b := range m.pairs {
		out = append(out, [2]int64{t, b})
	}
	sort.Slice(out, func(i, j int) bool { return out[i][0] < out[j][0] })

	return out
}

// Equal reports whether m and other contain exactly the same pairs.
func (m Matching) Equal(other Matching) bool {
	if len(m.pairs) != len(other.pairs) {
		return false
	}
	for t, b := range m.pairs {
		if ob, ok := other.pairs[t]; !ok || ob != b {
			return false
		}
	}

	return true
}

// Restrict returns a Clone of m with every pair dropped whose top or bottom
// vertex is no longer present in g. A matching built against a larger graph
// may reference vertices that a smaller derived graph no longer has, so
// Restrict lets that matching seed recursion over the smaller graph without
// carrying stale keys forward.
func (m Matching) Restrict(g *bipgraph.Graph) Matching {
	out := m.Clone()
	for t, b := range m.pairs {
		topV, topOK := g.VertexByID(t)
		botV, botOK := g.VertexByID(b)
		if !topOK || !botOK || topV.Side() != bipgraph.Top || botV.Side() != bipgraph.Bottom {
			out.Delete(t)
		}
	}

	return out
}
