// File: path.go
// Role: the length-2 feasible-path search used when a maximum matching is
// not perfect and the SCC-trimmed D(G, M) has no directed cycle left to
// flip. A feasible path lets the enumerator pivot which vertex is left
// exposed without changing the matching's cardinality, producing a sibling
// maximum matching distinct from M.
package dmatch

import (
	"github.com/katalvlaran/bimatch/bipgraph"
	"github.com/katalvlaran/bimatch/matching"
)

// FindFeasiblePath searches for an exposed top vertex t1, an unmatched edge
// (t1, b), and a top vertex t2 matched to b, i.e. a length-2 alternating
// path t1 -> b -> t2 through one unmatched and one matched edge. Top
// vertices are tried in ID order, and for each, neighbors in ID order, so
// the result is deterministic.
//
// Complexity: O(|V| + |E|).
func FindFeasiblePath(g *bipgraph.Graph, m matching.Matching) (t1, b, t2 int64, ok bool) {
	bottomOf := make(map[int64]int64, m.Len())
	for _, p := range m.Pairs() {
		bottomOf[p[1]] = p[0]
	}

	for _, top := range g.TopVertices() {
		if m.HasTop(top.ID()) {
			continue
		}
		for _, bottom := range g.Neighbors(top) {
			if matchedTop, isMatched := bottomOf[bottom.ID()]; isMatched {
				return top.ID(), bottom.ID(), matchedTop, true
			}
		}
	}

	return 0, 0, 0, false
}

// Augment applies the feasible path found by FindFeasiblePath: t1 becomes
// matched to b, and t2 becomes the new exposed vertex. The resulting
// matching has the same cardinality as m but is not equal to it, since t1
// and t2 have swapped roles.
func Augment(m matching.Matching, t1, b, t2 int64) matching.Matching {
	out := m.Clone()
	out.Delete(t2)
	out.Set(t1, b)

	return out
}
