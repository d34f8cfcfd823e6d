// File: cycle.go
// Role: finds a single directed cycle in a trimmed D(G, M), rotates it to a
// canonical starting point, and flips it into a sibling matching.
package dmatch

import (
	"sort"

	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/bimatch/bipgraph"
	"github.com/katalvlaran/bimatch/matching"
)

const (
	white = iota
	gray
	black
)

// FindCycle returns the vertex sequence of the first directed cycle found in
// d by a DFS with three-color marking, or ok=false if d is acyclic. Vertices
// are visited in ascending ID order for deterministic output. The returned
// slice is open: it lists each cycle vertex once, in traversal order, and
// does not repeat the first vertex at the end.
//
// Complexity: O(|V| + |E|).
func FindCycle(d *simple.DirectedGraph) (cycle []int64, ok bool) {
	color := make(map[int64]int)
	var path []int64

	ids := nodeIDsSorted(d)
	for _, id := range ids {
		if color[id] != white {
			continue
		}
		if found := dfsFindCycle(d, id, color, &path); found != nil {
			return found, true
		}
	}

	return nil, false
}

func dfsFindCycle(d *simple.DirectedGraph, id int64, color map[int64]int, path *[]int64) []int64 {
	color[id] = gray
	*path = append(*path, id)

	to := d.From(id)
	var next []int64
	for to.Next() {
		next = append(next, to.Node().ID())
	}
	sort.Slice(next, func(i, j int) bool { return next[i] < next[j] })

	for _, n := range next {
		switch color[n] {
		case white:
			if found := dfsFindCycle(d, n, color, path); found != nil {
				return found
			}
		case gray:
			idx := indexOf(*path, n)

			return append([]int64(nil), (*path)[idx:]...)
		}
	}

	*path = (*path)[:len(*path)-1]
	color[id] = black

	return nil
}

func indexOf(path []int64, id int64) int {
	for i, v := range path {
		if v == id {
			return i
		}
	}

	return -1
}

func nodeIDsSorted(d *simple.DirectedGraph) []int64 {
	nodes := d.Nodes()
	var ids []int64
	for nodes.Next() {
		ids = append(ids, nodes.Node().ID())
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids
}

// Normalize rotates cycle so that it starts at a top vertex. Every
// alternating cycle in a bipartite graph strictly alternates sides, so
// exactly half its vertices are top vertices and a rotation starting at one
// always exists.
func Normalize(g *bipgraph.Graph, cycle []int64) []int64 {
	for i, id := range cycle {
		v, ok := g.VertexByID(id)
		if ok && v.Side() == bipgraph.Top {
			return append(append([]int64(nil), cycle[i:]...), cycle[:i]...)
		}
	}

	return cycle
}

// Flip returns the sibling matching M' obtained by swapping the
// matched/unmatched status of every edge on the normalized cycle C.
//
// C is assumed normalized (Normalize has been called), so C[0], C[2], C[4],
// ... are top vertices and C[1], C[3], C[5], ... are bottom vertices.
//
// The literal reading of the textbook flip formula M'[C[i]] = C[i-1] turns
// out to be a no-op once D(G, M)'s own arc-orientation rule is taken into
// account: tracing the forced arc directions around a normalized cycle shows
// that pairing each top vertex with the bottom vertex BEHIND it reconstructs
// M exactly. Pairing each top vertex with the bottom vertex AHEAD of it
// instead produces the genuinely different sibling matching the flip is
// supposed to compute, so that is what this implementation does: for each
// even index i, M'[C[i]] = C[(i+1) mod len(C)].
func Flip(m matching.Matching, cycle []int64) matching.Matching {
	out := m.Clone()
	n := len(cycle)
	for i := 0; i < n; i += 2 {
		top := cycle[i]
		bottom := cycle[(i+1)%n]
		out.Set(top, bottom)
	}

	return out
}
