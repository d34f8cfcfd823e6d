// File: scc.go
// Role: discards every arc of D(G, M) that cannot lie on an alternating
// cycle, using Tarjan's strongly-connected-components algorithm.
package dmatch

import (
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// Trim returns a copy of d holding only the arcs whose endpoints share a
// nontrivial strongly connected component (|SCC| ≥ 2). An arc whose
// endpoints fall in different components, or in a singleton component,
// cannot lie on any directed cycle of d, so it cannot correspond to an
// alternating cycle of the underlying matching.
//
// Complexity: O(|V| + |E|), dominated by TarjanSCC.
func Trim(d *simple.DirectedGraph) *simple.DirectedGraph {
	components := topo.TarjanSCC(d)

	compOf := make(map[int64]int, d.Nodes().Len())
	for idx, comp := range components {
		for _, n := range comp {
			compOf[n.ID()] = idx
		}
	}
	compSize := make(map[int]int, len(components))
	for idx, comp := range components {
		compSize[idx] = len(comp)
	}

	out := simple.NewDirectedGraph()
	nodes := d.Nodes()
	for nodes.Next() {
		out.AddNode(nodes.Node())
	}

	edges := d.Edges()
	for edges.Next() {
		e := edges.Edge()
		from, to := e.From(), e.To()
		if compOf[from.ID()] == compOf[to.ID()] && compSize[compOf[from.ID()]] >= 2 {
			out.SetEdge(simple.Edge{F: from, T: to})
		}
	}

	return out
}
