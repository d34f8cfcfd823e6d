// File: build.go
// Role: constructs D(G, M) from a bipartite graph and a matching over it.
package dmatch

import (
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/bimatch/bipgraph"
	"github.com/katalvlaran/bimatch/matching"
)

// Build returns the directed matching graph D(G, M): every matched edge of m
// becomes an arc bottom→top, every unmatched edge of g becomes an arc
// top→bottom.
//
// Complexity: O(|V| + |E|).
func Build(g *bipgraph.Graph, m matching.Matching) *simple.DirectedGraph {
	d := simple.NewDirectedGraph()
	for _, v := range g.TopVertices() {
		d.AddNode(v)
	}
	for _, v := range g.BottomVertices() {
		d.AddNode(v)
	}

	for _, e := range g.AllEdges() {
		if bottom, ok := m.Get(e.Top.ID()); ok && bottom == e.Bottom.ID() {
			d.SetEdge(simple.Edge{F: e.Bottom, T: e.Top})
		} else {
			d.SetEdge(simple.Edge{F: e.Top, T: e.Bottom})
		}
	}

	return d
}
