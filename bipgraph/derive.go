// File: derive.go
// Role: the two graph-derivation operations the enumeration recursion
// branches on. Both return a fresh Graph; the receiver is left untouched,
// so sibling recursion branches never observe each other's edits.
package bipgraph

import "gonum.org/v1/gonum/graph/simple"

// WithoutEdge returns a copy of g with the single edge {u, v} removed. It
// returns ErrEdgeNotFound if the edge is not present.
//
// Complexity: O(|V| + |E|).
func (g *Graph) WithoutEdge(u, v Vertex) (*Graph, error) {
	if !g.HasEdge(u, v) {
		return nil, ErrEdgeNotFound
	}

	out := g.cloneNodes()
	for _, e := range g.AllEdges() {
		if (e.Top == u && e.Bottom == v) || (e.Top == v && e.Bottom == u) {
			continue
		}
		out.g.SetEdge(simple.Edge{F: e.Top, T: e.Bottom})
	}

	return out, nil
}

// WithoutEndpoints returns a copy of g with both u and v removed, along
// with every edge incident to either of them.
//
// Complexity: O(|V| + |E|).
func (g *Graph) WithoutEndpoints(u, v Vertex) *Graph {
	out := NewGraph()
	out.nextID = g.nextID
	for _, vv := range g.allVertices() {
		if vv == u || vv == v {
			continue
		}
		out.g.AddNode(vv)
	}
	for _, e := range g.AllEdges() {
		if e.Top == u || e.Top == v || e.Bottom == u || e.Bottom == v {
			continue
		}
		out.g.SetEdge(simple.Edge{F: e.Top, T: e.Bottom})
	}

	return out
}

// cloneNodes returns a fresh Graph holding all of g's vertices and none of
// its edges.
func (g *Graph) cloneNodes() *Graph {
	out := NewGraph()
	out.nextID = g.nextID
	for _, v := range g.allVertices() {
		out.g.AddNode(v)
	}

	return out
}

// allVertices returns every vertex of g, top and bottom combined, sorted by
// ID for deterministic copies.
func (g *Graph) allVertices() []Vertex {
	tops := g.TopVertices()
	bottoms := g.BottomVertices()
	out := make([]Vertex, 0, len(tops)+len(bottoms))
	out = append(out, tops...)
	out = append(out, bottoms...)

	return out
}
