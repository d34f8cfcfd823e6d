// File: graph.go
// Role: Graph construction and read-only queries (top/bottom enumeration,
//       neighbors, edge membership). Mutation after construction is limited
//       to AddVertex/AddEdge; the two "without" operations in derive.go
//       never mutate the receiver.
package bipgraph

import (
	"sort"

	"gonum.org/v1/gonum/graph/simple"
)

// Graph is a bipartite graph: every edge runs between a Top vertex and a
// Bottom vertex. Internally it is backed by a gonum *simple.UndirectedGraph
// keyed by dense int64 vertex IDs, with each node stored as a Vertex value
// (ID + Side) so side labels travel with the gonum node itself.
type Graph struct {
	g      *simple.UndirectedGraph
	nextID int64
}

// NewGraph returns an empty bipartite graph.
func NewGraph() *Graph {
	return &Graph{g: simple.NewUndirectedGraph()}
}

// AddVertex allocates a fresh vertex on the given side and adds it to g.
// Complexity: O(1).
func (g *Graph) AddVertex(side Side) Vertex {
	v := Vertex{id: g.nextID, side: side}
	g.nextID++
	g.g.AddNode(v)
	return v
}

// AddEdge adds an edge between a top vertex and a bottom vertex, in either
// argument order. It returns ErrSideMismatch if both vertices are on the
// same side, or ErrUnknownVertex if either vertex does not belong to g.
func (g *Graph) AddEdge(u, v Vertex) error {
	top, bottom, err := g.orient(u, v)
	if err != nil {
		return err
	}
	g.g.SetEdge(simple.Edge{F: top, T: bottom})

	return nil
}

// orient validates that {u, v} is a legal top/bottom pair present in g and
// returns (top, bottom) in canonical order.
func (g *Graph) orient(u, v Vertex) (top, bottom Vertex, err error) {
	if g.g.Node(u.id) == nil {
		return Vertex{}, Vertex{}, ErrUnknownVertex
	}
	if g.g.Node(v.id) == nil {
		return Vertex{}, Vertex{}, ErrUnknownVertex
	}
	switch {
	case u.side == Top && v.side == Bottom:
		return u, v, nil
	case u.side == Bottom && v.side == Top:
		return v, u, nil
	default:
		return Vertex{}, Vertex{}, ErrSideMismatch
	}
}

// VertexByID looks up a vertex previously returned by AddVertex. It reports
// false if id does not name a vertex of g.
func (g *Graph) VertexByID(id int64) (Vertex, bool) {
	n := g.g.Node(id)
	if n == nil {
		return Vertex{}, false
	}
	return n.(Vertex), true
}

// TopVertices returns every top-side vertex, sorted by ID for deterministic
// iteration.
func (g *Graph) TopVertices() []Vertex { return g.sideVertices(Top) }

// BottomVertices returns every bottom-side vertex, sorted by ID for
// deterministic iteration.
func (g *Graph) BottomVertices() []Vertex { return g.sideVertices(Bottom) }

func (g *Graph) sideVertices(side Side) []Vertex {
	var out []Vertex
	nodes := g.g.Nodes()
	for nodes.Next() {
		v := nodes.Node().(Vertex)
		if v.side == side {
			out = append(out, v)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].id < out[j].id })

	return out
}

// AllEdges returns every edge of g as (Top, Bottom) pairs, sorted by
// (top ID, bottom ID) for deterministic iteration.
func (g *Graph) AllEdges() []Edge {
	var out []Edge
	edges := g.g.Edges()
	for edges.Next() {
		e := edges.Edge()
		a, b := e.From().(Vertex), e.To().(Vertex)
		top, bottom := a, b
		if a.side == Bottom {
			top, bottom = b, a
		}
		out = append(out, Edge{Top: top, Bottom: bottom})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Top.id != out[j].Top.id {
			return out[i].Top.id < out[j].Top.id
		}
		return out[i].Bottom.id < out[j].Bottom.id
	})

	return out
}

// Neighbors returns every vertex adjacent to v, sorted by ID.
func (g *Graph) Neighbors(v Vertex) []Vertex {
	var out []Vertex
	it := g.g.From(v.id)
	for it.Next() {
		out = append(out, it.Node().(Vertex))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].id < out[j].id })

	return out
}

// HasEdge reports whether u and v are adjacent in g.
func (g *Graph) HasEdge(u, v Vertex) bool {
	return g.g.HasEdgeBetween(u.id, v.id)
}

// EdgeCount returns |E(G)|.
func (g *Graph) EdgeCount() int { return g.g.Edges().Len() }
