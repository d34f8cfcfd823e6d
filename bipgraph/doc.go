// Package bipgraph defines the bipartite graph model the enumeration engine
// operates over: vertices carry an immutable top/bottom side label, edges
// always run between the two sides, and the two derived-graph operations the
// recursion branches on — dropping a single edge, and dropping an edge's two
// endpoints together with everything incident to them — always return a
// fresh, independent graph.
//
// Vertices are canonicalized to dense int64 identifiers at ingress (see
// AddVertex), so a Vertex value doubles as a gonum graph.Node and can be
// used directly as a node in the digraphs the dmatch package builds on top
// of a Graph.
package bipgraph
