// Package bimatch enumerates, without repetition, every perfect matching and
// every maximum matching of a finite undirected bipartite graph.
//
// It implements the two enumeration algorithms of Takeaki Uno (ISAAC '97,
// "Algorithms for Enumerating All Perfect, Maximum and Maximal Matchings in
// Bipartite Graphs"): perfect-matching enumeration and maximum-matching
// enumeration, each with polynomial delay between successive results. The
// maximum-matching enumeration pivots only around exposed top vertices when
// no alternating cycle remains, so it is complete when every maximum matching
// covers every bottom vertex that has an edge; see
// enumerate.EnumMaximumMatchings.
//
// Subpackages:
//
//	bipgraph/  — bipartite graph model: top/bottom vertices, edges, and the
//	             two derived-graph operations (without an edge, without an
//	             edge's endpoints) the recursion branches on.
//	matching/  — the Matching value type (a top→bottom mapping) and the
//	             restriction/clone operations used across recursion frames.
//	seedmatch/ — an augmenting-path maximum bipartite matcher, used once per
//	             top-level call to seed enumeration.
//	dmatch/    — construction of the directed matching graph D(G, M), its
//	             SCC trimming, cycle search with normalization and flip, and
//	             the length-2 feasible-path search for non-perfect maxima.
//	enumerate/ — EnumPerfectMatchings and EnumMaximumMatchings: the two
//	             exported lazy sequences that drive the recursion.
//
// Quick example:
//
//	g := bipgraph.NewGraph()
//	t0, t1 := g.AddVertex(bipgraph.Top), g.AddVertex(bipgraph.Top)
//	b0, b1 := g.AddVertex(bipgraph.Bottom), g.AddVertex(bipgraph.Bottom)
//	g.AddEdge(t0, b0)
//	g.AddEdge(t0, b1)
//	g.AddEdge(t1, b0)
//	g.AddEdge(t1, b1)
//	for m := range enumerate.EnumPerfectMatchings(context.Background(), g) {
//	    fmt.Println(m.Pairs())
//	}
package bimatch
