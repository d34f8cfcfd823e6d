// Package dmatch builds and analyzes D(G, M), the directed graph the
// enumeration engine uses to discover alternating cycles (and, when no
// perfect matching exists, alternating paths) around a given matching M of a
// bipartite graph G.
//
// D(G, M) has the same vertex set as G. Every matched edge of M becomes an
// arc bottom→top; every unmatched edge of G becomes an arc top→bottom. An
// alternating cycle of G through M corresponds exactly to a directed cycle
// of D(G, M), so Uno's algorithm reduces "find another matching reachable
// from M by flipping one alternating cycle" to "find a directed cycle", a
// problem gonum's Tarjan SCC decomposition answers for free: an arc can lie
// on some directed cycle only if both its endpoints are in the same
// nontrivial strongly connected component, so discarding every other arc
// before searching shrinks the search space without changing the answer.
package dmatch
