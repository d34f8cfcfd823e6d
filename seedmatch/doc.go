// Package seedmatch finds a single maximum matching of a bipartite graph to
// seed the enumeration engine in enumerate.
//
// MaximumMatching is a straightforward Kuhn's-algorithm augmenting-path
// search: repeatedly pick an unmatched top vertex and try to extend the
// current matching with a path that alternates unmatched/matched edges and
// ends at an unmatched bottom vertex. This is bipartite matching phrased as
// unit-capacity max-flow via depth-first augmenting-path search, specialized
// to the 0/1-capacity, single-source-per-call case a bipartite graph gives
// for free (no residual capacity bookkeeping is needed: an edge is either
// unused, in which case it can be taken forward, or it is the matching edge
// of its bottom vertex, in which case it can only be taken backward while
// hunting for another partner for that bottom vertex).
package seedmatch
