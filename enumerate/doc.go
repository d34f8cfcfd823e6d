// Package enumerate exposes the two lazy, pull-based generators that are
// the point of this module: EnumPerfectMatchings and EnumMaximumMatchings.
// Both are implemented as Go 1.23 range-over-func iterators (iter.Seq), so
// a caller that only wants the first few matchings — or wants to stop
// early — simply breaks out of the range loop; no goroutine, channel, or
// explicit cancellation handle is needed, because the generator's call
// stack is suspended by the range machinery itself and never resumes once
// the loop body returns false from the yield call.
//
// Internally both generators walk the same recursion shape, grounded on
// Uno's branch-on-edge scheme: yield the seed matching; then, in each
// recursion frame, find an alternating cycle (or, for the maximum-matching
// case with no perfect matching left, a length-2 alternating path) through
// the directed matching graph built and trimmed by dmatch, flip it to get a
// sibling matching, yield that sibling, and recurse into two disjoint
// subproblems obtained from bipgraph's
// WithoutEndpoints and WithoutEdge — one subproblem with the branching edge
// forced into the matching, the other with it forbidden.
package enumerate
