// File: maximum.go
// Role: EnumMaximumMatchings and its recursive branch-on-edge helper,
// extended with the length-2 feasible-path branch for when the current
// matching is maximum but not perfect.
package enumerate

import (
	"context"
	"iter"

	"github.com/katalvlaran/bimatch/bipgraph"
	"github.com/katalvlaran/bimatch/dmatch"
	"github.com/katalvlaran/bimatch/matching"
	"github.com/katalvlaran/bimatch/seedmatch"
)

// EnumMaximumMatchings lazily yields every maximum matching of g exactly
// once: every matching of the largest cardinality any matching of g can
// reach, not merely every maximal (inclusion-wise unextendable) one.
//
// When a recursion frame has no alternating cycle left, the only pivot it
// tries is a length-2 path from an exposed top vertex
// (dmatch.FindFeasiblePath); alternating paths that start at an exposed
// bottom vertex are not followed. The sequence is therefore complete when
// every maximum matching of g covers every bottom vertex that has an edge
// (for example K_{n,m} with n ≥ m). Otherwise some maximum matchings are not
// yielded: for one top vertex adjacent to two bottom vertices, only the seed
// matching is yielded.
//
// Steps:
//  1. Seed the search with a maximum matching found by seedmatch; every
//     matching reachable from it by cycle-flips and feasible-path pivots
//     has the same cardinality, by construction.
//  2. Recurse with enumMaximumRec.
//
// ctx bounds both the seeding search and the recursion itself: it is
// checked once per recursion frame, and a canceled ctx stops the sequence
// early without a partial or corrupt final matching ever being yielded.
//
// Complexity: see EnumPerfectMatchings; the feasible-path branch adds no
// more than an O(|V| + |E|) search per recursion frame beyond the
// cycle-flip case.
func EnumMaximumMatchings(ctx context.Context, g *bipgraph.Graph) iter.Seq[matching.Matching] {
	return func(yield func(matching.Matching) bool) {
		m := seedmatch.MaximumMatching(ctx, g)
		if ctx.Err() != nil {
			return
		}
		if m.Len() == 0 {
			return
		}
		if !yield(m) {
			return
		}
		enumMaximumRec(ctx, g, m, yield)
	}
}

// enumMaximumRec assumes m has already been yielded by its caller. It
// tries a cycle flip exactly as enumPerfectRec does; if no cycle remains,
// it falls back to a length-2 feasible-path pivot (dmatch.FindFeasiblePath
// / Augment), and only stops recursing once neither is available.
func enumMaximumRec(ctx context.Context, g *bipgraph.Graph, m matching.Matching, yield func(matching.Matching) bool) bool {
	if ctx.Err() != nil {
		return false
	}
	if g.EdgeCount() == 0 {
		return true
	}

	d := dmatch.Build(g, m)
	trimmed := dmatch.Trim(d)
	if cycle, found := dmatch.FindCycle(trimmed); found {
		return branchOnCycle(ctx, g, m, cycle, yield)
	}

	if t1, b, t2, found := dmatch.FindFeasiblePath(g, m); found {
		return branchOnFeasiblePath(ctx, g, m, t1, b, t2, yield)
	}

	return true
}

// branchOnCycle mirrors enumPerfectRec's branching exactly: the cycle-flip
// formula's own derivation forces G+ to be seeded from the flipped
// matching and G- from the original one. mPrime is emitted exactly once,
// here, before either sub-recursion runs.
func branchOnCycle(ctx context.Context, g *bipgraph.Graph, m matching.Matching, cycle []int64, yield func(matching.Matching) bool) bool {
	normalized := dmatch.Normalize(g, cycle)
	mPrime := dmatch.Flip(m, normalized)
	top, bottom := normalized[0], normalized[1]
	topV, _ := g.VertexByID(top)
	bottomV, _ := g.VertexByID(bottom)

	if !yield(mPrime) {
		return false
	}

	gPlus := g.WithoutEndpoints(topV, bottomV)
	seedPlus := mPrime.Restrict(gPlus)
	forceYield := func(mm matching.Matching) bool {
		full := mm.Clone()
		full.Set(top, bottom)

		return yield(full)
	}
	if !enumMaximumRec(ctx, gPlus, seedPlus, forceYield) {
		return false
	}

	gMinus, err := g.WithoutEdge(topV, bottomV)
	if err != nil {
		return true
	}

	return enumMaximumRec(ctx, gMinus, m, yield)
}

// branchOnFeasiblePath handles the no-cycle, not-yet-perfect case. Unlike
// the cycle flip, the feasible path's pivoted matching already matches
// (t1, b) directly (dmatch.Augment), so no formula correction is needed
// here: G+ is seeded from the pivoted matching, G- from the original one,
// exactly mirroring the cycle branch's roles without the swap. mPrime is
// emitted exactly once, here, before either sub-recursion runs.
func branchOnFeasiblePath(ctx context.Context, g *bipgraph.Graph, m matching.Matching, t1, b, t2 int64, yield func(matching.Matching) bool) bool {
	mPrime := dmatch.Augment(m, t1, b, t2)
	t1V, _ := g.VertexByID(t1)
	bV, _ := g.VertexByID(b)

	if !yield(mPrime) {
		return false
	}

	gPlus := g.WithoutEndpoints(t1V, bV)
	seedPlus := mPrime.Restrict(gPlus)
	forceYield := func(mm matching.Matching) bool {
		full := mm.Clone()
		full.Set(t1, b)

		return yield(full)
	}
	if !enumMaximumRec(ctx, gPlus, seedPlus, forceYield) {
		return false
	}

	gMinus, err := g.WithoutEdge(t1V, bV)
	if err != nil {
		return true
	}

	return enumMaximumRec(ctx, gMinus, m, yield)
}
