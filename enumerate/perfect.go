// File: perfect.go
// Role: EnumPerfectMatchings and its recursive branch-on-edge helper.
package enumerate

import (
	"context"
	"iter"

	"github.com/katalvlaran/bimatch/bipgraph"
	"github.com/katalvlaran/bimatch/dmatch"
	"github.com/katalvlaran/bimatch/matching"
	"github.com/katalvlaran/bimatch/seedmatch"
)

// EnumPerfectMatchings lazily yields every perfect matching of g exactly
// once, in no particular guaranteed order beyond being deterministic for a
// given g. If g has no perfect matching, the returned sequence yields
// nothing.
//
// Steps:
//  1. Seed the search with any maximum matching of g (seedmatch). If its
//     size is smaller than either side's vertex count, g has no perfect
//     matching and the sequence is empty. Otherwise the seed is yielded.
//  2. Recurse with enumPerfectRec, which yields the sibling matching obtained
//     by flipping an alternating cycle discovered via dmatch, then branches
//     on one edge of that cycle.
//
// ctx bounds both the seeding search and the recursion itself, in the
// style of flow.FordFulkerson's own ctx parameter: it is checked once per
// recursion frame, and a canceled ctx stops the sequence early.
//
// Complexity: the delay between successive matchings is polynomial in
// |V(g)|, per Uno's analysis; the total work is polynomial per matching
// produced.
func EnumPerfectMatchings(ctx context.Context, g *bipgraph.Graph) iter.Seq[matching.Matching] {
	return func(yield func(matching.Matching) bool) {
		m := seedmatch.MaximumMatching(ctx, g)
		if m.Len() != len(g.TopVertices()) || m.Len() != len(g.BottomVertices()) {
			return
		}
		if !yield(m) {
			return
		}
		enumPerfectRec(ctx, g, m, yield)
	}
}

// enumPerfectRec assumes m has already been yielded by its caller (either
// EnumPerfectMatchings' initial seed emission, or a prior frame's own
// mPrime emission below). It finds an alternating cycle in D(g, m), emits
// the sibling matching M' exactly once, and branches into two disjoint
// recursive subproblems on the cycle's first edge. It returns false if
// yield ever returned false, or ctx was canceled, signaling the caller to
// stop immediately and unwind without further recursion.
func enumPerfectRec(ctx context.Context, g *bipgraph.Graph, m matching.Matching, yield func(matching.Matching) bool) bool {
	if ctx.Err() != nil {
		return false
	}
	if g.EdgeCount() == 0 {
		return true
	}

	d := dmatch.Build(g, m)
	trimmed := dmatch.Trim(d)
	cycle, found := dmatch.FindCycle(trimmed)
	if !found {
		return true
	}

	normalized := dmatch.Normalize(g, cycle)
	mPrime := dmatch.Flip(m, normalized)
	top, bottom := normalized[0], normalized[1]
	topV, _ := g.VertexByID(top)
	bottomV, _ := g.VertexByID(bottom)

	if !yield(mPrime) {
		return false
	}

	// G+: force edge (top, bottom) into the matching by removing both
	// endpoints from the graph. mPrime already matches (top, bottom), so
	// every matching recovered from this branch is completed by re-adding
	// that pair, via forceYield.
	gPlus := g.WithoutEndpoints(topV, bottomV)
	seedPlus := mPrime.Restrict(gPlus)
	forceYield := func(mm matching.Matching) bool {
		full := mm.Clone()
		full.Set(top, bottom)

		return yield(full)
	}
	if !enumPerfectRec(ctx, gPlus, seedPlus, forceYield) {
		return false
	}

	// G-: forbid edge (top, bottom); m itself never used it (it was the
	// unmatched arc of the cycle before the flip), so m seeds this branch
	// unmodified, and was already yielded by this frame's own caller (or,
	// at the root, by EnumPerfectMatchings directly) — it must not be
	// re-emitted here.
	gMinus, err := g.WithoutEdge(topV, bottomV)
	if err != nil {
		return true
	}

	return enumPerfectRec(ctx, gMinus, m, yield)
}
