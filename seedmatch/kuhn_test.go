package seedmatch_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bimatch/bipgraph"
	"github.com/katalvlaran/bimatch/seedmatch"
)

func TestMaximumMatchingFindsPerfectMatchingOnK22(t *testing.T) {
	g := bipgraph.NewGraph()
	t0, t1 := g.AddVertex(bipgraph.Top), g.AddVertex(bipgraph.Top)
	b0, b1 := g.AddVertex(bipgraph.Bottom), g.AddVertex(bipgraph.Bottom)
	require.NoError(t, g.AddEdge(t0, b0))
	require.NoError(t, g.AddEdge(t0, b1))
	require.NoError(t, g.AddEdge(t1, b0))
	require.NoError(t, g.AddEdge(t1, b1))

	m := seedmatch.MaximumMatching(context.Background(), g)
	assert.Equal(t, 2, m.Len())

	seen := make(map[int64]bool)
	for _, p := range m.Pairs() {
		assert.False(t, seen[p[1]], "bottom vertex matched twice")
		seen[p[1]] = true
	}
}

func TestMaximumMatchingRequiresAugmentingPath(t *testing.T) {
	// A path t0-b0-t1-b1: t0 takes b0 first, so t1's search finds b0 already
	// matched, fails to reroute t0 (b0 is t0's only neighbor), and must go on
	// to b1 to reach the size-2 matching t0-b0, t1-b1.
	g := bipgraph.NewGraph()
	t0, t1 := g.AddVertex(bipgraph.Top), g.AddVertex(bipgraph.Top)
	b0, b1 := g.AddVertex(bipgraph.Bottom), g.AddVertex(bipgraph.Bottom)
	require.NoError(t, g.AddEdge(t0, b0))
	require.NoError(t, g.AddEdge(t1, b0))
	require.NoError(t, g.AddEdge(t1, b1))

	m := seedmatch.MaximumMatching(context.Background(), g)
	assert.Equal(t, 2, m.Len(), "must find the size-2 matching t0-b0, t1-b1 past the already-matched b0")
}

func TestMaximumMatchingOnUnmatchableVertex(t *testing.T) {
	g := bipgraph.NewGraph()
	g.AddVertex(bipgraph.Top) // isolated, no edges
	b0 := g.AddVertex(bipgraph.Bottom)
	_ = b0

	m := seedmatch.MaximumMatching(context.Background(), g)
	assert.Equal(t, 0, m.Len())
}

func TestMaximumMatchingRespectsCanceledContext(t *testing.T) {
	g := bipgraph.NewGraph()
	t0 := g.AddVertex(bipgraph.Top)
	b0 := g.AddVertex(bipgraph.Bottom)
	require.NoError(t, g.AddEdge(t0, b0))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	m := seedmatch.MaximumMatching(ctx, g)
	assert.Equal(t, 0, m.Len(), "a matching search starting with a canceled context must do no work")
}
