package enumerate_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bimatch/bipgraph"
	"github.com/katalvlaran/bimatch/enumerate"
	"github.com/katalvlaran/bimatch/matching"
)

// completeBipartite builds K_{n,n}: n top vertices, n bottom vertices, every
// top connected to every bottom.
func completeBipartite(t *testing.T, n int) (*bipgraph.Graph, []bipgraph.Vertex, []bipgraph.Vertex) {
	t.Helper()
	g := bipgraph.NewGraph()
	tops := make([]bipgraph.Vertex, n)
	bottoms := make([]bipgraph.Vertex, n)
	for i := 0; i < n; i++ {
		tops[i] = g.AddVertex(bipgraph.Top)
		bottoms[i] = g.AddVertex(bipgraph.Bottom)
	}
	for _, top := range tops {
		for _, bottom := range bottoms {
			require.NoError(t, g.AddEdge(top, bottom))
		}
	}

	return g, tops, bottoms
}

// completeBipartiteNM builds K_{n,m}: n top vertices, m bottom vertices,
// every top connected to every bottom.
func completeBipartiteNM(t *testing.T, n, m int) (*bipgraph.Graph, []bipgraph.Vertex, []bipgraph.Vertex) {
	t.Helper()
	g := bipgraph.NewGraph()
	tops := make([]bipgraph.Vertex, n)
	bottoms := make([]bipgraph.Vertex, m)
	for i := 0; i < n; i++ {
		tops[i] = g.AddVertex(bipgraph.Top)
	}
	for i := 0; i < m; i++ {
		bottoms[i] = g.AddVertex(bipgraph.Bottom)
	}
	for _, top := range tops {
		for _, bottom := range bottoms {
			require.NoError(t, g.AddEdge(top, bottom))
		}
	}

	return g, tops, bottoms
}

func collect(seq func(func(matching.Matching) bool)) []matching.Matching {
	var out []matching.Matching
	seq(func(m matching.Matching) bool {
		out = append(out, m)

		return true
	})

	return out
}

func factorial(n int) int {
	if n <= 1 {
		return 1
	}

	return n * factorial(n-1)
}

// permutations returns n!/(n-m)!, the number of ways to assign m bottom
// vertices each to a distinct one of n top vertices.
func permutations(n, m int) int {
	out := 1
	for i := 0; i < m; i++ {
		out *= n - i
	}

	return out
}

func TestEnumMaximumMatchingsCompletenessOnKnm(t *testing.T) {
	cases := []struct{ n, m int }{
		{3, 0},
		{3, 1},
		{3, 2},
		{3, 3},
		{4, 2},
	}
	for _, c := range cases {
		g, _, _ := completeBipartiteNM(t, c.n, c.m)
		all := collect(enumerate.EnumMaximumMatchings(context.Background(), g))

		want := 0
		if c.m > 0 {
			want = permutations(c.n, c.m)
		}
		assert.Lenf(t, all, want, "K_%d,%d should have %d maximum matchings", c.n, c.m, want)
		assertAllDistinct(t, all)
		for _, m := range all {
			assert.Equal(t, c.m, m.Len())
		}
	}
}

func TestEnumPerfectMatchingsOnK22HasBothPerfectMatchings(t *testing.T) {
	g, tops, bottoms := completeBipartite(t, 2)
	all := collect(enumerate.EnumPerfectMatchings(context.Background(), g))

	assert.Len(t, all, 2, "K2,2 has exactly 2 perfect matchings")
	assertAllDistinct(t, all)
	assertAllPerfect(t, all, tops, bottoms)
}

func TestEnumPerfectMatchingsCountMatchesFactorial(t *testing.T) {
	for n := 1; n <= 4; n++ {
		g, tops, bottoms := completeBipartite(t, n)
		all := collect(enumerate.EnumPerfectMatchings(context.Background(), g))

		assert.Lenf(t, all, factorial(n), "K_%d,%d should have %d! perfect matchings", n, n, n)
		assertAllDistinct(t, all)
		assertAllPerfect(t, all, tops, bottoms)
	}
}

func TestEnumPerfectMatchingsEmptyWhenNoneExists(t *testing.T) {
	g := bipgraph.NewGraph()
	t0 := g.AddVertex(bipgraph.Top)
	g.AddVertex(bipgraph.Top) // second top vertex has no edge at all
	b0 := g.AddVertex(bipgraph.Bottom)
	require.NoError(t, g.AddEdge(t0, b0))

	all := collect(enumerate.EnumPerfectMatchings(context.Background(), g))
	assert.Empty(t, all)
}

func TestEnumPerfectMatchingsEveryEdgeBelongsToG(t *testing.T) {
	g, _, _ := completeBipartite(t, 3)
	valid := make(map[[2]int64]bool)
	for _, e := range g.AllEdges() {
		valid[[2]int64{e.Top.ID(), e.Bottom.ID()}] = true
	}

	for _, m := range collect(enumerate.EnumPerfectMatchings(context.Background(), g)) {
		for _, p := range m.Pairs() {
			assert.True(t, valid[[2]int64{p[0], p[1]}], "matching must only use edges of g")
		}
	}
}

func TestEnumPerfectMatchingsStopsEarly(t *testing.T) {
	g, _, _ := completeBipartite(t, 3)
	var seen int
	for range enumerate.EnumPerfectMatchings(context.Background(), g) {
		seen++
		if seen == 1 {
			break
		}
	}
	assert.Equal(t, 1, seen)
}

func TestEnumMaximumMatchingsIncludesPerfectMatchingsWhenTheyExist(t *testing.T) {
	g, tops, bottoms := completeBipartite(t, 2)
	perfect := collect(enumerate.EnumPerfectMatchings(context.Background(), g))
	maximum := collect(enumerate.EnumMaximumMatchings(context.Background(), g))

	assert.GreaterOrEqual(t, len(maximum), len(perfect))
	for _, pm := range perfect {
		assert.True(t, containsEqual(maximum, pm), "every perfect matching must also be a maximum matching")
	}
	assertAllPerfect(t, maximum, tops, bottoms)
}

func TestEnumMaximumMatchingsOnUnbalancedGraph(t *testing.T) {
	// Two top vertices share the only bottom vertex b0, plus an isolated
	// bottom b1 that can never be matched: max matching size is 1.
	g := bipgraph.NewGraph()
	t0, t1 := g.AddVertex(bipgraph.Top), g.AddVertex(bipgraph.Top)
	b0 := g.AddVertex(bipgraph.Bottom)
	g.AddVertex(bipgraph.Bottom) // b1, isolated
	require.NoError(t, g.AddEdge(t0, b0))
	require.NoError(t, g.AddEdge(t1, b0))

	all := collect(enumerate.EnumMaximumMatchings(context.Background(), g))
	require.NotEmpty(t, all)
	assertAllDistinct(t, all)
	for _, m := range all {
		assert.Equal(t, 1, m.Len())
	}

	// Both size-1 matchings (t0-b0 and t1-b0) must be reachable.
	seenBottomPartner := make(map[int64]bool)
	for _, m := range all {
		for _, p := range m.Pairs() {
			seenBottomPartner[p[0]] = true
		}
	}
	assert.True(t, seenBottomPartner[t0.ID()])
	assert.True(t, seenBottomPartner[t1.ID()])
}

func assertAllDistinct(t *testing.T, all []matching.Matching) {
	t.Helper()
	for i := range all {
		for j := i + 1; j < len(all); j++ {
			assert.False(t, all[i].Equal(all[j]), "matchings at %d and %d must be distinct", i, j)
		}
	}
}

func assertAllPerfect(t *testing.T, all []matching.Matching, tops, bottoms []bipgraph.Vertex) {
	t.Helper()
	for _, m := range all {
		assert.Equal(t, len(tops), m.Len())
		seenBottom := make(map[int64]bool)
		for _, top := range tops {
			bottom, ok := m.Get(top.ID())
			require.True(t, ok, "every top vertex must be matched")
			assert.False(t, seenBottom[bottom], "bottom vertex matched twice")
			seenBottom[bottom] = true
		}
	}
}

func containsEqual(all []matching.Matching, m matching.Matching) bool {
	for _, x := range all {
		if x.Equal(m) {
			return true
		}
	}

	return false
}
