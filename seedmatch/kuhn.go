// File: kuhn.go
// Role: the augmenting-path maximum-matching search that seeds the
// enumeration engine's first recursion frame.
package seedmatch

import (
	"context"

	"github.com/katalvlaran/bimatch/bipgraph"
	"github.com/katalvlaran/bimatch/matching"
)

// MaximumMatching returns a maximum matching of g.
//
// Steps:
//  1. For every top vertex t, in ID order, attempt to augment the current
//     matching by calling tryAugment(t) against a fresh "visited bottoms"
//     set.
//  2. tryAugment does a DFS over t's neighbors: an unvisited bottom b that
//     is currently unmatched closes the augmenting path immediately; an
//     unvisited bottom b that is matched to some t' is taken only if
//     tryAugment(t') can itself find a different partner for t'.
//  3. Every successful augmentation flips the matched/unmatched edges along
//     the discovered path, increasing |M| by exactly one.
//
// ctx bounds how long the search may run, in the style of
// flow.FordFulkerson's own ctx parameter: it is checked once per top
// vertex, and a canceled ctx stops the search early, returning whatever
// matching has been built so far rather than a maximum one.
//
// Complexity: O(V · E), the standard bound for Kuhn's algorithm.
func MaximumMatching(ctx context.Context, g *bipgraph.Graph) matching.Matching {
	m := matching.New()
	bottomOf := make(map[int64]int64) // bottom ID -> matched top ID

	for _, t := range g.TopVertices() {
		if ctx.Err() != nil {
			break
		}
		visited := make(map[int64]bool)
		tryAugment(g, t, visited, bottomOf)
	}

	for b, t := range bottomOf {
		m.Set(t, b)
	}

	return m
}

// tryAugment attempts to find an augmenting path starting at top vertex t,
// using bottomOf as the current matching (bottom ID -> matched top ID) and
// visited to avoid revisiting a bottom vertex within this search.
func tryAugment(g *bipgraph.Graph, t bipgraph.Vertex, visited map[int64]bool, bottomOf map[int64]int64) bool {
	for _, b := range g.Neighbors(t) {
		if visited[b.ID()] {
			continue
		}
		visited[b.ID()] = true

		prevTop, matched := bottomOf[b.ID()]
		if !matched {
			bottomOf[b.ID()] = t.ID()

			return true
		}

		prevTopVertex, ok := g.VertexByID(prevTop)
		if ok && tryAugment(g, prevTopVertex, visited, bottomOf) {
			bottomOf[b.ID()] = t.ID()

			return true
		}
	}

	return false
}
