package bfs

import (
	"context"

	"github.com/katalvlaran/randgraph/core"
)

// IsConnected reports whether g consists of a single connected component:
// a traversal from vertex 0 must reach every vertex.
// A single vertex is trivially connected; an empty graph is vacuously connected.
// A nil graph is not connected.
//
// Complexity: O(V + E).
func IsConnected(g *core.Graph) bool {
	if g == nil {
		return false
	}
	if g.VertexCount() <= 1 {
		return true
	}
	res, err := BFS(g, 0)
	if err != nil {
		return false
	}

	return res.Spans()
}

// ShortestPathLength returns the number of edges on a shortest path from → to.
// Returns ErrGraphNil, ErrStartVertexNotFound, ErrTargetVertexNotFound,
// or ErrUnreachable when no path exists.
//
// The walk stops as soon as the target is discovered.
// Complexity: O(V + E) worst case.
func ShortestPathLength(g *core.Graph, from, to int) (int, error) {
	return ShortestPathLengthContext(context.Background(), g, from, to)
}

// ShortestPathLengthContext is ShortestPathLength with cancellation.
func ShortestPathLengthContext(ctx context.Context, g *core.Graph, from, to int) (int, error) {
	res, err := BFS(g, from, WithContext(ctx), WithTarget(to))
	if err != nil {
		return 0, err
	}

	return res.DistanceTo(to)
}

// Components returns every connected component of g. Each component lists
// its vertex IDs in BFS discovery order; components are ordered by their
// smallest vertex.
//
// Complexity: O(V + E) time, O(V) memory.
func Components(g *core.Graph) [][]int {
	if g == nil {
		return nil
	}
	w := newWalker(g, defaultOptions())
	var comps [][]int

	for start := range w.dist {
		if w.dist[start] != Unreached {
			continue
		}
		from := len(w.order)
		if err := w.walk(start); err != nil {
			continue // background context and in-range IDs; walk cannot fail
		}
		to := len(w.order)
		comps = append(comps, w.order[from:to:to])
	}

	return comps
}
