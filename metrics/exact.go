package metrics

import (
	"fmt"

	"github.com/katalvlaran/randgraph/bfs"
	"github.com/katalvlaran/randgraph/core"
)

// ExactAveragePathLength returns the mean shortest path length over every
// unordered pair, running one BFS per vertex. Graphs with fewer than two
// vertices yield 0; a disconnected graph fails with ErrDisconnected.
//
// Complexity: O(V·(V+E)) time, O(V) memory per walk.
func ExactAveragePathLength(g *core.Graph) (float64, error) {
	if g == nil {
		return 0, bfs.ErrGraphNil
	}
	n := g.VertexCount()
	if n < 2 {
		return 0, nil
	}

	total := 0
	for u := 0; u < n; u++ {
		res, err := bfs.BFS(g, u)
		if err != nil {
			return 0, fmt.Errorf("ExactAveragePathLength: %w", err)
		}
		if !res.Spans() {
			return 0, fmt.Errorf("ExactAveragePathLength: from %d: %w", u, ErrDisconnected)
		}
		// pairs (u, v) with v < u were counted from v
		for _, d := range res.Dist[u+1:] {
			total += d
		}
	}

	return float64(total) / float64(n*(n-1)/2), nil
}
