// Package builder provides internal helper functions used by Constructor
// implementations to build common topologies.
//
// Design principles:
//   - Single Responsibility: each helper does one well-defined job.
//   - Error Context: wrap errors with builderErrorf for uniform reporting.
package builder

import (
	"github.com/katalvlaran/randgraph/core"
)

// connect inserts the undirected edge {first+i, first+j}. Re-adding an
// existing edge is a no-op in core.Graph, so callers may emit duplicates.
//
// Complexity: O(1) amortized.
func connect(method string, g *core.Graph, first, i, j int) error {
	if _, err := g.AddEdge(first+i, first+j); err != nil {
		return builderErrorf(method, "AddEdge(%d,%d): %w", first+i, first+j, err)
	}

	return nil
}

// addCompleteEdges connects every unordered pair of the block [first, first+n).
//
// Complexity: O(n²) time, O(1) extra space.
func addCompleteEdges(method string, g *core.Graph, first, n int) error {
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if err := connect(method, g, first, i, j); err != nil {
				return err
			}
		}
	}

	return nil
}
