// SPDX-License-Identifier: MIT
// Package: randgraph/builder
//
// impl_complete.go - implementation of Complete(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices). K_1 is a single vertex with no edges.
//   • Emits edges (i,j) for i asc, j>i asc.
//
// Complexity:
//   • Time: O(n²) edges.
//   • Space: O(1) extra.

package builder

import (
	"github.com/katalvlaran/randgraph/core"
)

// Complete returns a Constructor that builds the complete graph K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if err := validateMin(MethodComplete, "n", n, MinCompleteNodes); err != nil {
			return err
		}

		return addCompleteEdges(MethodComplete, g, g.AddVertices(n), n)
	}
}
