// SPDX-License-Identifier: MIT
// Package: randgraph/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Emits edges (i-1) - i for i=1..n-1 in stable increasing order.
//
// Complexity:
//   - Time: O(n) vertices + O(n-1) edges.
//   - Space: O(1) extra.

package builder

import (
	"github.com/katalvlaran/randgraph/core"
)

// Path returns a Constructor that builds the path graph P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if err := validateMin(MethodPath, "n", n, MinPathNodes); err != nil {
			return err
		}

		first := g.AddVertices(n)
		for i := 1; i < n; i++ {
			if err := connect(MethodPath, g, first, i-1, i); err != nil {
				return err
			}
		}

		return nil
	}
}
