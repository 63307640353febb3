// SPDX-License-Identifier: MIT
// Package: randgraph/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Adds vertices as one block in ascending order.
//   • Emits edges in stable order i - (i+1)%n for i=0..n-1.
//
// Complexity:
//   • Time: O(n) vertices + O(n) edges.
//   • Space: O(1) extra.

package builder

import (
	"github.com/katalvlaran/randgraph/core"
)

// Cycle returns a Constructor that builds an n-vertex simple cycle C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if err := validateMin(MethodCycle, "n", n, MinCycleNodes); err != nil {
			return err
		}

		first := g.AddVertices(n)

		// for i==n-1 the edge closes the ring back to 0
		for i := 0; i < n; i++ {
			if err := connect(MethodCycle, g, first, i, (i+1)%n); err != nil {
				return err
			}
		}

		return nil
	}
}
