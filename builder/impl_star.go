// SPDX-License-Identifier: MIT
// Package: randgraph/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • The hub is the first vertex of the block; leaves follow in ascending order.
//   • Emits spokes hub - leaf for leaf = 1..n-1.
//
// Complexity:
//   • Time: O(n).
//   • Space: O(1) extra.

package builder

import (
	"github.com/katalvlaran/randgraph/core"
)

// Star returns a Constructor that builds a star with one hub and n-1 leaves.
func Star(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if err := validateMin(MethodStar, "n", n, MinStarNodes); err != nil {
			return err
		}

		first := g.AddVertices(n)
		for leaf := 1; leaf < n; leaf++ {
			if err := connect(MethodStar, g, first, 0, leaf); err != nil {
				return err
			}
		}

		return nil
	}
}
