// SPDX-License-Identifier: MIT
// Package: randgraph/builder
//
// impl_watts_strogatz.go - implementation of WattsStrogatz(n, k, p) constructor.
//
// Canonical model:
//   - Ring lattice: vertex i links to (i+step) mod n for step = 1..k.
//   - Each such lattice edge is rewired with probability p: its far endpoint
//     is replaced by a uniformly drawn vertex, redrawn until it differs from i.
//   - A rewired edge that duplicates an existing one is absorbed (edges are a set),
//     so the edge count is at most n·k.
//
// Contract:
//   - n ≥ 1, k ≥ 1 (else ErrTooFewVertices).
//   - 2k < n (else ErrInvalidHalfDegree); hence n ≥ 3 in practice.
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when p > 0 (else ErrNeedRandSource).
//
// Complexity:
//   - Time: O(n·k) expected; each rewire redraws with probability 1/n.
//   - Space: O(1) extra.
//
// Determinism:
//   - Source order i asc, offset order step asc; one Float64 per lattice edge
//     when p > 0, followed by the Intn draws of that edge's rewire.

package builder

import (
	"github.com/katalvlaran/randgraph/core"
)

// WattsStrogatz returns a Constructor that builds a small-world graph by
// rewiring a ring lattice of half-degree k with probability p.
func WattsStrogatz(n, k int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		// 1) Validate in priority order: sizes, geometry, probability, rng.
		if err := validateMin(MethodWattsStrogatz, "n", n, MinWattsStrogatzNodes); err != nil {
			return err
		}
		if err := validateMin(MethodWattsStrogatz, "k", k, MinHalfDegree); err != nil {
			return err
		}
		if err := validateHalfDegree(MethodWattsStrogatz, n, k); err != nil {
			return err
		}
		if err := validateProbability(MethodWattsStrogatz, p); err != nil {
			return err
		}
		if cfg.rng == nil && p > MinProbability {
			return builderErrorf(MethodWattsStrogatz, "%w", ErrNeedRandSource)
		}

		first := g.AddVertices(n)

		var i, step, target int
		for i = 0; i < n; i++ {
			for step = 1; step <= k; step++ {
				target = (i + step) % n
				if p > MinProbability && cfg.rng.Float64() < p {
					target = rewire(cfg, n, i)
				}
				// unreachable while 2k < n; kept so a bad target never becomes a loop
				if target == i {
					continue
				}
				if err := connect(MethodWattsStrogatz, g, first, i, target); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// rewire draws a uniform vertex in [0,n) other than src. Requires n ≥ 2.
func rewire(cfg builderConfig, n, src int) int {
	for {
		if t := cfg.rng.Intn(n); t != src {
			return t
		}
	}
}
