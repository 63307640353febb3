// SPDX-License-Identifier: MIT
// Package: randgraph/builder
//
// impl_gilbert.go - implementation of Gilbert(n, p) constructor.
//
// Canonical model:
//   - Gilbert G(n,p): every admissible pair gets an independent Bernoulli(p) trial.
//   - Default: one trial per ORDERED pair (i,j), i≠j. The graph is undirected,
//     so {i,j} is present when either (i,j) or (j,i) succeeds and the
//     effective edge probability is 1-(1-p)².
//   - WithSingleTrial(): one trial per unordered pair {i,j}, i<j (textbook G(n,p)).
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//   - Adds vertices as one block in ascending order.
//   - Never produces self-loops.
//
// Complexity:
//   - Time: O(n) vertices + O(n²) Bernoulli trials / edge inserts.
//   - Space: O(1) extra.
//
// Determinism:
//   - Stable trial order: for each i asc, j asc (single-trial uses j>i).
//   - Deterministic outcomes for a fixed seed.

package builder

import (
	"github.com/katalvlaran/randgraph/core"
)

// Gilbert returns a Constructor that samples a Gilbert random graph over n
// vertices with edge probability p.
func Gilbert(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		// 1) Validate parameters early (zero side-effects on invalid input).
		if err := validateMin(MethodGilbert, "n", n, MinGilbertNodes); err != nil {
			return err
		}
		if err := validateProbability(MethodGilbert, p); err != nil {
			return err
		}
		// p ∈ {0,1} is decided without drawing.
		if cfg.rng == nil && p > MinProbability && p < MaxProbability {
			return builderErrorf(MethodGilbert, "%w", ErrNeedRandSource)
		}

		// 2) Vertices 0..n-1 (relative to first).
		first := g.AddVertices(n)

		// 3) Trials in fixed order.
		var i, j int
		for i = 0; i < n; i++ {
			j = 0
			if cfg.singleTrial {
				j = i + 1
			}
			for ; j < n; j++ {
				if i == j || !bernoulli(cfg, p) {
					continue
				}
				if err := connect(MethodGilbert, g, first, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// bernoulli reports success with probability p. The endpoints skip the RNG
// so that p=0 and p=1 never require one.
func bernoulli(cfg builderConfig, p float64) bool {
	switch {
	case p <= MinProbability:
		return false
	case p >= MaxProbability:
		return true
	default:
		return cfg.rng.Float64() < p
	}
}
