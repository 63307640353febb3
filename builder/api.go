// SPDX-License-Identifier: MIT
// Package: randgraph/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - Two orchestrators: BuildGraph (one pass) and BuildConnected (bounded regeneration).
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Safety: never panic; return sentinel errors from constructors.
//
// Hints (practical):
//   - Compose multiple constructors in BuildGraph to assemble fixtures deterministically.
//   - Use WithSeed(...) to freeze stochastic paths (Gilbert, WattsStrogatz).

package builder

import (
	"fmt"

	"github.com/katalvlaran/randgraph/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters before touching the graph and return sentinel errors (no panics).
//   - Preserve determinism for the same config and call order.
//
// Complexity (this type): O(1) to pass; actual cost is in the closure body.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with graph options gopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with the context "BuildGraph: %w" and
// returned immediately; no partial cleanup is attempted.
//
// Complexity:
//   - Resolving options: O(len(bopts)) time, O(1) space.
//   - Applying K constructors: Σ cost of each constructor; wrapper overhead O(K).
//
// Errors:
//   - Wraps constructor errors via %w; callers should branch with errors.Is
//     against builder sentinels (ErrTooFewVertices, ErrInvalidProbability, ...).
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g, err := build(gopts, newBuilderConfig(bopts...), cons)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}

	return g, nil
}

// build runs cons against a fresh graph with an already resolved cfg.
// Shared by BuildGraph and every attempt of BuildConnected so that one RNG
// advances across attempts.
func build(gopts []core.GraphOption, cfg builderConfig, cons []Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	for i, fn := range cons {
		// a nil constructor is a programmer error; report it instead of panicking
		if fn == nil {
			return nil, fmt.Errorf("nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// =============================================================================
// Topology factories (declarations) - implemented in impl_*.go
// =============================================================================
//
// Each factory returns a Constructor closure. The closure MUST:
//   - Add its vertices as one contiguous block (core.Graph.AddVertices).
//   - Emit edges in a stable, documented order.
//   - Return only sentinel errors; NEVER panic at runtime.

// Gilbert builds a G(n,p) random graph (n ≥ 1, 0 ≤ p ≤ 1).
// Complexity: O(n²) Bernoulli trials.
//func Gilbert(n int, p float64) Constructor

// WattsStrogatz builds a rewired ring lattice (k ≥ 1, 2k < n, 0 ≤ p ≤ 1).
// Complexity: O(n·k) draws plus rejection resampling.
//func WattsStrogatz(n, k int, p float64) Constructor

// Cycle builds an n-vertex simple cycle C_n (n ≥ 3).
// Complexity: O(n) vertices + O(n) edges; O(1) extra space.
//func Cycle(n int) Constructor

// Path builds the path P_n (n ≥ 2).
// Complexity: O(n).
//func Path(n int) Constructor

// Star builds a star with hub 0 and n-1 leaves (n ≥ 2).
// Complexity: O(n).
//func Star(n int) Constructor

// Complete builds K_n (n ≥ 1).
// Complexity: O(n²).
//func Complete(n int) Constructor
