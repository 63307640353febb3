// SPDX-License-Identifier: MIT
// Package: randgraph/builder
//
// options.go - functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Algorithms themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.
//   • No hidden globals; everything flows through builderConfig.

package builder

import (
	"math/rand"

	"github.com/charmbracelet/log"
)

// BuilderOption customizes the behavior of a constructor by mutating a
// builderConfig instance before graph construction begins.
// Complexity: applying N options costs O(N) time, O(1) space.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic builders.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithLogger routes regeneration warnings to l. Panics on nil.
func WithLogger(l *log.Logger) BuilderOption {
	if l == nil {
		panic("builder: WithLogger(nil)")
	}
	return func(c *builderConfig) {
		c.logger = l
	}
}

// WithObserver registers per-attempt instrumentation. Panics on nil.
func WithObserver(o Observer) BuilderOption {
	if o == nil {
		panic("builder: WithObserver(nil)")
	}
	return func(c *builderConfig) {
		c.observer = o
	}
}

// WithMaxAttempts bounds the BuildConnected regeneration loop.
// Panics if n < 1.
func WithMaxAttempts(n int) BuilderOption {
	if n < 1 {
		panic("builder: WithMaxAttempts(n<1)")
	}
	return func(c *builderConfig) {
		c.maxAttempts = n
	}
}

// WithSingleTrial makes Gilbert draw one Bernoulli trial per unordered pair
// {i,j}, i<j (textbook G(n,p)), instead of one per ordered pair.
func WithSingleTrial() BuilderOption {
	return func(c *builderConfig) {
		c.singleTrial = true
	}
}

// WithLabel names the build in logs and observer events.
// Empty values fall back to DefaultLabel.
func WithLabel(label string) BuilderOption {
	return func(c *builderConfig) {
		if label == "" {
			label = DefaultLabel
		}
		c.label = label
	}
}
