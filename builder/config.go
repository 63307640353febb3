// SPDX-License-Identifier: MIT
// Package: randgraph/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults (no surprises):
//   • rng         = nil                 (pure/deterministic unless seeded)
//   • logger      = log.Default()
//   • observer    = NoopObserver{}
//   • maxAttempts = DefaultMaxAttempts
//   • singleTrial = false               (Gilbert tries every ordered pair)
//   • label       = DefaultLabel

package builder

import (
	"math/rand"

	"github.com/charmbracelet/log"
)

// builderConfig aggregates all knobs used by constructors and BuildConnected.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand

	// Logger receives regeneration warnings.
	logger *log.Logger

	// Observer receives per-attempt events.
	observer Observer

	// Attempt budget for BuildConnected (≥1).
	maxAttempts int

	// Gilbert: one Bernoulli trial per unordered pair instead of per ordered pair.
	singleTrial bool

	// Label identifies the build in logs and observer events.
	label string
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:         nil,
		logger:      nil,
		observer:    NoopObserver{},
		maxAttempts: DefaultMaxAttempts,
		singleTrial: false,
		label:       DefaultLabel,
	}

	// Apply options in the given order; last-wins semantics.
	for _, opt := range opts {
		opt(&cfg)
	}

	// Resolve the logger lazily so log.SetDefault before building is honored.
	if cfg.logger == nil {
		cfg.logger = log.Default()
	}

	return cfg
}
