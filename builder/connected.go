// SPDX-License-Identifier: MIT
// Package: randgraph/builder
//
// connected.go - BuildConnected: bounded regeneration until the result is connected.
//
// Contract:
//   • Every attempt runs the same constructors with the same parameters on a
//     fresh graph. One RNG is shared across attempts, so attempts differ.
//   • Parameter errors from constructors abort immediately (no retry).
//   • A disconnected result is discarded, logged at warn level and retried.
//   • After cfg.maxAttempts disconnected results the error wraps ErrNotConnected.
//   • ctx is checked before each attempt.
//
// Complexity:
//   • Time: attempts × (constructor cost + O(V+E) connectivity check).
//   • Space: one graph alive at a time.

package builder

import (
	"context"
	"fmt"
	"time"

	"github.com/katalvlaran/randgraph/bfs"
	"github.com/katalvlaran/randgraph/core"
)

// BuildReport is the outcome of a successful BuildConnected call.
type BuildReport struct {
	// Graph is the first connected graph produced.
	Graph *core.Graph
	// Attempts is the number of graphs generated, including the accepted one (≥1).
	Attempts int
	// Elapsed is the wall time spent over all attempts.
	Elapsed time.Duration
}

// BuildConnected repeatedly applies cons to a fresh graph until bfs.IsConnected
// accepts the result or the attempt budget (WithMaxAttempts) is spent.
//
// Errors:
//   - constructor errors, wrapped as "BuildConnected: %w";
//   - ctx.Err() when the context is done between attempts;
//   - ErrNotConnected after the budget is exhausted.
func BuildConnected(ctx context.Context, bopts []BuilderOption, cons ...Constructor) (*BuildReport, error) {
	cfg := newBuilderConfig(bopts...)
	start := time.Now()

	g, attempts, err := buildConnected(ctx, cfg, cons)
	cfg.observer.BuildFinished(cfg.label, attempts, err)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", MethodBuildConnected, err)
	}

	return &BuildReport{Graph: g, Attempts: attempts, Elapsed: time.Since(start)}, nil
}

// buildConnected returns the accepted graph and the number of graphs generated.
func buildConnected(ctx context.Context, cfg builderConfig, cons []Constructor) (*core.Graph, int, error) {
	logger := cfg.logger.With("label", cfg.label)

	for attempt := 1; attempt <= cfg.maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, attempt - 1, err
		}

		began := time.Now()
		g, err := build(nil, cfg, cons)
		if err != nil {
			return nil, attempt, err
		}
		connected := bfs.IsConnected(g)
		cfg.observer.AttemptFinished(cfg.label, attempt, connected, time.Since(began))
		if connected {
			return g, attempt, nil
		}

		logger.Warn("graph is not connected, regenerating",
			"attempt", attempt, "max_attempts", cfg.maxAttempts,
			"vertices", g.VertexCount(), "edges", g.EdgeCount())
	}

	return nil, cfg.maxAttempts, fmt.Errorf("%d attempts: %w", cfg.maxAttempts, ErrNotConnected)
}
