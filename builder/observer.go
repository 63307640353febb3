// SPDX-License-Identifier: MIT
// Package: randgraph/builder
//
// observer.go - instrumentation hook for BuildConnected.

package builder

import "time"

// Observer receives events from BuildConnected. Implementations must be
// safe for concurrent use when one Observer is shared by several builds.
type Observer interface {
	// AttemptFinished is called once per generated graph, after the
	// connectivity check.
	AttemptFinished(label string, attempt int, connected bool, elapsed time.Duration)
	// BuildFinished is called once per BuildConnected call. err is nil on success.
	BuildFinished(label string, attempts int, err error)
}

// NoopObserver ignores every event. It is the default Observer.
type NoopObserver struct{}

// AttemptFinished implements Observer.
func (NoopObserver) AttemptFinished(string, int, bool, time.Duration) {}

// BuildFinished implements Observer.
func (NoopObserver) BuildFinished(string, int, error) {}
