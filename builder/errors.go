// SPDX-License-Identifier: MIT
// Package: randgraph/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Sentinels are NEVER wrapped with formatted strings at definition site.
//   • Implementations attach context using `%w` and a method prefix.
//   • Algorithms MUST NOT panic at runtime; validation panics are confined to
//     option constructor functions (WithX...).

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewVertices indicates that a numeric parameter (e.g., n, k)
// is smaller than the allowed minimum for the requested constructor.
// Classification: Validation error (parameters).
// Usage: if errors.Is(err, ErrTooFewVertices) { /* report invalid size */ }.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates that a probability value is outside the
// closed interval [0,1] (or is NaN).
// Usage: if errors.Is(err, ErrInvalidProbability) { /* clamp or reject p */ }.
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrInvalidHalfDegree indicates that the Watts-Strogatz lattice half-degree k
// does not satisfy 2k < n, so ring offsets would wrap onto the source or
// onto each other.
var ErrInvalidHalfDegree = errors.New("builder: lattice half-degree must satisfy 2k < n")

// ErrNeedRandSource indicates that a stochastic constructor requires a non-nil
// *rand.Rand in the resolved builderConfig (WithSeed/WithRand must be set).
// Usage: if errors.Is(err, ErrNeedRandSource) { /* supply seeded RNG */ }.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a programmer error in composing constructors
// (e.g. a nil Constructor passed to BuildGraph).
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrNotConnected indicates that BuildConnected exhausted its attempt budget
// without producing a connected graph.
// Usage: if errors.Is(err, ErrNotConnected) { /* raise p or the budget */ }.
var ErrNotConnected = errors.New("builder: unable to generate connected graph within attempt budget")

// builderErrorf wraps an inner error message with the given method context.
// It returns an error of the form "<Method>: <formatted message>"; use %w in
// format to keep the sentinel reachable by errors.Is.
//
// Complexity: O(len(format) + Σlen(args)), negligible for our use.
func builderErrorf(method, format string, args ...interface{}) error {
	return fmt.Errorf("%s: "+format, append([]interface{}{method}, args...)...)
}

// --- Implementation Notes ----------------------------------------------------
//
// 1) Wrapping style (required):
//      return builderErrorf(MethodGilbert, "p=%.6f not in [0,1]: %w", p, ErrInvalidProbability)
//    This preserves the sentinel for errors.Is while adding a deterministic
//    context prefix "Gilbert: p=1.500000 not in [0,1]".
//
// 2) Priority (tie-break guidance when multiple validations fail):
//    • ErrTooFewVertices       - size/domain checks first (n, k).
//    • ErrInvalidHalfDegree    - then lattice geometry (2k < n).
//    • ErrInvalidProbability   - then probability ranges.
//    • ErrNeedRandSource       - then RNG presence for stochastic builders.
//    • ErrNotConnected         - only after all attempts are exhausted.
