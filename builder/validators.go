// Package builder provides validation helpers to enforce
// parameter contracts in Constructor factories.
//
// Each function returns a sentinel-wrapped error via builderErrorf
// when its precondition is violated.
package builder

import "math"

// validateMin ensures that the provided integer 'got' is ≥ 'min'.
// Returns "<Method>: <name>=<got> < min=<min>: builder: parameter too small" otherwise.
//
// Complexity: O(1) time and space.
func validateMin(method, name string, got, min int) error {
	if got < min {
		return builderErrorf(method, "%s=%d < min=%d: %w", name, got, min, ErrTooFewVertices)
	}

	return nil
}

// validateProbability enforces p ∈ [MinProbability, MaxProbability]; NaN is rejected.
//
// Complexity: O(1) time and space.
func validateProbability(method string, p float64) error {
	if math.IsNaN(p) || p < MinProbability || p > MaxProbability {
		return builderErrorf(method, "p=%.6f not in [%.1f,%.1f]: %w",
			p, MinProbability, MaxProbability, ErrInvalidProbability)
	}

	return nil
}

// validateHalfDegree enforces the ring-lattice geometry 2k < n.
//
// Complexity: O(1) time and space.
func validateHalfDegree(method string, n, k int) error {
	if 2*k >= n {
		return builderErrorf(method, "k=%d, n=%d: %w", k, n, ErrInvalidHalfDegree)
	}

	return nil
}
