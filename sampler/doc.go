// Package sampler selects the vertex pairs over which average path length
// is estimated.
//
// Small graphs are enumerated exhaustively: when C(n,2) fits within the
// sample size every unordered pair {u,v}, u<v, is returned in vertex order
// and no RNG is consulted. Larger graphs are sampled: ordered draws
// (rng.Intn(n), rng.Intn(n)) are rejected when they form a self-pair or
// repeat a pair already taken in either orientation, until exactly the
// sample size is collected.
//
// With the default SampleSize of 100 the exhaustive branch covers n ≤ 14.
package sampler
