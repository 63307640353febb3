package sampler

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/randgraph/core"
)

const (
	// SampleSize is the default number of pairs drawn from large graphs.
	SampleSize = 100
	// ExhaustiveLimit is the largest vertex count enumerated exhaustively
	// under the default SampleSize (C(14,2)=91 ≤ 100 < C(15,2)=105).
	ExhaustiveLimit = 14
)

var (
	// ErrNeedRandSource is returned when the sampling branch is taken with a nil RNG.
	ErrNeedRandSource = errors.New("sampler: rng is required")
	// ErrInvalidSampleSize is returned for a sample size below 1.
	ErrInvalidSampleSize = errors.New("sampler: sample size must be positive")
)

// Pair is an unordered vertex pair reported with U < V.
type Pair struct {
	U, V int
}

// Option configures Pairs.
type Option func(*config)

type config struct {
	size int
}

// WithSampleSize overrides SampleSize. Values below 1 make Pairs fail with
// ErrInvalidSampleSize, so sizes read from files or flags surface as errors.
func WithSampleSize(m int) Option {
	return func(c *config) {
		c.size = m
	}
}

// ExhaustiveLimitFor returns the largest n with C(n,2) ≤ m.
// The estimate from n ≈ (1+√(1+8m))/2 is corrected by at most a step or two
// so that float rounding never changes the answer.
//
// Complexity: O(1).
func ExhaustiveLimitFor(m int) int {
	if m < 1 {
		return 1
	}
	n := int((1 + math.Sqrt(1+8*float64(m))) / 2)
	for n > 1 && !pairsWithin(n, m) {
		n--
	}
	for pairsWithin(n+1, m) {
		n++
	}
	return n
}

// pairsWithin reports C(n,2) ≤ m without forming n(n-1).
func pairsWithin(n, m int) bool {
	a, b := n, n-1
	if a%2 == 0 {
		a /= 2
	} else {
		b /= 2
	}
	return b == 0 || a <= m/b
}

// Pairs returns the pairs of g to measure. A nil or single-vertex graph has
// no pairs. The RNG is only consulted, and only required, when g is larger
// than the exhaustive limit.
//
// Complexity: O(n²) exhaustive; O(m) expected draws otherwise.
func Pairs(g *core.Graph, rng *rand.Rand, opts ...Option) ([]Pair, error) {
	cfg := config{size: SampleSize}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.size < 1 {
		return nil, fmt.Errorf("Pairs: size=%d: %w", cfg.size, ErrInvalidSampleSize)
	}
	if g == nil {
		return nil, nil
	}

	n := g.VertexCount()
	if n <= ExhaustiveLimitFor(cfg.size) {
		return exhaustive(n), nil
	}
	if rng == nil {
		return nil, fmt.Errorf("Pairs: n=%d: %w", n, ErrNeedRandSource)
	}

	return sample(n, cfg.size, rng), nil
}

func exhaustive(n int) []Pair {
	if n < 2 {
		return nil
	}
	out := make([]Pair, 0, n*(n-1)/2)
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			out = append(out, Pair{U: u, V: v})
		}
	}
	return out
}

// sample requires C(n,2) > m so that m distinct pairs exist.
func sample(n, m int, rng *rand.Rand) []Pair {
	seen := make(map[Pair]struct{}, m)
	out := make([]Pair, 0, m)
	for len(out) < m {
		u, v := rng.Intn(n), rng.Intn(n)
		if u == v {
			continue
		}
		if u > v {
			u, v = v, u
		}
		p := Pair{U: u, V: v}
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}
