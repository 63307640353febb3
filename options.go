package randgraph

import (
	"github.com/charmbracelet/log"

	"github.com/katalvlaran/randgraph/builder"
	"github.com/katalvlaran/randgraph/sampler"
)

// Option configures NewGilbert and NewWattsStrogatz.
type Option func(*options)

type options struct {
	seed        int64
	hasSeed     bool
	logger      *log.Logger
	maxAttempts int
	observer    builder.Observer
	sampleSize  int
	singleTrial bool
}

func newOptions(opts ...Option) options {
	o := options{
		maxAttempts: builder.DefaultMaxAttempts,
		observer:    builder.NoopObserver{},
		sampleSize:  sampler.SampleSize,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = log.Default()
	}
	return o
}

// WithSeed fixes the RNG seed. Without it a time-derived seed is drawn and
// reported by RandomGraph.Seed.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.seed, o.hasSeed = seed, true
	}
}

// WithLogger sets the logger for generation and metric events. Panics on nil.
func WithLogger(l *log.Logger) Option {
	if l == nil {
		panic("randgraph: WithLogger(nil)")
	}
	return func(o *options) {
		o.logger = l
	}
}

// WithMaxAttempts bounds regeneration. Panics if n < 1.
func WithMaxAttempts(n int) Option {
	if n < 1 {
		panic("randgraph: WithMaxAttempts(n<1)")
	}
	return func(o *options) {
		o.maxAttempts = n
	}
}

// WithObserver receives generation events. Panics on nil.
func WithObserver(obs builder.Observer) Option {
	if obs == nil {
		panic("randgraph: WithObserver(nil)")
	}
	return func(o *options) {
		o.observer = obs
	}
}

// WithSampleSize overrides the number of pairs used for average path length.
func WithSampleSize(m int) Option {
	return func(o *options) {
		o.sampleSize = m
	}
}

// WithSingleTrial switches Gilbert to one trial per unordered pair.
// Watts-Strogatz ignores it.
func WithSingleTrial() Option {
	return func(o *options) {
		o.singleTrial = true
	}
}
