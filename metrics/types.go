package metrics

import (
	"errors"
	"math/rand"

	"github.com/katalvlaran/randgraph/bfs"
	"github.com/katalvlaran/randgraph/core"
	"github.com/katalvlaran/randgraph/sampler"
)

// ClusteringKey is the vertex annotation holding local clustering.
const ClusteringKey = "clustering_coefficient"

// ErrDisconnected is returned when a measured pair has no connecting path.
var ErrDisconnected = errors.New("metrics: graph is disconnected")

// DistanceFunc returns the shortest path length between two vertices.
// It must wrap bfs.ErrUnreachable when no path exists.
type DistanceFunc func(g *core.Graph, from, to int) (int, error)

// Option configures a Stats value.
type Option func(*Stats)

// WithRand sets the RNG used to sample path pairs on large graphs. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("metrics: WithRand(nil)")
	}
	return func(s *Stats) {
		s.rng = r
	}
}

// WithSampleSize overrides sampler.SampleSize for average path length.
func WithSampleSize(m int) Option {
	return func(s *Stats) {
		s.sampleSize = m
	}
}

// WithDistanceFunc replaces bfs.ShortestPathLength. Panics on nil.
func WithDistanceFunc(fn DistanceFunc) Option {
	if fn == nil {
		panic("metrics: WithDistanceFunc(nil)")
	}
	return func(s *Stats) {
		s.distance = fn
	}
}

func defaultStats(g *core.Graph) *Stats {
	return &Stats{
		g:          g,
		sampleSize: sampler.SampleSize,
		distance:   bfs.ShortestPathLength,
	}
}
