package randgraph

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/katalvlaran/randgraph/builder"
	"github.com/katalvlaran/randgraph/core"
	"github.com/katalvlaran/randgraph/metrics"
)

// Model names a random graph model.
type Model string

const (
	// ModelGilbert is G(n,p): independent Bernoulli trials per vertex pair.
	ModelGilbert Model = "gilbert"
	// ModelWattsStrogatz is a ring lattice with random rewiring.
	ModelWattsStrogatz Model = "watts-strogatz"
)

// Params are the generation parameters of a RandomGraph. K is zero for Gilbert.
type Params struct {
	N int     `json:"n" yaml:"n"`
	K int     `json:"k,omitempty" yaml:"k,omitempty"`
	P float64 `json:"p" yaml:"p"`
}

// Stat selects a statistic for Snapshot.
type Stat string

const (
	// StatAveragePathLength is the sampled average shortest path length.
	StatAveragePathLength Stat = "apl"
	// StatExactAveragePathLength averages over every vertex pair.
	StatExactAveragePathLength Stat = "apl-exact"
	// StatClustering is the mean local clustering coefficient.
	StatClustering Stat = "cc"
	// StatAverageDegree is 2E/n.
	StatAverageDegree Stat = "degree"
)

// statAll selects AllStats in ParseStats.
const statAll Stat = "all"

// AllStats lists the sampled statistics in report order.
var AllStats = []Stat{StatAveragePathLength, StatClustering, StatAverageDegree}

// ErrUnknownStat is returned by ParseStats and Snapshot for unknown names.
var ErrUnknownStat = errors.New("randgraph: unknown statistic")

// ParseStats parses a comma separated list such as "apl,cc" or "all".
// An empty string means all. "all" may also appear as a list element; it
// expands to AllStats in place and repeated names are reported once.
func ParseStats(s string) ([]Stat, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return append([]Stat(nil), AllStats...), nil
	}
	var out []Stat
	seen := make(map[Stat]bool)
	add := func(st Stat) {
		if !seen[st] {
			seen[st] = true
			out = append(out, st)
		}
	}
	for _, part := range strings.Split(s, ",") {
		st := Stat(strings.TrimSpace(part))
		switch st {
		case statAll:
			for _, a := range AllStats {
				add(a)
			}
		case StatAveragePathLength, StatExactAveragePathLength, StatClustering, StatAverageDegree:
			add(st)
		default:
			return nil, fmt.Errorf("%w: %q", ErrUnknownStat, part)
		}
	}
	return out, nil
}

// RandomGraph is a connected graph drawn from a random model, together with
// the seed that reproduces it and its lazily computed statistics.
type RandomGraph struct {
	id       uuid.UUID
	model    Model
	params   Params
	seed     int64
	attempts int
	elapsed  time.Duration

	graph  *core.Graph
	stats  *metrics.Stats
	logger *log.Logger

	mu     sync.Mutex
	logged map[Stat]bool
}

// NewGilbert draws a connected Gilbert G(n,p) graph.
func NewGilbert(ctx context.Context, n int, p float64, opts ...Option) (*RandomGraph, error) {
	return generate(ctx, ModelGilbert, Params{N: n, P: p}, builder.Gilbert(n, p), newOptions(opts...))
}

// NewWattsStrogatz draws a connected Watts-Strogatz graph of n vertices with
// lattice half-degree k and rewiring probability p.
func NewWattsStrogatz(ctx context.Context, n, k int, p float64, opts ...Option) (*RandomGraph, error) {
	o := newOptions(opts...)
	o.singleTrial = false
	return generate(ctx, ModelWattsStrogatz, Params{N: n, K: k, P: p}, builder.WattsStrogatz(n, k, p), o)
}

func generate(ctx context.Context, model Model, params Params, con builder.Constructor, o options) (*RandomGraph, error) {
	seed := o.seed
	if !o.hasSeed {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	id := uuid.New()
	logger := o.logger.With("id", id.String(), "model", string(model))

	kv := []interface{}{"n", params.N, "p", params.P, "seed", seed}
	if model == ModelWattsStrogatz {
		kv = append(kv, "k", params.K)
	}
	logger.Info("creating graph", kv...)

	bopts := []builder.BuilderOption{
		builder.WithRand(rng),
		builder.WithLogger(logger),
		builder.WithMaxAttempts(o.maxAttempts),
		builder.WithObserver(o.observer),
		builder.WithLabel(string(model)),
	}
	if o.singleTrial {
		bopts = append(bopts, builder.WithSingleTrial())
	}
	rep, err := builder.BuildConnected(ctx, bopts, con)
	if err != nil {
		return nil, fmt.Errorf("randgraph: %s: %w", model, err)
	}
	logger.Debug("graph accepted", "attempts", rep.Attempts,
		"vertices", rep.Graph.VertexCount(), "edges", rep.Graph.EdgeCount(), "elapsed", rep.Elapsed)

	return &RandomGraph{
		id:       id,
		model:    model,
		params:   params,
		seed:     seed,
		attempts: rep.Attempts,
		elapsed:  rep.Elapsed,
		graph:    rep.Graph,
		stats:    metrics.NewStats(rep.Graph, metrics.WithRand(rng), metrics.WithSampleSize(o.sampleSize)),
		logger:   logger,
		logged:   make(map[Stat]bool),
	}, nil
}

// ID identifies this instance in logs and reports.
func (r *RandomGraph) ID() uuid.UUID { return r.id }

// Model returns the model the graph was drawn from.
func (r *RandomGraph) Model() Model { return r.model }

// Params returns the generation parameters.
func (r *RandomGraph) Params() Params { return r.params }

// Seed returns the seed that reproduces this graph with WithSeed.
func (r *RandomGraph) Seed() int64 { return r.seed }

// Attempts returns how many graphs were generated before one was connected.
func (r *RandomGraph) Attempts() int { return r.attempts }

// Elapsed is the wall time spent generating, across all attempts.
func (r *RandomGraph) Elapsed() time.Duration { return r.elapsed }

// Graph returns the underlying graph. Callers must not mutate it.
func (r *RandomGraph) Graph() *core.Graph { return r.graph }

// Stats returns the cached statistics backing the metric methods.
func (r *RandomGraph) Stats() *metrics.Stats { return r.stats }

// AveragePathLength returns the sampled average shortest path length.
func (r *RandomGraph) AveragePathLength() (float64, error) {
	v, err := r.stats.AveragePathLength()
	if err != nil {
		return 0, err
	}
	r.logComputed(StatAveragePathLength, "average path length", v)
	return v, nil
}

// ExactAveragePathLength averages over every vertex pair. Not cached.
func (r *RandomGraph) ExactAveragePathLength() (float64, error) {
	v, err := metrics.ExactAveragePathLength(r.graph)
	if err != nil {
		return 0, err
	}
	r.logComputed(StatExactAveragePathLength, "exact average path length", v)
	return v, nil
}

// ClusteringCoefficient returns the average local clustering coefficient.
func (r *RandomGraph) ClusteringCoefficient() float64 {
	v := r.stats.ClusteringCoefficient()
	r.logComputed(StatClustering, "clustering coefficient", v)
	return v
}

// AverageDegree returns 2E/V.
func (r *RandomGraph) AverageDegree() float64 {
	v := r.stats.AverageDegree()
	r.logComputed(StatAverageDegree, "average degree", v)
	return v
}

// logComputed emits one info line per statistic.
func (r *RandomGraph) logComputed(st Stat, msg string, v float64) {
	r.mu.Lock()
	first := !r.logged[st]
	r.logged[st] = true
	r.mu.Unlock()
	if first {
		r.logger.Info(msg, "value", v)
	}
}
