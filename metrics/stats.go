package metrics

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"

	"github.com/katalvlaran/randgraph/bfs"
	"github.com/katalvlaran/randgraph/core"
	"github.com/katalvlaran/randgraph/sampler"
)

// Stats lazily computes and caches the statistics of one graph.
// Safe for concurrent use.
type Stats struct {
	g          *core.Graph
	rng        *rand.Rand
	sampleSize int
	distance   DistanceFunc

	mu sync.Mutex

	apl         float64
	aplComputed bool

	clustering         float64
	clusteringComputed bool

	degree         float64
	degreeComputed bool
}

// NewStats returns a Stats for g. g must not be nil.
func NewStats(g *core.Graph, opts ...Option) *Stats {
	s := defaultStats(g)
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Graph returns the measured graph.
func (s *Stats) Graph() *core.Graph { return s.g }

// AveragePathLength returns the mean shortest path length over the sampled
// pairs. Graphs with fewer than two vertices yield 0.
// Fails with ErrDisconnected when a sampled pair is unreachable and with
// sampler.ErrNeedRandSource when a large graph is measured without WithRand.
func (s *Stats) AveragePathLength() (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.aplComputed {
		return s.apl, nil
	}
	v, err := s.averagePathLength()
	if err != nil {
		return 0, err
	}
	s.apl, s.aplComputed = v, true

	return v, nil
}

func (s *Stats) averagePathLength() (float64, error) {
	if s.g.VertexCount() < 2 {
		return 0, nil
	}
	pairs, err := sampler.Pairs(s.g, s.rng, sampler.WithSampleSize(s.sampleSize))
	if err != nil {
		return 0, fmt.Errorf("AveragePathLength: %w", err)
	}

	total := 0
	for _, p := range pairs {
		d, err := s.distance(s.g, p.U, p.V)
		if errors.Is(err, bfs.ErrUnreachable) {
			return 0, fmt.Errorf("AveragePathLength: %d→%d: %w", p.U, p.V, ErrDisconnected)
		}
		if err != nil {
			return 0, fmt.Errorf("AveragePathLength: %w", err)
		}
		total += d
	}

	return float64(total) / float64(len(pairs)), nil
}

// ClusteringCoefficient returns the mean local clustering over all vertices
// (0 for an empty graph) and annotates every vertex with its own value.
func (s *Stats) ClusteringCoefficient() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.computeClusteringLocked()
	return s.clustering
}

// NodeClustering returns the local clustering of id, computing the graph
// clustering first if needed.
func (s *Stats) NodeClustering(id int) (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.computeClusteringLocked()
	v, ok := s.g.Annotation(id, ClusteringKey)
	if !ok {
		return 0, fmt.Errorf("NodeClustering: %w: %d", core.ErrVertexNotFound, id)
	}
	return v, nil
}

func (s *Stats) computeClusteringLocked() {
	if s.clusteringComputed {
		return
	}
	n := s.g.VertexCount()
	sum := 0.0
	for _, v := range s.g.Vertices() {
		c := localClustering(s.g, v)
		// v comes from Vertices, so the annotation cannot fail
		_ = s.g.SetAnnotation(v, ClusteringKey, c)
		sum += c
	}
	if n > 0 {
		s.clustering = sum / float64(n)
	}
	s.clusteringComputed = true
}

// localClustering counts ordered neighbor pairs, matching the usual
// 2T / d(d-1) definition.
func localClustering(g *core.Graph, v int) float64 {
	nbrs, _ := g.Neighbors(v)
	d := len(nbrs)
	if d < 2 {
		return 0
	}
	closed := 0
	for _, u := range nbrs {
		for _, w := range nbrs {
			if u != w && g.HasEdge(u, w) {
				closed++
			}
		}
	}
	return float64(closed) / float64(d*(d-1))
}

// AverageDegree returns the sum of vertex degrees divided by the vertex
// count, i.e. 2E/V (0 for an empty graph).
func (s *Stats) AverageDegree() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.degreeComputed {
		if n := s.g.VertexCount(); n > 0 {
			sum := 0
			for _, v := range s.g.Vertices() {
				d, _ := s.g.Degree(v)
				sum += d
			}
			s.degree = float64(sum) / float64(n)
		}
		s.degreeComputed = true
	}
	return s.degree
}
