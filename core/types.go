// Package core defines the central Graph and Edge types and provides
// thread-safe primitives for building, querying, and cloning undirected
// simple graphs over contiguous integer vertex IDs.
//
// All core APIs share a single sync.RWMutex: mutations take the write lock,
// queries take the read lock, so a finished graph may be read from several
// goroutines at once.
//
// Errors:
//
//	ErrVertexNotFound - requested vertex does not exist.
//	ErrLoopNotAllowed - self-loop (u == v) passed to AddEdge.
//	ErrBadCapacity    - negative capacity passed to WithCapacity.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted; core graphs are simple.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrBadCapacity indicates a negative capacity hint.
	ErrBadCapacity = errors.New("core: capacity must be non-negative")
)

// Edge is an undirected connection between two vertices.
// Edges returned by the Graph are normalized so that U < V.
type Edge struct {
	U int
	V int
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithCapacity pre-sizes vertex storage for n vertices.
// Panics on negative n; option constructors validate eagerly.
func WithCapacity(n int) GraphOption {
	if n < 0 {
		panic(ErrBadCapacity.Error())
	}
	return func(g *Graph) {
		g.adjacency = make([]map[int]struct{}, 0, n)
		g.annotations = make([]map[string]float64, 0, n)
	}
}

// Graph is the core in-memory undirected simple graph.
//
// Vertex IDs are the contiguous integers 0..VertexCount()-1 in insertion order.
// adjacency[u] is the neighbor set of u; every edge is stored in both
// directions, so the relation is symmetric by construction.
// annotations[u] holds optional float64 values attached to u (lazily allocated).
type Graph struct {
	mu sync.RWMutex // guards everything below

	adjacency   []map[int]struct{}
	annotations []map[string]float64
	edgeCount   int
}

// NewGraph creates an empty Graph and applies the given options in order.
// Complexity: O(len(opts)).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
