// Package core: Graph method implementations
//
// This file provides thread-safe operations for vertex and edge management
// on the Graph type defined in types.go. Adjacency is stored as a slice of
// neighbor sets indexed by vertex ID, giving O(1) existence checks and
// idempotent insertion.

package core

import (
	"fmt"
	"sort"
)

// AddVertex appends a new vertex and returns its ID (the previous VertexCount()).
// Complexity: O(1) amortized.
func (g *Graph) AddVertex() int {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.addVertexLocked()
}

// AddVertices appends n vertices and returns the ID of the first one.
// n <= 0 is a no-op that returns the current vertex count.
// Complexity: O(n).
func (g *Graph) AddVertices(n int) int {
	g.mu.Lock()
	defer g.mu.Unlock()

	first := len(g.adjacency)
	for i := 0; i < n; i++ {
		g.addVertexLocked()
	}

	return first
}

// HasVertex reports whether id names an existing vertex.
// Complexity: O(1).
func (g *Graph) HasVertex(id int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.hasVertexLocked(id)
}

// AddEdge inserts the undirected edge {u, v}.
// Adding an edge that already exists is a no-op and reports added=false.
//
// Returns ErrVertexNotFound if either endpoint is missing,
// ErrLoopNotAllowed if u == v.
// Complexity: O(1).
func (g *Graph) AddEdge(u, v int) (added bool, err error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.hasVertexLocked(u) {
		return false, fmt.Errorf("AddEdge(%d,%d): vertex %d: %w", u, v, u, ErrVertexNotFound)
	}
	if !g.hasVertexLocked(v) {
		return false, fmt.Errorf("AddEdge(%d,%d): vertex %d: %w", u, v, v, ErrVertexNotFound)
	}
	if u == v {
		return false, fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrLoopNotAllowed)
	}
	if _, exists := g.adjacency[u][v]; exists {
		return false, nil // idempotent
	}
	// mirror both directions; symmetry is the undirected invariant
	g.adjacency[u][v] = struct{}{}
	g.adjacency[v][u] = struct{}{}
	g.edgeCount++

	return true, nil
}

// HasEdge reports whether {u, v} is an edge. Unknown vertices yield false.
// Complexity: O(1).
func (g *Graph) HasEdge(u, v int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.hasVertexLocked(u) || !g.hasVertexLocked(v) {
		return false
	}
	_, ok := g.adjacency[u][v]

	return ok
}

// Vertices returns all vertex IDs in ascending order.
// Complexity: O(V).
func (g *Graph) Vertices() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]int, len(g.adjacency))
	for i := range ids {
		ids[i] = i
	}

	return ids
}

// Neighbors returns the IDs adjacent to id, sorted ascending for determinism.
// Returns ErrVertexNotFound for an unknown id.
// Complexity: O(d log d), where d is the degree of id.
func (g *Graph) Neighbors(id int) ([]int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.hasVertexLocked(id) {
		return nil, fmt.Errorf("Neighbors(%d): %w", id, ErrVertexNotFound)
	}
	out := make([]int, 0, len(g.adjacency[id]))
	for nbr := range g.adjacency[id] {
		out = append(out, nbr)
	}
	sort.Ints(out)

	return out, nil
}

// Degree returns the number of neighbors of id.
// Complexity: O(1).
func (g *Graph) Degree(id int) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.hasVertexLocked(id) {
		return 0, fmt.Errorf("Degree(%d): %w", id, ErrVertexNotFound)
	}

	return len(g.adjacency[id]), nil
}

// Edges returns every edge exactly once with U < V, sorted by (U, V).
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, g.edgeCount)
	for u, nbrs := range g.adjacency {
		for v := range nbrs {
			if u < v {
				out = append(out, Edge{U: u, V: v})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].U != out[j].U {
			return out[i].U < out[j].U
		}
		return out[i].V < out[j].V
	})

	return out
}

// VertexCount returns the number of vertices. O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency)
}

// EdgeCount returns the number of undirected edges. O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// Internal helper methods:
////////////////////

// addVertexLocked appends an empty neighbor set; caller holds the write lock.
func (g *Graph) addVertexLocked() int {
	id := len(g.adjacency)
	g.adjacency = append(g.adjacency, make(map[int]struct{}))
	g.annotations = append(g.annotations, nil) // allocated on first SetAnnotation

	return id
}

// hasVertexLocked bounds-checks id; caller holds a lock.
func (g *Graph) hasVertexLocked(id int) bool {
	return id >= 0 && id < len(g.adjacency)
}
