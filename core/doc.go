// Package core provides a thread-safe, in-memory undirected simple Graph
// with a minimal, composable API surface.
//
// The Graph G = (V,E) has these guarantees:
//
//   - Vertex IDs are the contiguous integers 0..n-1, assigned in insertion order.
//   - Edges are undirected, loop-free and unique: AddEdge(u,v) on an existing
//     edge is a no-op (added == false), AddEdge(v,v) returns ErrLoopNotAllowed.
//   - The adjacency relation is symmetric by construction (both directions are
//     written under one lock).
//   - Deterministic iteration: Vertices(), Neighbors(), Edges() return sorted results.
//   - Optional per-vertex annotations (SetAnnotation/Annotation) let algorithms
//     attach computed values such as a clustering coefficient.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex() int                  // O(1)
//	AddVertices(n int) (first int)   // O(n)
//	HasVertex(id int) bool           // O(1)
//
//	// Edge lifecycle
//	AddEdge(u, v int) (added bool, err error) // O(1)
//	HasEdge(u, v int) bool                    // O(1)
//
//	// Queries
//	Vertices() []int                 // O(V)
//	Neighbors(id int) ([]int, error) // O(d log d)
//	Degree(id int) (int, error)      // O(1)
//	Edges() []Edge                   // O(E log E)
//	VertexCount(), EdgeCount()       // O(1)
//
//	// Annotations & lifecycle
//	SetAnnotation(id, key, value) error
//	Annotation(id, key) (value float64, ok bool)
//	Clone() *Graph
//	Clear()
//
// Concurrency: a single sync.RWMutex guards the whole graph. Generators
// mutate a graph from one goroutine; readers may share a finished graph.
package core
