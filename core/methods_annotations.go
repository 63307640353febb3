// File: methods_annotations.go
// Role: Optional per-vertex float64 annotations (e.g. computed statistics).
// Concurrency:
//   - SetAnnotation takes the write lock; Annotation takes the read lock.

package core

import "fmt"

// SetAnnotation attaches value under key to vertex id, replacing any previous value.
// Returns ErrVertexNotFound for an unknown id.
// Complexity: O(1) amortized.
func (g *Graph) SetAnnotation(id int, key string, value float64) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.hasVertexLocked(id) {
		return fmt.Errorf("SetAnnotation(%d,%q): %w", id, key, ErrVertexNotFound)
	}
	if g.annotations[id] == nil {
		g.annotations[id] = make(map[string]float64)
	}
	g.annotations[id][key] = value

	return nil
}

// Annotation returns the value stored under key for vertex id.
// ok is false when the vertex is unknown or the key was never set.
// Complexity: O(1).
func (g *Graph) Annotation(id int, key string) (value float64, ok bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.hasVertexLocked(id) {
		return 0, false
	}
	value, ok = g.annotations[id][key]

	return value, ok
}
