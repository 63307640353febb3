// File: methods_clone.go
// Role: Cloning and clearing graph instances.
// Concurrency:
//   - Read lock for snapshotting; no mutation of the source graph.

package core

// Clone returns a deep copy of the Graph: vertices, edges, and annotations.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := NewGraph(WithCapacity(len(g.adjacency)))
	for u, nbrs := range g.adjacency {
		cp := make(map[int]struct{}, len(nbrs))
		for v := range nbrs {
			cp[v] = struct{}{}
		}
		clone.adjacency = append(clone.adjacency, cp)

		var ann map[string]float64
		if src := g.annotations[u]; src != nil {
			ann = make(map[string]float64, len(src))
			for k, val := range src {
				ann[k] = val
			}
		}
		clone.annotations = append(clone.annotations, ann)
	}
	clone.edgeCount = g.edgeCount

	return clone
}

// Clear resets the graph to the empty state (no vertices, no edges).
func (g *Graph) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.adjacency = nil
	g.annotations = nil
	g.edgeCount = 0
}
