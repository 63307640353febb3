package bfs

import (
	"fmt"

	"github.com/katalvlaran/randgraph/core"
)

// walker runs breadth-first passes over g, sharing dist and order between
// passes so that Components can sweep the graph with one allocation.
type walker struct {
	graph *core.Graph
	opts  options
	dist  []int
	order []int
}

func newWalker(g *core.Graph, o options) *walker {
	n := g.VertexCount()
	dist := make([]int, n)
	for i := range dist {
		dist[i] = Unreached
	}

	return &walker{graph: g, opts: o, dist: dist, order: make([]int, 0, n)}
}

// BFS walks g from start and returns hop distances and discovery order.
// Returns ErrGraphNil, ErrStartVertexNotFound, ErrTargetVertexNotFound
// (see WithTarget), or the context error when cancelled.
//
// Complexity: O(V + E) time, O(V) memory.
func BFS(g *core.Graph, start int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %d", ErrStartVertexNotFound, start)
	}
	if o.target != Unreached && !g.HasVertex(o.target) {
		return nil, fmt.Errorf("%w: %d", ErrTargetVertexNotFound, o.target)
	}

	w := newWalker(g, o)
	if err := w.walk(start); err != nil {
		return nil, err
	}

	return &Result{Source: start, Order: w.order, Dist: w.dist}, nil
}

// walk appends the component of src to w.order, using the tail of order as
// the queue. src must be unreached.
func (w *walker) walk(src int) error {
	head := len(w.order)
	w.dist[src] = 0
	w.order = append(w.order, src)
	if src == w.opts.target {
		return nil
	}

	for ; head < len(w.order); head++ {
		select {
		case <-w.opts.ctx.Done():
			return w.opts.ctx.Err()
		default:
		}

		u := w.order[head]
		nbrs, err := w.graph.Neighbors(u)
		if err != nil {
			return fmt.Errorf("bfs: neighbors of %d: %w", u, err)
		}
		next := w.dist[u] + 1
		for _, v := range nbrs {
			// vertices added after the walk began are outside dist
			if v >= len(w.dist) || w.dist[v] != Unreached {
				continue
			}
			w.dist[v] = next
			w.order = append(w.order, v)
			if v == w.opts.target {
				return nil
			}
		}
	}

	return nil
}
