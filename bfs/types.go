package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrStartVertexNotFound is returned when the start ID is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrTargetVertexNotFound is returned when a query names an absent target.
	ErrTargetVertexNotFound = errors.New("bfs: target vertex not found")

	// ErrUnreachable is returned when no path connects the queried vertices.
	ErrUnreachable = errors.New("bfs: target unreachable")
)

// Unreached is the Dist value of a vertex the walk did not reach.
const Unreached = -1

// Option configures a BFS run.
type Option func(*options)

type options struct {
	ctx    context.Context
	target int // Unreached: walk the whole component
}

func defaultOptions() options {
	return options{ctx: context.Background(), target: Unreached}
}

// WithContext sets a context checked once per dequeued vertex.
// A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithTarget stops the walk as soon as id is discovered. Its distance is
// final at that point; vertices not yet discovered keep Dist == Unreached.
// BFS fails with ErrTargetVertexNotFound when id is not a vertex.
func WithTarget(id int) Option {
	return func(o *options) {
		o.target = id
	}
}

// Result is the outcome of one walk from Source.
//
// Dist is indexed by vertex ID and has one entry per vertex of the graph at
// the time of the walk. Order lists the reached vertices in discovery order,
// which for BFS is also non-decreasing distance order.
type Result struct {
	Source int
	Order  []int
	Dist   []int
}

// Reached reports whether id was discovered.
func (r *Result) Reached(id int) bool {
	return id >= 0 && id < len(r.Dist) && r.Dist[id] != Unreached
}

// Spans reports whether the walk reached every vertex, i.e. the graph is
// connected and the walk was not cut short by WithTarget.
func (r *Result) Spans() bool {
	return len(r.Order) == len(r.Dist)
}

// DistanceTo returns the hop distance from Source to id.
// Returns ErrTargetVertexNotFound for an ID outside the graph and
// ErrUnreachable when id was not discovered.
func (r *Result) DistanceTo(id int) (int, error) {
	if id < 0 || id >= len(r.Dist) {
		return 0, fmt.Errorf("%w: %d", ErrTargetVertexNotFound, id)
	}
	if r.Dist[id] == Unreached {
		return 0, fmt.Errorf("bfs: %d→%d: %w", r.Source, id, ErrUnreachable)
	}

	return r.Dist[id], nil
}
