package bfs_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/randgraph/bfs"
	"github.com/katalvlaran/randgraph/core"
)

// graphOf builds an n-vertex graph from an edge list.
func graphOf(n int, edges ...[2]int) *core.Graph {
	g := core.NewGraph()
	g.AddVertices(n)
	for _, e := range edges {
		_, _ = g.AddEdge(e[0], e[1])
	}
	return g
}

// chain builds the path 0-1-...-(n-1).
func chain(n int) *core.Graph {
	g := core.NewGraph()
	g.AddVertices(n)
	for i := 0; i+1 < n; i++ {
		_, _ = g.AddEdge(i, i+1)
	}
	return g
}

// TestBFS_Errors verifies that invalid inputs are rejected.
func TestBFS_Errors(t *testing.T) {
	if _, err := bfs.BFS(nil, 0); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	g := core.NewGraph()
	if _, err := bfs.BFS(g, 3); !errors.Is(err, bfs.ErrStartVertexNotFound) {
		t.Errorf("missing start: want ErrStartVertexNotFound, got %v", err)
	}
	if _, err := bfs.BFS(graphOf(2), 0, bfs.WithTarget(5)); !errors.Is(err, bfs.ErrTargetVertexNotFound) {
		t.Errorf("missing target: want ErrTargetVertexNotFound, got %v", err)
	}
}

// TestBFS_SimpleTraversal covers the trivial one-vertex graph.
func TestBFS_SimpleTraversal(t *testing.T) {
	res, err := bfs.BFS(graphOf(1), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []int{0}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	if want := []int{0}; !reflect.DeepEqual(res.Dist, want) {
		t.Errorf("Dist = %v; want %v", res.Dist, want)
	}
	if !res.Spans() {
		t.Error("single vertex walk should span")
	}
}

// TestCycleAndDepths covers a simple 4-cycle and checks distances.
func TestCycleAndDepths(t *testing.T) {
	// 0–1–2–3–0
	g := graphOf(4, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 3}, [2]int{3, 0})

	res, err := bfs.BFS(g, 0)
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{0, 1, 3, 2}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	if want := []int{0, 1, 2, 1}; !reflect.DeepEqual(res.Dist, want) {
		t.Errorf("Dist = %v; want %v", res.Dist, want)
	}
	if d, err := res.DistanceTo(2); err != nil || d != 2 {
		t.Errorf("DistanceTo(2) = %d, %v; want 2, nil", d, err)
	}
}

// TestBFS_Disconnected ensures BFS only explores the component of the start vertex.
func TestBFS_Disconnected(t *testing.T) {
	g := graphOf(4, [2]int{0, 1}, [2]int{2, 3})

	res0, _ := bfs.BFS(g, 0)
	if !reflect.DeepEqual(res0.Order, []int{0, 1}) {
		t.Errorf("From 0: got %v; want [0 1]", res0.Order)
	}
	if want := []int{0, 1, bfs.Unreached, bfs.Unreached}; !reflect.DeepEqual(res0.Dist, want) {
		t.Errorf("From 0: Dist = %v; want %v", res0.Dist, want)
	}
	if res0.Spans() || res0.Reached(2) || !res0.Reached(1) {
		t.Errorf("From 0: Spans=%v Reached(2)=%v Reached(1)=%v", res0.Spans(), res0.Reached(2), res0.Reached(1))
	}
	if _, err := res0.DistanceTo(3); !errors.Is(err, bfs.ErrUnreachable) {
		t.Errorf("DistanceTo(3): want ErrUnreachable, got %v", err)
	}
	if _, err := res0.DistanceTo(4); !errors.Is(err, bfs.ErrTargetVertexNotFound) {
		t.Errorf("DistanceTo(4): want ErrTargetVertexNotFound, got %v", err)
	}
	if res0.Reached(-1) {
		t.Error("Reached(-1) should be false")
	}

	res2, _ := bfs.BFS(g, 2)
	if !reflect.DeepEqual(res2.Order, []int{2, 3}) {
		t.Errorf("From 2: got %v; want [2 3]", res2.Order)
	}
}

// TestBFS_Target verifies the walk stops as soon as the target is discovered.
func TestBFS_Target(t *testing.T) {
	res, err := bfs.BFS(chain(10), 0, bfs.WithTarget(3))
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{0, 1, 2, 3}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	if res.Reached(4) {
		t.Errorf("vertex 4 discovered past the target: Dist = %v", res.Dist)
	}
	if len(res.Dist) != 10 {
		t.Errorf("len(Dist) = %d; want 10", len(res.Dist))
	}

	// the source itself ends the walk immediately
	res, _ = bfs.BFS(chain(3), 1, bfs.WithTarget(1))
	if want := []int{1}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("source target: Order = %v; want %v", res.Order, want)
	}
}

// TestBFS_Cancellation verifies that a cancelled context halts BFS promptly.
func TestBFS_Cancellation(t *testing.T) {
	g := chain(100)
	ctx, cancel := context.WithCancel(context.Background())
	cancel() // immediate
	if _, err := bfs.BFS(g, 0, bfs.WithContext(ctx)); !errors.Is(err, context.Canceled) {
		t.Errorf("Cancellation: want context.Canceled, got %v", err)
	}
	if _, err := bfs.ShortestPathLengthContext(ctx, g, 0, 99); !errors.Is(err, context.Canceled) {
		t.Errorf("ShortestPathLengthContext: want context.Canceled, got %v", err)
	}
}

// TestBFS_ConcurrentSafety ensures two concurrent BFS runs on the same graph do not interfere.
func TestBFS_ConcurrentSafety(t *testing.T) {
	g := chain(2)
	errs := make(chan error, 2)
	for i := 0; i < 2; i++ {
		go func() { _, err := bfs.BFS(g, 0); errs <- err }()
	}
	for i := 0; i < 2; i++ {
		if err := <-errs; err != nil {
			t.Errorf("Concurrent run #%d: unexpected error %v", i, err)
		}
	}
}
