// Package core_test verifies thread-safety of core.Graph under concurrent operations.
package core_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/randgraph/core"
)

// TestConcurrentAddEdge ensures that concurrent AddEdge calls on a shared hub
// are safe and each distinct edge is counted once.
func TestConcurrentAddEdge(t *testing.T) {
	const num = 200 // number of leaves
	g := core.NewGraph()
	g.AddVertices(num + 1)

	var wg sync.WaitGroup
	wg.Add(2 * num)
	for i := 1; i <= num; i++ {
		// two goroutines race on the same edge; exactly one insertion must win
		for r := 0; r < 2; r++ {
			go func(id int) {
				defer wg.Done()
				_, err := g.AddEdge(0, id)
				require.NoError(t, err)
			}(i)
		}
	}
	wg.Wait()

	d, err := g.Degree(0)
	require.NoError(t, err)
	require.Equal(t, num, d)
	require.Equal(t, num, g.EdgeCount())
}

// TestConcurrentReaders mixes reads on a finished graph.
func TestConcurrentReaders(t *testing.T) {
	g := core.NewGraph()
	g.AddVertices(50)
	for i := 0; i < 49; i++ {
		_, _ = g.AddEdge(i, i+1)
	}

	var wg sync.WaitGroup
	for r := 0; r < 8; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for v := 0; v < 50; v++ {
				_, _ = g.Neighbors(v)
				_ = g.HasEdge(v, v+1)
			}
		}()
	}
	wg.Wait()
	require.Equal(t, 49, g.EdgeCount())
}
