// Package core_test verifies core.Graph method-level contracts.
package core_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/randgraph/core"
)

// TestGraph_AddVertex verifies contiguous ID assignment.
func TestGraph_AddVertex(t *testing.T) {
	g := core.NewGraph()
	require.Equal(t, 0, g.AddVertex())
	require.Equal(t, 1, g.AddVertex())
	require.Equal(t, 2, g.AddVertices(3))
	require.Equal(t, 5, g.VertexCount())
	require.Equal(t, []int{0, 1, 2, 3, 4}, g.Vertices())

	require.True(t, g.HasVertex(4))
	require.False(t, g.HasVertex(5))
	require.False(t, g.HasVertex(-1))

	// non-positive batch is a no-op
	require.Equal(t, 5, g.AddVertices(0))
	require.Equal(t, 5, g.VertexCount())
}

// TestGraph_AddEdge covers idempotence, symmetry and rejection sentinels.
func TestGraph_AddEdge(t *testing.T) {
	g := core.NewGraph(core.WithCapacity(3))
	g.AddVertices(3)

	added, err := g.AddEdge(0, 1)
	require.NoError(t, err)
	require.True(t, added)

	// same edge in either orientation is a no-op
	added, err = g.AddEdge(0, 1)
	require.NoError(t, err)
	require.False(t, added)
	added, err = g.AddEdge(1, 0)
	require.NoError(t, err)
	require.False(t, added)
	require.Equal(t, 1, g.EdgeCount())

	require.True(t, g.HasEdge(0, 1))
	require.True(t, g.HasEdge(1, 0), "edge set must be symmetric")
	require.False(t, g.HasEdge(0, 2))
	require.False(t, g.HasEdge(0, 99))

	_, err = g.AddEdge(2, 2)
	require.True(t, errors.Is(err, core.ErrLoopNotAllowed), "got %v", err)

	_, err = g.AddEdge(0, 7)
	require.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = g.AddEdge(-1, 0)
	require.ErrorIs(t, err, core.ErrVertexNotFound)
	require.Equal(t, 1, g.EdgeCount())
}

// TestGraph_NeighborsDegree checks sorted neighbor lists and degrees.
func TestGraph_NeighborsDegree(t *testing.T) {
	g := core.NewGraph()
	g.AddVertices(4)
	for _, e := range [][2]int{{0, 3}, {0, 1}, {0, 2}, {1, 2}} {
		_, err := g.AddEdge(e[0], e[1])
		require.NoError(t, err)
	}

	nbrs, err := g.Neighbors(0)
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3}, nbrs)

	d, err := g.Degree(3)
	require.NoError(t, err)
	require.Equal(t, 1, d)

	_, err = g.Neighbors(4)
	require.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = g.Degree(4)
	require.ErrorIs(t, err, core.ErrVertexNotFound)

	require.Equal(t, []core.Edge{{U: 0, V: 1}, {U: 0, V: 2}, {U: 0, V: 3}, {U: 1, V: 2}}, g.Edges())
}

// TestGraph_Annotations verifies absent-until-set semantics.
func TestGraph_Annotations(t *testing.T) {
	g := core.NewGraph()
	g.AddVertices(2)

	_, ok := g.Annotation(0, "cc")
	require.False(t, ok)

	require.NoError(t, g.SetAnnotation(0, "cc", 0.5))
	v, ok := g.Annotation(0, "cc")
	require.True(t, ok)
	require.Equal(t, 0.5, v)

	_, ok = g.Annotation(1, "cc")
	require.False(t, ok)
	_, ok = g.Annotation(9, "cc")
	require.False(t, ok)

	require.ErrorIs(t, g.SetAnnotation(9, "cc", 1), core.ErrVertexNotFound)
}

// TestGraph_CloneClear ensures Clone is deep and Clear empties the graph.
func TestGraph_CloneClear(t *testing.T) {
	g := core.NewGraph()
	g.AddVertices(3)
	_, _ = g.AddEdge(0, 1)
	require.NoError(t, g.SetAnnotation(1, "x", 2))

	c := g.Clone()
	_, _ = c.AddEdge(1, 2)
	require.NoError(t, c.SetAnnotation(1, "x", 3))

	require.Equal(t, 1, g.EdgeCount())
	require.Equal(t, 2, c.EdgeCount())
	v, _ := g.Annotation(1, "x")
	require.Equal(t, 2.0, v, "clone must not share annotation maps")

	g.Clear()
	require.Zero(t, g.VertexCount())
	require.Zero(t, g.EdgeCount())
	require.Empty(t, g.Edges())
	require.Equal(t, 3, c.VertexCount())
}

// TestWithCapacity_Panics ensures option constructors validate eagerly.
func TestWithCapacity_Panics(t *testing.T) {
	require.Panics(t, func() { core.WithCapacity(-1) })
}
