package randgraph_test

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/randgraph"
	"github.com/katalvlaran/randgraph/bfs"
	"github.com/katalvlaran/randgraph/builder"
)

func bufLogger(buf *bytes.Buffer) *log.Logger {
	return log.NewWithOptions(buf, log.Options{Level: log.InfoLevel})
}

func TestNewGilbert_ConnectedAndReproducible(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	opts := []randgraph.Option{randgraph.WithSeed(21), randgraph.WithLogger(bufLogger(&buf))}

	a, err := randgraph.NewGilbert(context.Background(), 40, 0.08, opts...)
	require.NoError(t, err)
	b, err := randgraph.NewGilbert(context.Background(), 40, 0.08, opts...)
	require.NoError(t, err)

	require.True(t, bfs.IsConnected(a.Graph()))
	require.Equal(t, a.Graph().Edges(), b.Graph().Edges())
	require.Equal(t, a.Attempts(), b.Attempts())
	require.Equal(t, int64(21), a.Seed())
	require.NotEqual(t, a.ID(), b.ID(), "every instance gets its own ID")
	require.Equal(t, randgraph.ModelGilbert, a.Model())
	require.Equal(t, randgraph.Params{N: 40, P: 0.08}, a.Params())
}

func TestNewWattsStrogatz_SeedIsRecorded(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := bufLogger(&buf)
	rg, err := randgraph.NewWattsStrogatz(context.Background(), 30, 2, 0.2, randgraph.WithLogger(l))
	require.NoError(t, err)

	replay, err := randgraph.NewWattsStrogatz(context.Background(), 30, 2, 0.2,
		randgraph.WithLogger(l), randgraph.WithSeed(rg.Seed()))
	require.NoError(t, err)
	require.Equal(t, rg.Graph().Edges(), replay.Graph().Edges())
	require.Equal(t, 2, rg.Params().K)
}

func TestNew_LogsCreation(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	rg, err := randgraph.NewGilbert(context.Background(), 5, 1,
		randgraph.WithSeed(1), randgraph.WithLogger(bufLogger(&buf)))
	require.NoError(t, err)

	out := buf.String()
	require.Contains(t, out, "creating graph")
	require.Contains(t, out, rg.ID().String())

	rg.AverageDegree()
	rg.AverageDegree()
	require.Equal(t, 1, strings.Count(buf.String(), "average degree"), "metric logged once")
}

func TestNew_Errors(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := bufLogger(&buf)

	_, err := randgraph.NewGilbert(context.Background(), 10, 1.5, randgraph.WithLogger(l))
	require.ErrorIs(t, err, builder.ErrInvalidProbability)

	_, err = randgraph.NewWattsStrogatz(context.Background(), 4, 2, 0.1, randgraph.WithLogger(l))
	require.ErrorIs(t, err, builder.ErrInvalidHalfDegree)

	_, err = randgraph.NewGilbert(context.Background(), 3, 0,
		randgraph.WithLogger(l), randgraph.WithMaxAttempts(3))
	require.ErrorIs(t, err, builder.ErrNotConnected)
	require.Equal(t, 3, strings.Count(buf.String(), "graph is not connected, regenerating"))
}

func TestNew_OptionPanics(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() { randgraph.WithLogger(nil) })
	require.Panics(t, func() { randgraph.WithMaxAttempts(0) })
	require.Panics(t, func() { randgraph.WithObserver(nil) })
}

func TestStatistics_CompleteGraph(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	rg, err := randgraph.NewGilbert(context.Background(), 20, 1,
		randgraph.WithSeed(3), randgraph.WithLogger(bufLogger(&buf)))
	require.NoError(t, err)

	apl, err := rg.AveragePathLength()
	require.NoError(t, err)
	require.Equal(t, 1.0, apl)
	exact, err := rg.ExactAveragePathLength()
	require.NoError(t, err)
	require.Equal(t, 1.0, exact)
	require.Equal(t, 1.0, rg.ClusteringCoefficient())
	require.Equal(t, 19.0, rg.AverageDegree())
}

func TestParseStats(t *testing.T) {
	t.Parallel()

	all, err := randgraph.ParseStats("all")
	require.NoError(t, err)
	require.Equal(t, randgraph.AllStats, all)

	empty, err := randgraph.ParseStats("")
	require.NoError(t, err)
	require.Equal(t, randgraph.AllStats, empty)

	some, err := randgraph.ParseStats("cc, degree")
	require.NoError(t, err)
	require.Equal(t, []randgraph.Stat{randgraph.StatClustering, randgraph.StatAverageDegree}, some)

	// "all" inside a list expands in place without duplicates
	mixed, err := randgraph.ParseStats("apl, all")
	require.NoError(t, err)
	require.Equal(t, randgraph.AllStats, mixed)

	exact, err := randgraph.ParseStats("apl-exact,all")
	require.NoError(t, err)
	require.Equal(t, append([]randgraph.Stat{randgraph.StatExactAveragePathLength}, randgraph.AllStats...), exact)

	_, err = randgraph.ParseStats("apl,diameter")
	require.ErrorIs(t, err, randgraph.ErrUnknownStat)
}

func TestSnapshot_Serialization(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	rg, err := randgraph.NewWattsStrogatz(context.Background(), 10, 2, 0,
		randgraph.WithSeed(5), randgraph.WithLogger(bufLogger(&buf)))
	require.NoError(t, err)

	snap, err := rg.Snapshot(randgraph.StatClustering, randgraph.StatAverageDegree)
	require.NoError(t, err)
	require.Nil(t, snap.AveragePathLength)
	require.NotNil(t, snap.ClusteringCoefficient)
	require.InDelta(t, 0.5, *snap.ClusteringCoefficient, 1e-12)
	require.Equal(t, 4.0, *snap.AverageDegree)
	require.Equal(t, 20, snap.Edges)

	raw, err := json.Marshal(snap)
	require.NoError(t, err)
	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	require.Equal(t, "watts-strogatz", decoded["model"])
	require.NotContains(t, decoded, "average_path_length")
	require.Contains(t, decoded, "clustering_coefficient")

	y, err := yaml.Marshal(snap)
	require.NoError(t, err)
	require.Contains(t, string(y), "average_degree: 4")
	require.Contains(t, string(y), "seed: 5")

	full, err := rg.Snapshot()
	require.NoError(t, err)
	require.NotNil(t, full.AveragePathLength)
	require.InDelta(t, 15.0/9.0, *full.AveragePathLength, 1e-12)

	_, err = rg.Snapshot(randgraph.Stat("bogus"))
	require.ErrorIs(t, err, randgraph.ErrUnknownStat)
}
