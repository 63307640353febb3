package builder_test

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/randgraph/bfs"
	"github.com/katalvlaran/randgraph/builder"
)

// recorder is an Observer that keeps every event.
type recorder struct {
	mu        sync.Mutex
	attempts  []bool
	finished  int
	lastTotal int
	lastErr   error
}

func (r *recorder) AttemptFinished(_ string, _ int, connected bool, _ time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.attempts = append(r.attempts, connected)
}

func (r *recorder) BuildFinished(_ string, attempts int, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.finished++
	r.lastTotal = attempts
	r.lastErr = err
}

func quietLogger(buf *bytes.Buffer) *log.Logger {
	return log.NewWithOptions(buf, log.Options{Level: log.WarnLevel})
}

func TestBuildConnected_SingleVertexAcceptedImmediately(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	rec := &recorder{}
	rep, err := builder.BuildConnected(context.Background(),
		[]builder.BuilderOption{builder.WithLogger(quietLogger(&buf)), builder.WithObserver(rec)},
		builder.Gilbert(1, 0))
	require.NoError(t, err)
	require.Equal(t, 1, rep.Attempts)
	require.Equal(t, 1, rep.Graph.VertexCount())
	require.Empty(t, buf.String(), "no regeneration warning")
	require.Equal(t, []bool{true}, rec.attempts)
	require.Equal(t, 1, rec.finished)
	require.NoError(t, rec.lastErr)
}

func TestBuildConnected_ExhaustsBudget(t *testing.T) {
	t.Parallel()

	const budget = 7
	var buf bytes.Buffer
	rec := &recorder{}
	_, err := builder.BuildConnected(context.Background(),
		[]builder.BuilderOption{
			builder.WithLogger(quietLogger(&buf)),
			builder.WithObserver(rec),
			builder.WithMaxAttempts(budget),
			builder.WithLabel("gilbert"),
		},
		builder.Gilbert(5, 0))
	require.ErrorIs(t, err, builder.ErrNotConnected)
	require.Contains(t, err.Error(), builder.MethodBuildConnected)

	require.Len(t, rec.attempts, budget)
	require.Equal(t, budget, rec.lastTotal)
	require.ErrorIs(t, rec.lastErr, builder.ErrNotConnected)
	require.Equal(t, budget, strings.Count(buf.String(), "graph is not connected, regenerating"))
	require.Contains(t, buf.String(), "gilbert")
}

func TestBuildConnected_ParameterErrorIsNotRetried(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	_, err := builder.BuildConnected(context.Background(),
		[]builder.BuilderOption{builder.WithObserver(rec)},
		builder.WattsStrogatz(4, 2, 0))
	require.ErrorIs(t, err, builder.ErrInvalidHalfDegree)
	require.Empty(t, rec.attempts)
	require.Equal(t, 1, rec.lastTotal)
}

func TestBuildConnected_ContextCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rec := &recorder{}
	_, err := builder.BuildConnected(ctx,
		[]builder.BuilderOption{builder.WithObserver(rec)},
		builder.Gilbert(5, 1))
	require.ErrorIs(t, err, context.Canceled)
	require.Zero(t, rec.lastTotal)
}

func TestBuildConnected_RandomModels(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	opts := []builder.BuilderOption{builder.WithSeed(11), builder.WithLogger(quietLogger(&buf))}

	rep, err := builder.BuildConnected(context.Background(), opts, builder.Gilbert(60, 0.08))
	require.NoError(t, err)
	require.True(t, bfs.IsConnected(rep.Graph))
	require.GreaterOrEqual(t, rep.Attempts, 1)

	rep, err = builder.BuildConnected(context.Background(), opts, builder.WattsStrogatz(60, 2, 0.2))
	require.NoError(t, err)
	require.True(t, bfs.IsConnected(rep.Graph))
	require.Equal(t, 60, rep.Graph.VertexCount())
}

func TestBuildConnected_Reproducible(t *testing.T) {
	t.Parallel()

	run := func() ([]int, int) {
		var buf bytes.Buffer
		rep, err := builder.BuildConnected(context.Background(),
			[]builder.BuilderOption{builder.WithSeed(3), builder.WithLogger(quietLogger(&buf))},
			builder.Gilbert(30, 0.1))
		require.NoError(t, err)
		degrees := make([]int, 0, 30)
		for _, v := range rep.Graph.Vertices() {
			d, _ := rep.Graph.Degree(v)
			degrees = append(degrees, d)
		}
		return degrees, rep.Attempts
	}

	d1, a1 := run()
	d2, a2 := run()
	require.Equal(t, d1, d2)
	require.Equal(t, a1, a2)
}
