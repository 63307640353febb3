// Package telemetry exports generation and statistics events as Prometheus
// metrics.
//
// Metrics (namespace "randgraph"):
//
//  1. generation_attempts_total (counter): generated graphs.
//     Labels: model, outcome (connected/disconnected).
//  2. generation_attempt_seconds (histogram): time to generate and check one graph.
//     Labels: model.
//  3. builds_total (counter): BuildConnected calls.
//     Labels: model, status (success/error).
//  4. attempts_per_build (histogram): attempts needed per build.
//     Labels: model.
//  5. statistic (gauge): last reported statistic value.
//     Labels: model, stat.
//
// Usage:
//
//	reg := prometheus.NewRegistry()
//	rec := telemetry.NewRecorder(reg)
//	rg, err := randgraph.NewGilbert(ctx, n, p, randgraph.WithObserver(rec))
//	...
//	err = telemetry.WriteTextfile("randgraph.prom", reg)
package telemetry

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/randgraph"
	"github.com/katalvlaran/randgraph/builder"
)

const namespace = "randgraph"

// Recorder implements builder.Observer on top of a Prometheus registry.
// Safe for concurrent use.
type Recorder struct {
	attempts        *prometheus.CounterVec
	attemptDuration *prometheus.HistogramVec
	builds          *prometheus.CounterVec
	perBuild        *prometheus.HistogramVec
	statistic       *prometheus.GaugeVec
}

var _ builder.Observer = (*Recorder)(nil)

// NewRecorder registers all metrics with reg; nil means prometheus.DefaultRegisterer.
// Registering twice on the same registry panics, as promauto does.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Recorder{
		attempts: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "generation_attempts_total",
			Help:      "Generated graphs, by connectivity outcome",
		}, []string{"model", "outcome"}),
		attemptDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "generation_attempt_seconds",
			Help:      "Time to generate one graph and check its connectivity",
			Buckets:   prometheus.ExponentialBuckets(1e-5, 4, 10), // 10µs to ~2.6s
		}, []string{"model"}),
		builds: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "builds_total",
			Help:      "Connected-graph builds, by status",
		}, []string{"model", "status"}),
		perBuild: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "attempts_per_build",
			Help:      "Generation attempts needed per build",
			Buckets:   []float64{1, 2, 5, 10, 50, 100, 500, 1000},
		}, []string{"model"}),
		statistic: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "statistic",
			Help:      "Last reported graph statistic",
		}, []string{"model", "stat"}),
	}
}

// AttemptFinished implements builder.Observer.
func (r *Recorder) AttemptFinished(label string, _ int, connected bool, elapsed time.Duration) {
	outcome := "disconnected"
	if connected {
		outcome = "connected"
	}
	r.attempts.WithLabelValues(label, outcome).Inc()
	r.attemptDuration.WithLabelValues(label).Observe(elapsed.Seconds())
}

// BuildFinished implements builder.Observer.
func (r *Recorder) BuildFinished(label string, attempts int, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	r.builds.WithLabelValues(label, status).Inc()
	r.perBuild.WithLabelValues(label).Observe(float64(attempts))
}

// RecordSnapshot sets one gauge per statistic present in s.
func (r *Recorder) RecordSnapshot(s *randgraph.Snapshot) {
	model := string(s.Model)
	set := func(stat randgraph.Stat, v *float64) {
		if v != nil {
			r.statistic.WithLabelValues(model, string(stat)).Set(*v)
		}
	}
	set(randgraph.StatAveragePathLength, s.AveragePathLength)
	set(randgraph.StatExactAveragePathLength, s.ExactAveragePathLength)
	set(randgraph.StatClustering, s.ClusteringCoefficient)
	set(randgraph.StatAverageDegree, s.AverageDegree)
}

// WriteTextfile writes everything gathered by g in the Prometheus text
// format, for the node exporter textfile collector.
func WriteTextfile(path string, g prometheus.Gatherer) error {
	return prometheus.WriteToTextfile(path, g)
}
