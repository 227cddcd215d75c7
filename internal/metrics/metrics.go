// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

// Package metrics holds the Prometheus collectors exported by analysis
// runs: conflict counts by kind, analysis duration, and candidate-bitmap
// pruning ratio.
package metrics

import (
	"context"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"grimm.is/aclcheck/internal/logging"
)

// Metrics holds all aclcheck Prometheus metrics.
type Metrics struct {
	AnalysisDuration prometheus.Histogram
	ConflictsByKind  *prometheus.CounterVec
	RulesAnalyzed    prometheus.Counter
	CandidatesPruned prometheus.Gauge
	ACLsProcessed    prometheus.Counter
	ParseErrors      prometheus.Counter
}

// NewMetrics creates a fresh, unregistered Metrics collector. labels is
// attached as constant labels on every collector (e.g. from the config
// file's top-level static_labels attribute); it may be nil.
func NewMetrics(labels map[string]string) *Metrics {
	return &Metrics{
		AnalysisDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:        "aclcheck_analysis_duration_seconds",
			Help:        "Wall-clock duration of a single ACL analysis run",
			Buckets:     prometheus.DefBuckets,
			ConstLabels: labels,
		}),

		ConflictsByKind: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "aclcheck_conflicts_total",
			Help:        "Total number of conflicts found, partitioned by kind",
			ConstLabels: labels,
		}, []string{"kind"}),

		RulesAnalyzed: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "aclcheck_rules_analyzed_total",
			Help:        "Total number of rules analyzed across all ACLs",
			ConstLabels: labels,
		}),

		CandidatesPruned: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "aclcheck_candidate_pruning_ratio",
			Help:        "Ratio of candidate-bitmap population to the quadratic baseline for the most recent ACL",
			ConstLabels: labels,
		}),

		ACLsProcessed: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "aclcheck_acls_processed_total",
			Help:        "Total number of ACLs analyzed",
			ConstLabels: labels,
		}),

		ParseErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "aclcheck_parse_errors_total",
			Help:        "Total number of ACL documents that failed to parse",
			ConstLabels: labels,
		}),
	}
}

// Describe implements prometheus.Collector.
func (m *Metrics) Describe(ch chan<- *prometheus.Desc) {
	m.AnalysisDuration.Describe(ch)
	m.ConflictsByKind.Describe(ch)
	m.RulesAnalyzed.Describe(ch)
	m.CandidatesPruned.Describe(ch)
	m.ACLsProcessed.Describe(ch)
	m.ParseErrors.Describe(ch)
}

// Collect implements prometheus.Collector.
func (m *Metrics) Collect(ch chan<- prometheus.Metric) {
	m.AnalysisDuration.Collect(ch)
	m.ConflictsByKind.Collect(ch)
	m.RulesAnalyzed.Collect(ch)
	m.CandidatesPruned.Collect(ch)
	m.ACLsProcessed.Collect(ch)
	m.ParseErrors.Collect(ch)
}

// Register registers m with the default Prometheus registry.
func (m *Metrics) Register() {
	prometheus.MustRegister(m)
}

// RecordConflict increments the per-kind conflict counter.
func (m *Metrics) RecordConflict(kind string) {
	m.ConflictsByKind.WithLabelValues(kind).Inc()
}

// Serve starts an HTTP server exposing /metrics on listen, blocking until
// ctx is cancelled. The caller is expected to run it in its own goroutine.
func (m *Metrics) Serve(ctx context.Context, listen string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{Addr: listen, Handler: mux}

	go func() {
		<-ctx.Done()
		srv.Close()
	}()

	logging.Infof("[METRICS] listening on %s/metrics", listen)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
