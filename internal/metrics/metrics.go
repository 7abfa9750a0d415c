// Package metrics exposes the service's Prometheus instrumentation.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// EvaluationRuns counts completed evaluation runs by outcome.
	EvaluationRuns = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "draftrun_evaluation_runs_total",
		Help: "Completed prospect evaluation runs by outcome.",
	}, []string{"outcome"})

	// PlayersEvaluated counts individual player evaluations.
	PlayersEvaluated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "draftrun_players_evaluated_total",
		Help: "Players scored across all evaluation runs.",
	})

	// PlayerErrors counts per-player evaluation failures.
	PlayerErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "draftrun_player_errors_total",
		Help: "Players that failed evaluation and were skipped.",
	})

	// EvaluationDuration observes full-pool evaluation latency.
	EvaluationDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "draftrun_evaluation_duration_seconds",
		Help:    "Wall time to evaluate a full prospect pool.",
		Buckets: prometheus.DefBuckets,
	})

	// SnapshotHits counts evaluation snapshot cache hits and misses.
	SnapshotHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "draftrun_snapshot_cache_total",
		Help: "Evaluation snapshot cache lookups by result.",
	}, []string{"result"})
)
