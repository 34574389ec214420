// Package metrics exposes Prometheus instrumentation for the turn pipeline.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// TurnsTotal counts processed turns by resolved action.
	TurnsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "shopassist_turns_total",
		Help: "Number of conversational turns processed, by resolved action.",
	}, []string{"action"})

	// TurnDuration observes end-to-end turn latency.
	TurnDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "shopassist_turn_duration_seconds",
		Help:    "End-to-end latency of a conversational turn.",
		Buckets: prometheus.DefBuckets,
	})

	// OracleRequestsTotal counts language-oracle calls by call site and
	// outcome.
	OracleRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "shopassist_oracle_requests_total",
		Help: "Number of language-oracle calls, by call site and outcome.",
	}, []string{"call", "outcome"})
)
