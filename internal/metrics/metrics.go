package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// UpstreamCallsTotal tracks calls to chain and agent collaborators.
	UpstreamCallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wallet_guardian_upstream_calls_total",
			Help: "Total number of upstream calls",
		},
		[]string{"target", "operation"},
	)

	// UpstreamErrorsTotal tracks upstream call failures by error type.
	UpstreamErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wallet_guardian_upstream_errors_total",
			Help: "Total number of upstream call failures",
		},
		[]string{"target", "operation", "error_type"},
	)

	// UpstreamLatency tracks upstream call latency.
	UpstreamLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "wallet_guardian_upstream_latency_seconds",
			Help:    "Upstream call latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"target", "operation"},
	)

	// ScansTotal tracks live wallet scans by chain and outcome.
	ScansTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wallet_guardian_scans_total",
			Help: "Total number of live wallet scans",
		},
		[]string{"chain", "outcome"},
	)
)
