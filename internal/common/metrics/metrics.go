// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests handled",
		},
		[]string{"route", "method", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "http_request_duration_seconds",
			Help: "Duration of HTTP request handling in seconds",
		},
		[]string{"route", "method"},
	)

	ScoreComputationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "score_computations_total",
			Help: "Total number of admission-chance and match computations",
		},
		[]string{"kind"},
	)

	ProviderAttemptsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ai_provider_attempts_total",
			Help: "Total number of text-generation provider attempts",
		},
		[]string{"provider", "outcome"},
	)

	ProviderFallbacksTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "ai_provider_fallbacks_total",
			Help: "Total number of requests answered by the canned fallback",
		},
	)
)
