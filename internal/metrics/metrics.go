// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RecommendationsTotal counts requester outcomes by error kind ("ok" on success).
	RecommendationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommender_requests_total",
			Help: "Recommendation requests by outcome kind",
		},
		[]string{"kind"},
	)

	// CompletionDuration measures the provider round trip.
	CompletionDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommender_request_duration_seconds",
			Help:    "Completion provider round trip duration",
			Buckets: []float64{0.25, 0.5, 1, 2, 5, 10, 20, 30, 45, 60},
		},
	)

	// ModelFallbacks counts model labels that were not recognized.
	ModelFallbacks = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "recommender_model_fallbacks_total",
			Help: "Unrecognized model labels resolved to the default model",
		},
	)

	// HTTPRequestsTotal counts API requests by method, route pattern and status.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommender_http_requests_total",
			Help: "HTTP API requests",
		},
		[]string{"method", "route", "status"},
	)
)
