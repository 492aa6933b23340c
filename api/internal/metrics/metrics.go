package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ModelRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assistant_model_requests_total",
			Help: "Total number of model invocations by operation and outcome",
		},
		[]string{"operation", "outcome"},
	)

	ModelRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "assistant_model_request_duration_seconds",
			Help:    "Duration of model invocations in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	PriorityResolutions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assistant_priority_resolutions_total",
			Help: "Priority results by the fallback tier that produced them",
		},
		[]string{"tier"},
	)

	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests by route and status code",
		},
		[]string{"route", "code"},
	)
)
