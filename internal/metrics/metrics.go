// Package metrics holds the prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "heloc"

// Status label values.
const (
	StatusOK      = "ok"
	StatusInvalid = "invalid"
)

var (
	// Calculations counts calculation attempts by action and outcome.
	Calculations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "calculations_total",
			Help:      "Number of interest calculations by action and status.",
		},
		[]string{"action", "status"},
	)

	// ValidationFailures counts rejected inputs by reason.
	ValidationFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "validation_failures_total",
			Help:      "Number of rejected calculation inputs by reason.",
		},
		[]string{"reason"},
	)

	// FormSubmissions counts web form actions by locale and brand.
	FormSubmissions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "form_submissions_total",
			Help:      "Number of web form submissions by action, locale and brand.",
		},
		[]string{"action", "locale", "brand"},
	)

	// HTTPRequests counts served requests by route pattern, method and status code.
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Number of HTTP requests by route, method and status code.",
		},
		[]string{"route", "method", "code"},
	)

	// HTTPDuration observes request latency by route pattern.
	HTTPDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"route"},
	)
)
