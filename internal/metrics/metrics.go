// Marquee - Movie Metadata API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package metrics

import (
	"errors"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus metrics for:
// - MongoDB operation latency and errors
// - API endpoint latency and throughput
// - Poster bulk updates
// - Circuit breaker state

var (
	// Database Metrics
	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "mongo_operation_duration_seconds",
			Help:    "Duration of MongoDB operations in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation", "collection"},
	)

	DBQueryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mongo_operation_errors_total",
			Help: "Total number of failed MongoDB operations",
		},
		[]string{"operation", "collection", "error_type"},
	)

	DBConnected = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "mongo_connected",
			Help: "Whether the MongoDB client is connected and published (1) or not (0)",
		},
	)

	MoviesReturned = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "movies_returned_per_request",
			Help:    "Number of movies returned by a listing request",
			Buckets: []float64{0, 1, 5, 10, 25, 50, 100},
		},
	)

	PosterUpdates = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "poster_updates_total",
			Help: "Poster update entries by outcome",
		},
		[]string{"result"}, // "matched", "modified", "unmatched"
	)

	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	APIErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_errors_total",
			Help: "Total number of error responses by kind",
		},
		[]string{"kind", "status_code"},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // result: "success", "failure", "rejected"
	)

	CircuitBreakerConsecutiveFailures = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_consecutive_failures",
			Help: "Current number of consecutive failures",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)

	// System Metrics
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "app_info",
			Help: "Application version and build information",
		},
		[]string{"version", "go_version"},
	)

	AppUptime = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "app_uptime_seconds",
			Help: "Application uptime in seconds",
		},
	)
)

// errorTyper is implemented by errors that can name their own category.
type errorTyper interface {
	ErrorType() string
}

// RecordDBQuery records a database operation metric
func RecordDBQuery(operation, collection string, duration time.Duration, err error) {
	DBQueryDuration.WithLabelValues(operation, collection).Observe(duration.Seconds())
	if err != nil {
		DBQueryErrors.WithLabelValues(operation, collection, errorType(err)).Inc()
	}
}

// errorType returns a bounded label for err.
func errorType(err error) string {
	var typed errorTyper
	if errors.As(err, &typed) {
		return typed.ErrorType()
	}
	errType := err.Error()
	// Truncate long error messages
	if len(errType) > 50 {
		errType = errType[:50]
	}
	return errType
}

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// RecordAPIError records an error response
func RecordAPIError(kind string, statusCode int) {
	APIErrors.WithLabelValues(kind, strconv.Itoa(statusCode)).Inc()
}

// RecordPosterUpdates records the outcome of a bulk poster update.
func RecordPosterUpdates(requested, matched, modified int64) {
	PosterUpdates.WithLabelValues("matched").Add(float64(matched))
	PosterUpdates.WithLabelValues("modified").Add(float64(modified))
	if unmatched := requested - matched; unmatched > 0 {
		PosterUpdates.WithLabelValues("unmatched").Add(float64(unmatched))
	}
}

// SetDBConnected updates the connection gauge
func SetDBConnected(connected bool) {
	if connected {
		DBConnected.Set(1)
	} else {
		DBConnected.Set(0)
	}
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}
