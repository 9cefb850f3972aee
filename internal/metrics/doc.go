// Marquee - Movie Metadata API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

/*
Package metrics provides Prometheus metrics collection and export for observability.

All collectors are registered on the default registry through promauto and
exposed at /metrics in the Prometheus text format:

	curl http://localhost:5000/metrics

# Available Metrics

API Metrics:
  - api_requests_total: Total API requests (counter)
    Labels: method, endpoint, status_code
  - api_request_duration_seconds: Request latency (histogram)
    Labels: method, endpoint
  - api_active_requests: In-flight requests (gauge)
  - api_rate_limit_hits_total: Requests rejected by the rate limiter (counter)
    Labels: endpoint
  - api_errors_total: Error responses (counter)
    Labels: kind, status_code

MongoDB Metrics:
  - mongo_operation_duration_seconds: Operation latency (histogram)
    Labels: operation (find, find_one, bulk_write, ping, create_index), collection
  - mongo_operation_errors_total: Failed operations (counter)
    Labels: operation, collection, error_type
  - mongo_connected: 1 while a client is published to handlers (gauge)
  - movies_returned_per_request: Listing result sizes (histogram)
  - poster_updates_total: Poster entries by outcome (counter)
    Labels: result (matched, modified, unmatched)

Circuit Breaker Metrics:
  - circuit_breaker_state: 0=closed, 1=half-open, 2=open (gauge)
  - circuit_breaker_requests_total: Labels: name, result
  - circuit_breaker_consecutive_failures: (gauge)
  - circuit_breaker_state_transitions_total: Labels: name, from_state, to_state

# Usage

	start := time.Now()
	movies, err := store.FindMovies(ctx, criteria)
	metrics.RecordDBQuery("find", "movies", time.Since(start), err)

Errors that implement ErrorType() string are labelled with that value;
other errors are labelled with their message truncated to 50 characters.

# Thread Safety

All functions are safe for concurrent use; Prometheus collectors are
internally synchronized.
*/
package metrics
