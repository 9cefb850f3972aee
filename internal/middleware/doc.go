// Marquee - Movie Metadata API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

/*
Package middleware provides HTTP middleware components for the Marquee API.

Every middleware has the chi signature func(http.Handler) http.Handler and is
mounted once on the router in internal/api.

Key Components:

  - RequestID: UUID-based request tracking, stored on the context for logging
  - PrometheusMetrics: request count, latency and in-flight gauges labelled by
    chi route pattern
  - Compression: pooled gzip writers for clients sending Accept-Encoding: gzip

Middleware Stack:

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.PrometheusMetrics)
	r.Use(middleware.Compression)

Request ID Propagation:

An incoming X-Request-ID is reused when it is printable ASCII of at most 128
bytes; otherwise a new UUID is generated. The ID is echoed in the response
header and is available to handlers through logging.RequestIDFromContext.

Metric Labels:

The endpoint label is the matched route pattern (/movies/{id}), never the raw
path, so the label set stays bounded. Requests that match no route are
labelled "unmatched".
*/
package middleware
