// Marquee - Movie Metadata API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

/*
Package api provides the HTTP layer of Marquee.

Routes:

  - GET /: plain-text welcome message
  - GET /movies: filtered, sorted, paginated movie listing
  - GET /movies/{id}: single movie by ObjectID
  - PUT /updatePosters: bulk posterURL update (JSON or urlencoded body)
  - GET /health/live, GET /health/ready: Kubernetes-style probes
  - GET /metrics: Prometheus exposition
  - GET /swagger/*: API documentation

Any other route or method answers 404 with the body "Page not found".

Error Handling:

Movie handlers have the signature func(w, r) error and are adapted with
Wrap. A returned error is mapped to an *AppError and written by one function,
respondAppError, which answers with the error's status (default 500) and its
message (default "Something went wrong") encoded as a JSON string:

	HTTP/1.1 400 Bad Request
	Content-Type: application/json; charset=utf-8

	"Invalid field"

The parameter and reason behind an InvalidField answer appear only in the
request log.

Mapping:

  - *query.FieldError: 400 InvalidField
  - *validation.RequestValidationError: 400 InvalidBody
  - *http.MaxBytesError: 413
  - database.ErrMovieNotFound: 404 "Movie not found"
  - database.ErrNotReady, database.ErrUnavailable: 503
  - anything else: 500 "Something went wrong"

Panics are recovered by Recoverer and answered the same way.

Middleware Stack:

Request IDs, trusted-proxy RealIP, panic recovery, trailing-slash stripping,
HEAD-as-GET, CORS (go-chi/cors), Prometheus metrics, security headers and gzip
compression apply to every route. Per-client rate limits (go-chi/httprate) are
applied per route group.
*/
package api
