// Marquee - Movie Metadata API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

// Package database provides access to the movies collection in MongoDB.
//
// # Overview
//
// The package sits between the HTTP handlers and MongoDB. Handlers never hold
// a client directly; they ask a Provider for the current MovieStore, which is
// installed once the supervised connector has connected and removed again
// when the connection is torn down.
//
// # Architecture
//
//   - store.go: MovieStore interface consumed by the API layer
//   - mongo_store.go: MongoStore, the driver-backed implementation
//   - circuit_breaker.go: CircuitBreakerStore wrapping any MovieStore
//   - provider.go: Provider, the atomically swapped current store
//   - errors.go: sentinel errors and OperationError classification
//   - query/: translation of request query strings into filter, sort and
//     pagination (see package query)
//
// # Operations
//
// FindMovies runs find(filter).sort(sort).skip(skip).limit(limit) using the
// Criteria built by query.Translator. UpdatePosters issues a single ordered
// bulk write of updateOne models that $set posterURL by _id; upserts are
// never requested, so unknown ids only lower MatchedCount.
//
// # Error Handling
//
// Driver failures are wrapped in *OperationError, which carries the operation
// and collection and exposes ErrorType for metrics labels. ErrMovieNotFound is
// returned for lookups by id that match nothing and does not count against the
// circuit breaker. ErrNotReady and breaker rejections (wrapped in
// ErrUnavailable) are reported by IsUnavailable so handlers can answer 503.
//
// # Testing
//
// Unit tests use an in-package fake store. Tests against a real server run
// under the integration build tag and start MongoDB with testcontainers:
//
//	go test -tags integration ./internal/database/...
package database
