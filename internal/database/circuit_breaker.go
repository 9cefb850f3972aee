// Marquee - Movie Metadata API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/tomtom215/marquee/internal/database/query"
	"github.com/tomtom215/marquee/internal/logging"
	"github.com/tomtom215/marquee/internal/metrics"
	"github.com/tomtom215/marquee/internal/models"
)

// CircuitBreakerName labels the store breaker in logs and metrics.
const CircuitBreakerName = "mongo-movies"

// CircuitBreakerStore wraps a MovieStore with the circuit breaker pattern so
// a failing MongoDB deployment is answered with ErrUnavailable instead of
// piling up requests that wait for their timeouts.
//
// Configuration:
//   - Max 3 concurrent requests in half-open state
//   - 1 minute measurement window
//   - 2 minute timeout before attempting recovery
//   - Opens after 60% failure rate with minimum 10 requests
//
// Only outages (timeouts, network failures, a disconnected client) count as
// failures. Query errors such as a $text search without a text index, along
// with ErrMovieNotFound and canceled requests, count as successes so a single
// client cannot open the breaker for everyone.
type CircuitBreakerStore struct {
	store MovieStore
	cb    *gobreaker.CircuitBreaker[any]
	name  string
}

// NewCircuitBreakerStore wraps store.
func NewCircuitBreakerStore(store MovieStore) *CircuitBreakerStore {
	name := CircuitBreakerName

	metrics.CircuitBreakerState.WithLabelValues(name).Set(0) // 0 = closed
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(name).Set(0)

	cb := gobreaker.NewCircuitBreaker[any](gobreaker.Settings{
		Name:        name,
		MaxRequests: 3,
		Interval:    time.Minute,
		Timeout:     2 * time.Minute,

		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < 10 {
				return false
			}

			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			shouldTrip := failureRatio >= 0.6

			if shouldTrip {
				logging.Warn().Uint32("failures", counts.TotalFailures).Float64("failure_rate", failureRatio*100).Msg("[CIRCUIT BREAKER] Opening circuit")
			}

			return shouldTrip
		},

		IsSuccessful: func(err error) bool {
			return !isOutage(err)
		},

		OnStateChange: func(name string, from, to gobreaker.State) {
			fromStr := stateToString(from)
			toStr := stateToString(to)

			logging.Info().Str("breaker", name).Str("from", fromStr).Str("to", toStr).Msg("[CIRCUIT BREAKER] State transition")

			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, fromStr, toStr).Inc()

			if to == gobreaker.StateClosed {
				metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(name).Set(0)
			}
		},
	})

	return &CircuitBreakerStore{store: store, cb: cb, name: name}
}

// execute runs fn under the breaker. Rejections are returned wrapped in
// ErrUnavailable.
func (c *CircuitBreakerStore) execute(fn func() (any, error)) (any, error) {
	result, err := c.cb.Execute(fn)

	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			metrics.CircuitBreakerRequests.WithLabelValues(c.name, "rejected").Inc()
			logging.Warn().Err(err).Msg("[CIRCUIT BREAKER] Request rejected")
			return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
		}

		if !isOutage(err) {
			metrics.CircuitBreakerRequests.WithLabelValues(c.name, "success").Inc()
			return nil, err
		}

		metrics.CircuitBreakerRequests.WithLabelValues(c.name, "failure").Inc()
		counts := c.cb.Counts()
		metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(c.name).Set(float64(counts.ConsecutiveFailures))
		return nil, err
	}

	metrics.CircuitBreakerRequests.WithLabelValues(c.name, "success").Inc()
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(c.name).Set(0)
	return result, nil
}

// castResult safely type-casts the circuit breaker result with error checking
func castResult[T any](result any, err error) (T, error) {
	var zero T
	if err != nil {
		return zero, err
	}
	typed, ok := result.(T)
	if !ok {
		return zero, fmt.Errorf("circuit breaker: unexpected result type %T", result)
	}
	return typed, nil
}

// FindMovies calls the wrapped store with circuit breaker protection.
func (c *CircuitBreakerStore) FindMovies(ctx context.Context, criteria *query.Criteria) ([]models.Movie, error) {
	return castResult[[]models.Movie](c.execute(func() (any, error) {
		return c.store.FindMovies(ctx, criteria)
	}))
}

// FindMovieByID calls the wrapped store with circuit breaker protection.
func (c *CircuitBreakerStore) FindMovieByID(ctx context.Context, id bson.ObjectID) (*models.Movie, error) {
	return castResult[*models.Movie](c.execute(func() (any, error) {
		return c.store.FindMovieByID(ctx, id)
	}))
}

// UpdatePosters calls the wrapped store with circuit breaker protection.
func (c *CircuitBreakerStore) UpdatePosters(ctx context.Context, batch *models.PosterBatch) (*models.BulkWriteSummary, error) {
	return castResult[*models.BulkWriteSummary](c.execute(func() (any, error) {
		return c.store.UpdatePosters(ctx, batch)
	}))
}

// Ping calls the wrapped store with circuit breaker protection.
func (c *CircuitBreakerStore) Ping(ctx context.Context) error {
	_, err := c.execute(func() (any, error) {
		return nil, c.store.Ping(ctx)
	})
	return err
}

// State returns the breaker state: closed, half-open or open.
func (c *CircuitBreakerStore) State() string {
	return stateToString(c.cb.State())
}

// stateToFloat converts circuit breaker state to numeric value for metrics
func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

// stateToString converts circuit breaker state to string for logging
func stateToString(state gobreaker.State) string {
	switch state {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}
