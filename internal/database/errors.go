// Marquee - Movie Metadata API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package database

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/mongo"
)

var (
	// ErrNotReady is returned while no MongoDB connection has been published.
	ErrNotReady = errors.New("movie store not ready")

	// ErrUnavailable is returned when the circuit breaker rejects a call.
	ErrUnavailable = errors.New("movie store unavailable")

	// ErrMovieNotFound is returned by FindMovieByID when no document matches.
	ErrMovieNotFound = errors.New("movie not found")
)

// IsUnavailable reports whether err means the store cannot currently serve
// requests, as opposed to a failed operation.
func IsUnavailable(err error) bool {
	return errors.Is(err, ErrNotReady) || errors.Is(err, ErrUnavailable)
}

// OperationError wraps a driver error with the operation and collection that
// produced it.
type OperationError struct {
	Op         string
	Collection string
	Err        error
}

func (e *OperationError) Error() string {
	return fmt.Sprintf("mongo %s on %s: %v", e.Op, e.Collection, e.Err)
}

func (e *OperationError) Unwrap() error {
	return e.Err
}

// ErrorType returns a bounded category for metrics labels.
func (e *OperationError) ErrorType() string {
	return classifyError(e.Err)
}

// isOutage reports whether err points at the deployment rather than at the
// request: timeouts, network failures and a disconnected client. Command and
// server errors caused by one request's query are not outages.
func isOutage(err error) bool {
	if err == nil {
		return false
	}
	switch classifyError(err) {
	case "timeout", "network", "disconnected":
		return true
	default:
		return false
	}
}

func classifyError(err error) string {
	var bulkErr mongo.BulkWriteException
	var cmdErr mongo.CommandError

	switch {
	case errors.Is(err, context.Canceled):
		return "canceled"
	case errors.Is(err, context.DeadlineExceeded), mongo.IsTimeout(err):
		return "timeout"
	case mongo.IsNetworkError(err):
		return "network"
	case mongo.IsDuplicateKeyError(err):
		return "duplicate_key"
	case errors.As(err, &bulkErr):
		return "bulk_write"
	case errors.As(err, &cmdErr):
		return "command"
	case errors.Is(err, mongo.ErrClientDisconnected):
		return "disconnected"
	default:
		return "other"
	}
}
