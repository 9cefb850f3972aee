// Marquee - Movie Metadata API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package database

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"go.mongodb.org/mongo-driver/v2/mongo"
)

func TestOperationError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		wantType string
	}{
		{"deadline", context.DeadlineExceeded, "timeout"},
		{"wrapped deadline", fmt.Errorf("cursor: %w", context.DeadlineExceeded), "timeout"},
		{"canceled", context.Canceled, "canceled"},
		{"disconnected", mongo.ErrClientDisconnected, "disconnected"},
		{"command", mongo.CommandError{Code: 27, Name: "IndexNotFound", Message: "text index required for $text query"}, "command"},
		{"other", errors.New("something odd"), "other"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			opErr := &OperationError{Op: "find", Collection: "movies", Err: tt.err}
			if got := opErr.ErrorType(); got != tt.wantType {
				t.Errorf("ErrorType() = %q, want %q", got, tt.wantType)
			}
			// CommandError holds slices, so errors.Is cannot compare it.
			var wantCmd mongo.CommandError
			if errors.As(tt.err, &wantCmd) {
				var gotCmd mongo.CommandError
				if !errors.As(opErr, &gotCmd) || gotCmd.Code != wantCmd.Code {
					t.Errorf("OperationError should unwrap to CommandError code %d", wantCmd.Code)
				}
			} else if !errors.Is(opErr, tt.err) {
				t.Error("OperationError should unwrap to the driver error")
			}
			if !strings.HasPrefix(opErr.Error(), "mongo find on movies: ") {
				t.Errorf("Error() = %q", opErr.Error())
			}
		})
	}
}

func TestIsOutage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"deadline", context.DeadlineExceeded, true},
		{"disconnected", mongo.ErrClientDisconnected, true},
		{"wrapped deadline", &OperationError{Op: "find", Collection: "movies", Err: context.DeadlineExceeded}, true},
		{"command", &OperationError{Op: "find", Collection: "movies", Err: mongo.CommandError{Code: 27, Name: "IndexNotFound"}}, false},
		{"canceled", context.Canceled, false},
		{"not found", ErrMovieNotFound, false},
		{"other", errors.New("cannot decode"), false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := isOutage(tt.err); got != tt.want {
				t.Errorf("isOutage(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestIsUnavailable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  error
		want bool
	}{
		{ErrNotReady, true},
		{fmt.Errorf("%w: circuit breaker is open", ErrUnavailable), true},
		{ErrMovieNotFound, false},
		{&OperationError{Op: "find", Collection: "movies", Err: context.DeadlineExceeded}, false},
		{nil, false},
	}

	for _, tt := range tests {
		if got := IsUnavailable(tt.err); got != tt.want {
			t.Errorf("IsUnavailable(%v) = %v, want %v", tt.err, got, tt.want)
		}
	}
}
