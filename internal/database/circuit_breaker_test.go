// Marquee - Movie Metadata API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package database

import (
	"context"
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/tomtom215/marquee/internal/database/query"
	"github.com/tomtom215/marquee/internal/models"
)

func TestCircuitBreakerStore_PassesResults(t *testing.T) {
	store := NewCircuitBreakerStore(&fakeStore{})
	ctx := context.Background()

	movies, err := store.FindMovies(ctx, &query.Criteria{})
	if err != nil || len(movies) != 1 || movies[0].PrimaryTitle != "Heat" {
		t.Fatalf("FindMovies() = %v, %v", movies, err)
	}

	id := bson.NewObjectID()
	movie, err := store.FindMovieByID(ctx, id)
	if err != nil || movie.ID != id {
		t.Fatalf("FindMovieByID() = %v, %v", movie, err)
	}

	batch := &models.PosterBatch{Entries: []models.PosterEntry{{Key: "a"}, {Key: "b"}}}
	summary, err := store.UpdatePosters(ctx, batch)
	if err != nil || summary.MatchedCount != 2 {
		t.Fatalf("UpdatePosters() = %+v, %v", summary, err)
	}

	if err := store.Ping(ctx); err != nil {
		t.Fatalf("Ping() error: %v", err)
	}
	if store.State() != "closed" {
		t.Errorf("State() = %q, want closed", store.State())
	}
}

func TestCircuitBreakerStore_OpensAfterFailures(t *testing.T) {
	boom := &OperationError{Op: "find", Collection: "movies", Err: context.DeadlineExceeded}
	inner := &fakeStore{err: boom}
	store := NewCircuitBreakerStore(inner)
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		if _, err := store.FindMovies(ctx, &query.Criteria{}); !errors.Is(err, boom) {
			t.Fatalf("call %d: expected underlying error, got %v", i, err)
		}
	}

	if store.State() != "open" {
		t.Fatalf("State() = %q, want open after 10 failures", store.State())
	}

	callsBefore := inner.calls.Load()
	_, err := store.FindMovies(ctx, &query.Criteria{})
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("expected ErrUnavailable while open, got %v", err)
	}
	if !IsUnavailable(err) {
		t.Error("IsUnavailable() should report rejected calls")
	}
	if inner.calls.Load() != callsBefore {
		t.Error("open breaker should not call the wrapped store")
	}
}

func TestCircuitBreakerStore_NotFoundIsSuccess(t *testing.T) {
	inner := &fakeStore{err: ErrMovieNotFound}
	store := NewCircuitBreakerStore(inner)
	ctx := context.Background()

	for i := 0; i < 20; i++ {
		if _, err := store.FindMovieByID(ctx, bson.NewObjectID()); !errors.Is(err, ErrMovieNotFound) {
			t.Fatalf("expected ErrMovieNotFound, got %v", err)
		}
	}

	if store.State() != "closed" {
		t.Errorf("State() = %q, not-found lookups must not trip the breaker", store.State())
	}
}

func TestCircuitBreakerStore_QueryErrorsDoNotTrip(t *testing.T) {
	noIndex := &OperationError{
		Op:         "find",
		Collection: "movies",
		Err:        mongo.CommandError{Code: 27, Name: "IndexNotFound", Message: "text index required for $text query"},
	}
	inner := &fakeStore{err: noIndex}
	store := NewCircuitBreakerStore(inner)
	ctx := context.Background()

	for i := 0; i < 20; i++ {
		_, err := store.FindMovies(ctx, &query.Criteria{})
		var cmdErr mongo.CommandError
		if !errors.As(err, &cmdErr) || cmdErr.Code != 27 {
			t.Fatalf("call %d: expected the command error, got %v", i, err)
		}
	}
	if store.State() != "closed" {
		t.Fatalf("State() = %q, query errors must not trip the breaker", store.State())
	}

	inner.err = nil
	if _, err := store.FindMovies(ctx, &query.Criteria{}); err != nil {
		t.Errorf("healthy call after query errors: %v", err)
	}
}

func TestCastResult(t *testing.T) {
	t.Parallel()

	if _, err := castResult[*models.Movie]("wrong", nil); err == nil {
		t.Error("expected type mismatch error")
	}

	boom := errors.New("boom")
	if _, err := castResult[*models.Movie](nil, boom); !errors.Is(err, boom) {
		t.Errorf("expected passthrough error, got %v", err)
	}

	movies, err := castResult[[]models.Movie]([]models.Movie{{}}, nil)
	if err != nil || len(movies) != 1 {
		t.Errorf("castResult() = %v, %v", movies, err)
	}
}
