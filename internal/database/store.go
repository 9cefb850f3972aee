// Marquee - Movie Metadata API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package database

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/tomtom215/marquee/internal/database/query"
	"github.com/tomtom215/marquee/internal/models"
)

// MovieStore is the data access surface used by the HTTP handlers.
// Implemented by *MongoStore and *CircuitBreakerStore.
type MovieStore interface {
	// FindMovies returns one page of movies matching criteria, in sort order.
	FindMovies(ctx context.Context, criteria *query.Criteria) ([]models.Movie, error)

	// FindMovieByID returns the movie with the given _id or ErrMovieNotFound.
	FindMovieByID(ctx context.Context, id bson.ObjectID) (*models.Movie, error)

	// UpdatePosters sets posterURL on every movie named in batch with a single
	// bulk write.
	UpdatePosters(ctx context.Context, batch *models.PosterBatch) (*models.BulkWriteSummary, error)

	// Ping checks connectivity.
	Ping(ctx context.Context) error
}
