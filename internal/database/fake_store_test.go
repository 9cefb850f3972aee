// Marquee - Movie Metadata API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package database

import (
	"context"
	"sync/atomic"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/tomtom215/marquee/internal/database/query"
	"github.com/tomtom215/marquee/internal/models"
)

// fakeStore is a MovieStore whose every call returns err.
type fakeStore struct {
	err   error
	calls atomic.Int32
}

func (f *fakeStore) FindMovies(context.Context, *query.Criteria) ([]models.Movie, error) {
	f.calls.Add(1)
	if f.err != nil {
		return nil, f.err
	}
	return []models.Movie{{PrimaryTitle: "Heat"}}, nil
}

func (f *fakeStore) FindMovieByID(_ context.Context, id bson.ObjectID) (*models.Movie, error) {
	f.calls.Add(1)
	if f.err != nil {
		return nil, f.err
	}
	return &models.Movie{ID: id, PrimaryTitle: "Heat"}, nil
}

func (f *fakeStore) UpdatePosters(_ context.Context, batch *models.PosterBatch) (*models.BulkWriteSummary, error) {
	f.calls.Add(1)
	if f.err != nil {
		return nil, f.err
	}
	n := int64(batch.Len())
	return &models.BulkWriteSummary{Acknowledged: true, MatchedCount: n, ModifiedCount: n}, nil
}

func (f *fakeStore) Ping(context.Context) error {
	f.calls.Add(1)
	return f.err
}
