// Marquee - Movie Metadata API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package api

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/tomtom215/marquee/internal/config"
	"github.com/tomtom215/marquee/internal/database"
	"github.com/tomtom215/marquee/internal/database/query"
	"github.com/tomtom215/marquee/internal/models"
)

// fakeMovieStore records the arguments it receives and returns canned data.
type fakeMovieStore struct {
	mu sync.Mutex

	movies  []models.Movie
	byID    map[bson.ObjectID]models.Movie
	summary *models.BulkWriteSummary
	err     error
	pingErr error

	criteria    *query.Criteria
	batch       *models.PosterBatch
	updateCalls int
}

func (f *fakeMovieStore) FindMovies(_ context.Context, criteria *query.Criteria) ([]models.Movie, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.criteria = criteria
	if f.err != nil {
		return nil, f.err
	}
	out := make([]models.Movie, len(f.movies))
	copy(out, f.movies)
	return out, nil
}

func (f *fakeMovieStore) FindMovieByID(_ context.Context, id bson.ObjectID) (*models.Movie, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	m, ok := f.byID[id]
	if !ok {
		return nil, database.ErrMovieNotFound
	}
	return &m, nil
}

func (f *fakeMovieStore) UpdatePosters(_ context.Context, batch *models.PosterBatch) (*models.BulkWriteSummary, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updateCalls++
	f.batch = batch
	if f.err != nil {
		return nil, f.err
	}
	if f.summary != nil {
		return f.summary, nil
	}
	n := int64(batch.Len())
	return &models.BulkWriteSummary{Acknowledged: true, MatchedCount: n, ModifiedCount: n}, nil
}

func (f *fakeMovieStore) Ping(context.Context) error {
	return f.pingErr
}

func (f *fakeMovieStore) lastCriteria() *query.Criteria {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.criteria
}

func (f *fakeMovieStore) lastBatch() (*models.PosterBatch, int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.batch, f.updateCalls
}

// fakeProvider serves a fixed store, or ErrNotReady when store is nil.
type fakeProvider struct {
	store   database.MovieStore
	circuit string
}

func (p *fakeProvider) Store() (database.MovieStore, error) {
	if p.store == nil {
		return nil, database.ErrNotReady
	}
	return p.store, nil
}

func (p *fakeProvider) Ready() bool {
	return p.store != nil
}

func (p *fakeProvider) CircuitState() string {
	return p.circuit
}

func newTestConfig() *config.Config {
	return &config.Config{
		Movies: config.MoviesConfig{DefaultSort: "trending"},
		API: config.APIConfig{
			DefaultPageSize: 10,
			MaxPageSize:     100,
			MaxPosterBatch:  3,
			MaxBodyBytes:    1 << 10,
		},
		Security: config.SecurityConfig{
			CORSOrigins:     []string{"*"},
			RateLimitReqs:   100,
			RateLimitWindow: time.Minute,
		},
	}
}

// newTestRouter builds the full route table over provider with rate limiting
// disabled.
func newTestRouter(t *testing.T, provider StoreProvider) http.Handler {
	t.Helper()
	cfg := newTestConfig()
	mwCfg := ChiMiddlewareConfigFromSecurity(&cfg.Security)
	mwCfg.RateLimitDisabled = true
	return NewRouter(NewHandler(provider, cfg), NewChiMiddleware(mwCfg)).SetupChi()
}

func doRequest(t *testing.T, h http.Handler, method, target, contentType, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

// errorMessage decodes an error body, which is a bare JSON string.
func errorMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var msg string
	if err := json.Unmarshal(rec.Body.Bytes(), &msg); err != nil {
		t.Fatalf("error body %q is not a JSON string: %v", rec.Body.String(), err)
	}
	return msg
}

func mustObjectID(t *testing.T, hex string) bson.ObjectID {
	t.Helper()
	id, err := bson.ObjectIDFromHex(hex)
	if err != nil {
		t.Fatalf("ObjectIDFromHex(%q): %v", hex, err)
	}
	return id
}
