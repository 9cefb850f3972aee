// Marquee - Movie Metadata API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package api

import (
	"time"

	"github.com/tomtom215/marquee/internal/config"
	"github.com/tomtom215/marquee/internal/database"
	"github.com/tomtom215/marquee/internal/database/query"
)

// StoreProvider hands out the movie store currently published by the
// connector. *database.Provider implements it.
type StoreProvider interface {
	Store() (database.MovieStore, error)
	Ready() bool
	CircuitState() string
}

// Handler contains dependencies for API handlers
//
// Handler methods are split across files:
//   - handlers.go: Handler struct and constructor (this file)
//   - handlers_movies.go: movie listing, lookup and poster updates
//   - handlers_health.go: liveness and readiness probes
type Handler struct {
	stores     StoreProvider
	translator *query.Translator
	config     *config.Config
	version    string
	startTime  time.Time
}

// NewHandler creates a handler serving movies from stores.
//
// The query translator is configured from cfg.Movies and cfg.API, so the
// default sort and page size limits apply to every listing request.
func NewHandler(stores StoreProvider, cfg *config.Config) *Handler {
	return &Handler{
		stores: stores,
		translator: query.NewTranslator(query.Options{
			DefaultSort:  query.DefaultSort(cfg.Movies.DefaultSort),
			DefaultLimit: int64(cfg.API.DefaultPageSize),
			MaxLimit:     int64(cfg.API.MaxPageSize),
		}),
		config:    cfg,
		version:   "dev",
		startTime: time.Now(),
	}
}

// SetVersion sets the version reported by the health endpoints.
func (h *Handler) SetVersion(version string) {
	if version != "" {
		h.version = version
	}
}
