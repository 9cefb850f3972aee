// Marquee - Movie Metadata API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package api

import (
	"errors"
	"io"
	"mime"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/tomtom215/marquee/internal/database/query"
	"github.com/tomtom215/marquee/internal/logging"
	"github.com/tomtom215/marquee/internal/models"
)

const formContentType = "application/x-www-form-urlencoded"

// Root answers the API root.
//
// @Summary Welcome message
// @Tags Core
// @Produce plain
// @Success 200 {string} string "Welcome"
// @Router / [get]
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, "Welcome")
}

// NotFound answers every unmatched route and method.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	respondAppError(w, r, NotFound("Page not found"))
}

// ListMovies returns one page of movies matching the query string.
//
// @Summary List movies
// @Description Filters by genre, title phrase, runtime and rating ranges; sorts with sort_by=asc(field) or desc(field).
// @Tags Movies
// @Produce json
// @Param genre query string false "Genre to match"
// @Param title query string false "Title phrase (text search)"
// @Param sort_by query string false "direction(field), e.g. desc(rating)"
// @Param page query int false "Page number (1-based)" default(1)
// @Param limit query int false "Page size" default(10)
// @Param runtime[gt] query number false "Runtime bound; operators gt, gte, lt, lte, eq, ne"
// @Param rating[gte] query number false "Rating bound; operators gt, gte, lt, lte, eq, ne"
// @Success 200 {object} models.MovieListResponse
// @Failure 400 {string} string "Invalid field"
// @Failure 503 {string} string "Service unavailable"
// @Router /movies [get]
func (h *Handler) ListMovies(w http.ResponseWriter, r *http.Request) error {
	params, err := query.ParseRawQuery(r.URL.RawQuery)
	if err != nil {
		return InvalidField(&query.FieldError{Param: "query", Reason: "malformed query string"})
	}

	criteria, err := h.translator.Translate(params)
	if err != nil {
		return err
	}

	store, err := h.stores.Store()
	if err != nil {
		return err
	}

	movies, err := store.FindMovies(r.Context(), criteria)
	if err != nil {
		return err
	}

	respondJSON(w, http.StatusOK, models.MovieListResponse{
		Result:       movies,
		PreviousPage: criteria.Pagination.PreviousPage(),
		CurrentPage:  criteria.Pagination.Page,
		NextPage:     criteria.Pagination.NextPage(),
		Limit:        criteria.Pagination.Limit,
	})
	return nil
}

// GetMovie returns a single movie by ObjectID.
//
// @Summary Get movie
// @Tags Movies
// @Produce json
// @Param id path string true "Movie ObjectID (24 hex characters)"
// @Success 200 {object} models.Movie
// @Failure 400 {string} string "Invalid field"
// @Failure 404 {string} string "Movie not found"
// @Router /movies/{id} [get]
func (h *Handler) GetMovie(w http.ResponseWriter, r *http.Request) error {
	raw := chi.URLParam(r, "id")
	id, err := bson.ObjectIDFromHex(raw)
	if err != nil {
		return InvalidField(&query.FieldError{Param: "id", Value: raw, Reason: "must be a 24 character hex ObjectID"})
	}

	store, err := h.stores.Store()
	if err != nil {
		return err
	}

	movie, err := store.FindMovieByID(r.Context(), id)
	if err != nil {
		return err
	}

	respondJSON(w, http.StatusOK, movie)
	return nil
}

// UpdatePosters sets posterURL on every movie named in the body with one
// bulk write.
//
// @Summary Bulk update poster URLs
// @Description Body maps arbitrary keys to {mongoId, posterURL}. JSON and urlencoded bracket bodies (a[mongoId]=...&a[posterURL]=...) are accepted.
// @Tags Movies
// @Accept json
// @Accept x-www-form-urlencoded
// @Produce json
// @Param body body map[string]models.PosterUpdate true "Poster updates keyed by client label"
// @Success 200 {object} models.BulkWriteSummary
// @Failure 400 {string} string "Invalid body"
// @Failure 413 {string} string "Request body too large"
// @Failure 503 {string} string "Service unavailable"
// @Router /updatePosters [put]
func (h *Handler) UpdatePosters(w http.ResponseWriter, r *http.Request) error {
	if h.config.API.MaxBodyBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.config.API.MaxBodyBytes)
	}

	data, err := io.ReadAll(r.Body)
	if err != nil {
		var maxBytes *http.MaxBytesError
		if errors.As(err, &maxBytes) {
			return err
		}
		return InvalidBody("Unable to read request body", err)
	}

	batch, err := h.parsePosterBody(r, data)
	if err != nil {
		return err
	}

	store, err := h.stores.Store()
	if err != nil {
		return err
	}

	summary, err := store.UpdatePosters(r.Context(), batch)
	if err != nil {
		return err
	}

	logging.Ctx(r.Context()).Info().
		Int("entries", batch.Len()).
		Int64("matched", summary.MatchedCount).
		Int64("modified", summary.ModifiedCount).
		Msg("Posters updated")

	respondJSON(w, http.StatusOK, summary)
	return nil
}

// parsePosterBody decodes data according to the request content type.
// Anything other than a urlencoded form is treated as JSON.
func (h *Handler) parsePosterBody(r *http.Request, data []byte) (*models.PosterBatch, error) {
	maxEntries := h.config.API.MaxPosterBatch

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == formContentType {
		params, err := query.ParseRawQuery(string(data))
		if err != nil {
			return nil, InvalidBody("body must be a valid urlencoded form", err)
		}
		batch, verr := models.ParsePosterForm(params, maxEntries)
		if verr != nil {
			return nil, verr
		}
		return batch, nil
	}

	batch, verr := models.ParsePosterUpdates(data, maxEntries)
	if verr != nil {
		return nil, verr
	}
	return batch, nil
}
