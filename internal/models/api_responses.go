// Marquee - Movie Metadata API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package models

import (
	"time"
)

// MovieListResponse is the body of a successful GET /movies.
//
// PreviousPage is null on the first page. NextPage is always current+1; the
// server does not check whether that page holds any results.
//
// Example:
//
//	{
//	  "result": [{"_id": "64b7f0c2a1b2c3d4e5f60718", "primaryTitle": "Heat", ...}],
//	  "previousPage": 1,
//	  "currentPage": 2,
//	  "nextPage": 3,
//	  "limit": 5
//	}
type MovieListResponse struct {
	Result       []Movie `json:"result"`
	PreviousPage *int64  `json:"previousPage"`
	CurrentPage  int64   `json:"currentPage"`
	NextPage     int64   `json:"nextPage"`
	Limit        int64   `json:"limit"`
}

// BulkWriteSummary reports the store's outcome of a bulk poster update.
// Partial matches are passed through as reported.
type BulkWriteSummary struct {
	Acknowledged  bool  `json:"acknowledged"`
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
	UpsertedCount int64 `json:"upsertedCount"`
	InsertedCount int64 `json:"insertedCount"`
	DeletedCount  int64 `json:"deletedCount"`
}

// HealthStatus is returned by the health endpoints.
type HealthStatus struct {
	Status       string    `json:"status"`
	Version      string    `json:"version"`
	StoreReady   bool      `json:"store_ready"`
	CircuitState string    `json:"circuit_state,omitempty"`
	Uptime       float64   `json:"uptime_seconds"`
	Timestamp    time.Time `json:"timestamp"`
}
