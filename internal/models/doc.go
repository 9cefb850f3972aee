// Marquee - Movie Metadata API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

/*
Package models defines data structures for the Marquee application.

It holds the stored movie document, the poster-update request body and the
JSON response shapes of the HTTP API. Models carry both bson and json tags
so a document read from MongoDB can be written to the client unchanged.

Key Components:

  - Movie: one title from the movie collection (IMDb-style fields plus posterURL)
  - MovieListResponse: paginated listing envelope for GET /movies
  - PosterUpdate / PosterBatch: body of PUT /updatePosters
  - BulkWriteSummary: store-reported outcome of a bulk poster update
  - HealthStatus: liveness/readiness payload

Usage Example - Poster batch:

	batch, verr := models.ParsePosterUpdates(body, 1000)
	if verr != nil {
	    // 400 with verr.Error()
	}
	for _, key := range batch.Keys {
	    update := batch.Updates[key]
	    id, _ := update.ObjectID()
	    // ...
	}

Thread Safety:

Model values are plain data; they are not safe for concurrent mutation but
may be shared read-only across goroutines.
*/
package models
