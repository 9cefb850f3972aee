// Marquee - Movie Metadata API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

// Package testinfra provides test infrastructure for integration testing with containers.
//
// This package uses testcontainers-go to run a real MongoDB for the store and
// API integration tests. Every file carries the integration build tag:
//
//	go test -tags integration ./...
//
// # MongoDB Container
//
//	func TestFindMovies(t *testing.T) {
//	    testinfra.SkipIfNoDocker(t)
//	    ctx := context.Background()
//
//	    mongoC, err := testinfra.NewMongoContainer(ctx)
//	    if err != nil {
//	        t.Fatal(err)
//	    }
//	    testinfra.CleanupContainer(t, mongoC)
//
//	    store, err := database.Connect(ctx, &config.MongoConfig{
//	        URI: mongoC.URI, Database: "imdb", Collection: "movies", ...
//	    })
//	    // ...
//	}
//
// # CI Considerations
//
// These tests require Docker and network access. Tests are skipped gracefully
// if Docker is unavailable. The first run downloads the mongo:7 image.
package testinfra
