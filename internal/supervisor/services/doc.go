// Marquee - Movie Metadata API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

/*
Package services provides suture.Service implementations for Marquee.

HTTPServerService adapts the ListenAndServe/Shutdown pair of *http.Server to
suture's Serve(ctx) pattern, draining connections for up to the configured
shutdown timeout when ctx is canceled.

MongoService owns the MongoDB client:

 1. connect (database.Connect) with the configured connect timeout
 2. create the primaryTitle text index when mongo.ensure_text_index is set
 3. wrap the store in database.CircuitBreakerStore and publish it
 4. ping every mongo.ping_interval; after 3 consecutive failures return an
    error so the supervisor reconnects with backoff
 5. on exit, clear the provider and disconnect

Both implement fmt.Stringer so suture's event log names them
("http-server", "mongo-connector").

# Testing

The connector's connect step is a ConnectFunc field so tests substitute a
fake MongoConnection; the HTTP service takes the HTTPServer interface.
*/
package services
