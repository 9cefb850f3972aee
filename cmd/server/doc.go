// Marquee - Movie Metadata API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

/*
Package main is the entry point for the Marquee server.

Marquee serves IMDb-style movie metadata from a MongoDB collection: filtered,
sorted and paginated listings at GET /movies and bulk poster URL updates at
PUT /updatePosters.

# Application Architecture

	RootSupervisor ("marquee")
	├── DataSupervisor ("data-layer")
	│   └── MongoService: connects, publishes the store, pings
	└── APISupervisor ("api-layer")
	    └── HTTPServerService: chi router

Startup order:

 1. Flags: --config/-c, --version/-v (pflag)
 2. Configuration: Koanf v2 (defaults, YAML file, environment)
 3. Logging: zerolog, JSON or console
 4. HTTP handler and router wired to an empty database.Provider
 5. Supervisor tree; the HTTP server answers 503 on store routes until
    the MongoDB connector publishes a store

# Configuration

Priority: environment variables > config file > defaults.

	PORT=5000                          # HTTP port
	MONGO_URI=mongodb://localhost:27017
	DB_NAME=imdb
	MOVIES_COLLECTION_NAME=movies
	MOVIES_DEFAULT_SORT=trending       # trending or top_rated
	MONGO_ENSURE_TEXT_INDEX=false      # create the primaryTitle text index
	LOG_LEVEL=info                     # trace, debug, info, warn, error
	LOG_FORMAT=json                    # json or console
	CORS_ORIGINS=*
	RATE_LIMIT_REQUESTS=100
	RATE_LIMIT_WINDOW=1m

See internal/config for the full list.

# Signal Handling

SIGINT and SIGTERM cancel the supervisor tree: the HTTP server drains
in-flight requests for up to HTTP_SHUTDOWN_GRACE, the connector withdraws
the store and disconnects, and any service that failed to stop is logged.

# Usage

	MONGO_URI=mongodb://localhost:27017 DB_NAME=imdb go run ./cmd/server
	curl 'localhost:5000/movies?genre=Drama&sort_by=desc(rating)&runtime[lt]=120'

Swagger UI is served at /swagger/index.html and Prometheus metrics at
/metrics.
*/
package main
