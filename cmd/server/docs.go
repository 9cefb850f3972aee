// Marquee - Movie Metadata API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

// Package main provides the Marquee HTTP server
//
// @title Marquee API
// @version 1.0
// @description Movie metadata API backed by MongoDB.
// @description
// @description ## Listing
// @description
// @description `GET /movies` accepts `genre`, `title`, `sort_by=asc(field)|desc(field)`,
// @description `page`, `limit` and bracket filters such as `runtime[gt]=90` or `rating[gte]=7`.
// @description Results always exclude unreleased titles, non-ASCII titles and titles with
// @description 50,000 votes or fewer.
// @description
// @description ## Rate Limiting
// @description
// @description Default rate limit: 100 requests per minute per IP address.
// @description
// @description ## Error Responses
// @description
// @description Errors carry the HTTP status and a JSON string body, e.g. `"Page not found"`.
//
// @contact.name GitHub Repository
// @contact.url https://github.com/tomtom215/marquee/issues
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @host localhost:5000
// @BasePath /
// @schemes http https
//
// @tag.name Movies
// @tag.description Movie listing, lookup and poster updates
//
// @tag.name Core
// @tag.description Service root
//
// @tag.name Health
// @tag.description Liveness and readiness probes
package main
