// Marquee - Movie Metadata API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

// Package logging provides centralized zerolog-based structured logging for Marquee.
//
// JSON output is the default for production; console output is available
// for local development.
//
// # Quick Start
//
//	logging.Init(logging.Config{
//	    Level:  "info",
//	    Format: "json",
//	})
//
//	logging.Info().Int("port", 5000).Msg("HTTP server listening")
//	logging.Error().Err(err).Str("collection", "movies").Msg("Find failed")
//
// # Configuration
//
// Environment Variables (read by internal/config):
//
//	LOG_LEVEL   - Minimum log level: trace, debug, info, warn, error (default: info)
//	LOG_FORMAT  - Output format: json, console (default: json)
//	LOG_CALLER  - Include caller file:line: true, false (default: false)
//
// # Request Context
//
// The request ID middleware stores request and correlation IDs on the
// request context. Ctx returns a logger carrying both:
//
//	logging.Ctx(r.Context()).Warn().Err(err).Msg("Poster update failed")
//
// # Component Loggers
//
//	storeLog := logging.WithComponent("mongo")
//	storeLog.Info().Str("database", db).Msg("Connected")
//
// # slog Adapter
//
// Suture v4 reports supervisor events through *slog.Logger:
//
//	handler := sutureslog.Handler{Logger: logging.NewSlogLogger("supervisor")}
//
// # Output Formats
//
// JSON Format (Production):
//
//	{"level":"info","time":"2026-01-03T10:30:00Z","message":"HTTP server listening","port":5000}
//
// Console Format (Development):
//
//	10:30:00 INF HTTP server listening port=5000
//
// # Thread Safety
//
// All exported functions are safe for concurrent use. The global logger is
// protected by sync.RWMutex for configuration changes.
//
// # Testing
//
//	var buf bytes.Buffer
//	logging.SetLogger(logging.NewTestLogger(&buf))
package logging
