// Marquee - Movie Metadata API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

/*
Package supervisor provides process supervision for Marquee using suture v4.

# Overview

The tree has two layers so that each can restart on its own:

	RootSupervisor ("marquee")
	├── DataSupervisor ("data-layer")
	│   └── MongoService ("mongo-connector")
	└── APISupervisor ("api-layer")
	    └── HTTPServerService ("http-server")

The HTTP server starts immediately and answers 503 until the connector has
published a store through database.Provider. If MongoDB goes away the
connector returns an error, withdraws the store and is restarted with
backoff; the HTTP server keeps running throughout.

# Usage

	provider := database.NewProvider()

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger("supervisor"), supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}
	tree.AddDataService(services.NewMongoService(&cfg.Mongo, provider))
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	err = tree.Serve(ctx)

# Failure Handling

Suture keeps a failure counter that decays over FailureDecay seconds. Once it
exceeds FailureThreshold the supervisor waits FailureBackoff before the next
restart. Defaults match suture's: 5 failures, 30s decay, 15s backoff, 10s
shutdown timeout.

Services return:

	nil         -> stopped cleanly, not restarted
	error       -> crashed, restarted
	ctx.Err()   -> shutdown requested

# Logging

Supervisor events (service start, failure, backoff) go through sutureslog to
the slog.Logger passed to NewSupervisorTree; cmd/server passes a zerolog-backed
logger from internal/logging.

# Debugging Shutdown

	report, _ := tree.UnstoppedServiceReport()
	for _, svc := range report {
	    logging.Warn().Str("service", svc.Name).Msg("Service did not stop")
	}
*/
package supervisor
