// Marquee - Movie Metadata API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tomtom215/marquee/internal/config"
	"github.com/tomtom215/marquee/internal/database"
	"github.com/tomtom215/marquee/internal/logging"
)

const (
	// maxPingFailures is the number of consecutive failed pings after which
	// the connection is torn down and re-established.
	maxPingFailures = 3

	disconnectTimeout = 5 * time.Second
)

// errConnectionLost is returned from Serve when pings keep failing so the
// supervisor reconnects.
var errConnectionLost = errors.New("mongo connection lost")

// MongoConnection is a connected store that can bootstrap indexes and be
// closed. Satisfied by *database.MongoStore.
type MongoConnection interface {
	database.MovieStore
	EnsureTextIndex(ctx context.Context) error
	Disconnect(ctx context.Context) error
}

// ConnectFunc opens a MongoConnection.
type ConnectFunc func(ctx context.Context, cfg *config.MongoConfig) (MongoConnection, error)

// StorePublisher exposes the live store to request handlers.
// Satisfied by *database.Provider.
type StorePublisher interface {
	Set(store database.MovieStore)
	Clear()
}

// MongoService owns the MongoDB connection.
//
// Each Serve call connects, optionally creates the title text index, wraps
// the connection in a circuit breaker and publishes it. It then pings every
// PingInterval; after maxPingFailures consecutive failures it returns an
// error and suture restarts it with backoff. The store is withdrawn before
// the client is closed, so handlers answer 503 rather than use a closed
// client.
//
//	provider := database.NewProvider()
//	tree.AddDataService(services.NewMongoService(&cfg.Mongo, provider))
type MongoService struct {
	cfg       *config.MongoConfig
	publisher StorePublisher
	connect   ConnectFunc
	name      string
}

// NewMongoService creates the connector for cfg, publishing to publisher.
func NewMongoService(cfg *config.MongoConfig, publisher StorePublisher) *MongoService {
	return &MongoService{
		cfg:       cfg,
		publisher: publisher,
		connect:   connectMongo,
		name:      "mongo-connector",
	}
}

func connectMongo(ctx context.Context, cfg *config.MongoConfig) (MongoConnection, error) {
	store, err := database.Connect(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return store, nil
}

// Serve implements suture.Service.
func (s *MongoService) Serve(ctx context.Context) error {
	log := logging.WithComponent(s.name)

	conn, err := s.connect(ctx, s.cfg)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("connect to %s: %w", s.cfg.String(), err)
	}
	defer s.release(conn)

	if s.cfg.EnsureTextIndex {
		if err := conn.EnsureTextIndex(ctx); err != nil {
			// Listing still works; only title search needs the index.
			log.Error().Err(err).Msg("Failed to ensure title text index")
		}
	}

	s.publisher.Set(database.NewCircuitBreakerStore(conn))
	log.Info().Str("target", s.cfg.String()).Msg("MongoDB store published")

	if s.cfg.PingInterval <= 0 {
		<-ctx.Done()
		return ctx.Err()
	}

	ticker := time.NewTicker(s.cfg.PingInterval)
	defer ticker.Stop()

	failures := 0
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := s.ping(ctx, conn); err != nil {
				failures++
				log.Warn().Err(err).Int("consecutive_failures", failures).Msg("MongoDB ping failed")
				if failures >= maxPingFailures {
					return fmt.Errorf("%w after %d failed pings: %w", errConnectionLost, failures, err)
				}
				continue
			}
			if failures > 0 {
				log.Info().Msg("MongoDB ping recovered")
			}
			failures = 0
		}
	}
}

// ping goes straight to the connection so health checks neither trip nor
// wait on the request circuit breaker.
func (s *MongoService) ping(ctx context.Context, conn MongoConnection) error {
	timeout := s.cfg.PingInterval
	if s.cfg.OperationTimeout > 0 && s.cfg.OperationTimeout < timeout {
		timeout = s.cfg.OperationTimeout
	}
	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return conn.Ping(pingCtx)
}

func (s *MongoService) release(conn MongoConnection) {
	s.publisher.Clear()

	ctx, cancel := context.WithTimeout(context.Background(), disconnectTimeout)
	defer cancel()
	if err := conn.Disconnect(ctx); err != nil {
		logging.Warn().Err(err).Str("service", s.name).Msg("MongoDB disconnect failed")
	}
}

// String implements fmt.Stringer for suture's event log.
func (s *MongoService) String() string {
	return s.name
}
