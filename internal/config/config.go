// Marquee - Movie Metadata API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package config

import (
	"fmt"
	"net"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Mongo    MongoConfig    `koanf:"mongo"`
	Movies   MoviesConfig   `koanf:"movies"`
	API      APIConfig      `koanf:"api"`
	Security SecurityConfig `koanf:"security"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port            int           `koanf:"port"`
	Host            string        `koanf:"host"`
	Timeout         time.Duration `koanf:"timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	Environment     string        `koanf:"environment"` // development, staging, production
}

// Addr returns host:port for http.Server.
func (s *ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// MongoConfig holds MongoDB connection settings
type MongoConfig struct {
	URI              string        `koanf:"uri"`
	Database         string        `koanf:"database"`
	Collection       string        `koanf:"collection"`
	ConnectTimeout   time.Duration `koanf:"connect_timeout"`
	OperationTimeout time.Duration `koanf:"operation_timeout"`
	PingInterval     time.Duration `koanf:"ping_interval"`
	MaxPoolSize      uint64        `koanf:"max_pool_size"`

	// EnsureTextIndex creates the primaryTitle text index on connect.
	// Title search ($text) fails without it.
	EnsureTextIndex bool `koanf:"ensure_text_index"`
}

// String returns a log-safe description without credentials.
func (m *MongoConfig) String() string {
	return fmt.Sprintf("%s/%s.%s", redactURI(m.URI), m.Database, m.Collection)
}

// MoviesConfig holds movie listing behavior
type MoviesConfig struct {
	// DefaultSort applies when sort_by is absent: trending or top_rated.
	DefaultSort string `koanf:"default_sort"`
}

// APIConfig holds request sizing limits
type APIConfig struct {
	DefaultPageSize int   `koanf:"default_page_size"`
	MaxPageSize     int   `koanf:"max_page_size"`
	MaxPosterBatch  int   `koanf:"max_poster_batch"`
	MaxBodyBytes    int64 `koanf:"max_body_bytes"`
}

// SecurityConfig holds CORS and rate limiting settings
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	TrustedProxies    []string      `koanf:"trusted_proxies"`
}

// LoggingConfig holds logging settings
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// Load reads configuration from defaults, the optional config file and the
// environment.
func Load() (*Config, error) {
	return LoadWithKoanf("")
}
