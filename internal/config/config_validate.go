// Marquee - Movie Metadata API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	validEnvironments = []string{"development", "staging", "production"}
	validSorts        = []string{"trending", "top_rated"}
	validLogLevels    = []string{"trace", "debug", "info", "warn", "error", "fatal", "panic", "disabled"}
	validLogFormats   = []string{"json", "console"}
)

// Validate checks the configuration and returns every problem found.
func (c *Config) Validate() error {
	return errors.Join(
		c.validateServer(),
		c.validateMongo(),
		c.validateMovies(),
		c.validateAPI(),
		c.validateRateLimits(),
		c.validateLogging(),
	)
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("PORT must be between 1 and 65535, got %d", c.Server.Port)
	}
	if !contains(validEnvironments, c.Server.Environment) {
		return fmt.Errorf("ENVIRONMENT must be one of %s, got %q",
			strings.Join(validEnvironments, ", "), c.Server.Environment)
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive, got %v", c.Server.Timeout)
	}
	return nil
}

func (c *Config) validateMongo() error {
	if err := validateMongoURI(c.Mongo.URI); err != nil {
		return err
	}
	if err := validateMongoName("DB_NAME", c.Mongo.Database, "/\\. \"$"); err != nil {
		return err
	}
	if err := validateMongoName("MOVIES_COLLECTION_NAME", c.Mongo.Collection, "$"); err != nil {
		return err
	}
	if strings.HasPrefix(c.Mongo.Collection, "system.") {
		return fmt.Errorf("MOVIES_COLLECTION_NAME must not use the reserved system. prefix")
	}
	if c.Mongo.ConnectTimeout <= 0 {
		return fmt.Errorf("MONGO_CONNECT_TIMEOUT must be positive, got %v", c.Mongo.ConnectTimeout)
	}
	if c.Mongo.OperationTimeout <= 0 {
		return fmt.Errorf("MONGO_OPERATION_TIMEOUT must be positive, got %v", c.Mongo.OperationTimeout)
	}
	if c.Mongo.PingInterval < time.Second {
		return fmt.Errorf("MONGO_PING_INTERVAL must be at least 1s, got %v", c.Mongo.PingInterval)
	}
	return nil
}

// validateMongoName rejects empty names and names containing any of the
// characters MongoDB forbids for that kind of namespace.
func validateMongoName(envName, value, forbidden string) error {
	if value == "" {
		return fmt.Errorf("%s is required", envName)
	}
	if strings.ContainsAny(value, forbidden) || strings.ContainsRune(value, 0) {
		return fmt.Errorf("%s contains characters not allowed by MongoDB: %q", envName, value)
	}
	return nil
}

func (c *Config) validateMovies() error {
	if !contains(validSorts, c.Movies.DefaultSort) {
		return fmt.Errorf("MOVIES_DEFAULT_SORT must be one of %s, got %q",
			strings.Join(validSorts, ", "), c.Movies.DefaultSort)
	}
	return nil
}

func (c *Config) validateAPI() error {
	if c.API.MaxPageSize < 1 {
		return fmt.Errorf("API_MAX_PAGE_SIZE must be at least 1, got %d", c.API.MaxPageSize)
	}
	if c.API.DefaultPageSize < 1 || c.API.DefaultPageSize > c.API.MaxPageSize {
		return fmt.Errorf("API_DEFAULT_PAGE_SIZE must be between 1 and API_MAX_PAGE_SIZE (%d), got %d",
			c.API.MaxPageSize, c.API.DefaultPageSize)
	}
	if c.API.MaxPosterBatch < 1 {
		return fmt.Errorf("API_MAX_POSTER_BATCH must be at least 1, got %d", c.API.MaxPosterBatch)
	}
	if c.API.MaxBodyBytes < 1024 {
		return fmt.Errorf("API_MAX_BODY_BYTES must be at least 1024, got %d", c.API.MaxBodyBytes)
	}
	return nil
}

func (c *Config) validateRateLimits() error {
	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitReqs < 1 {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be at least 1, got %d", c.Security.RateLimitReqs)
	}
	if c.Security.RateLimitWindow < time.Second {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be at least 1s, got %v", c.Security.RateLimitWindow)
	}
	return nil
}

func (c *Config) validateLogging() error {
	if !contains(validLogLevels, strings.ToLower(c.Logging.Level)) {
		return fmt.Errorf("LOG_LEVEL must be one of %s, got %q",
			strings.Join(validLogLevels, ", "), c.Logging.Level)
	}
	if !contains(validLogFormats, strings.ToLower(c.Logging.Format)) {
		return fmt.Errorf("LOG_FORMAT must be one of %s, got %q",
			strings.Join(validLogFormats, ", "), c.Logging.Format)
	}
	return nil
}

// hasWildcardCORS reports whether any origin is "*".
func (c *Config) hasWildcardCORS() bool {
	for _, origin := range c.Security.CORSOrigins {
		if origin == "*" {
			return true
		}
	}
	return false
}

// ShouldWarnAboutCORS reports whether a wildcard CORS origin is configured
// in production.
func (c *Config) ShouldWarnAboutCORS() bool {
	return c.IsProduction() && c.hasWildcardCORS()
}

// IsProduction returns true when running in production.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

// IsDevelopment returns true when running in development.
func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
