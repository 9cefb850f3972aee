// Marquee - Movie Metadata API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package config

import (
	"fmt"
	"net/url"
	"strings"
)

// validateMongoURI checks that rawURI is a mongodb:// or mongodb+srv:// URI
// with a host.
func validateMongoURI(rawURI string) error {
	if rawURI == "" {
		return fmt.Errorf("MONGO_URI is required")
	}

	parsed, err := url.Parse(rawURI)
	if err != nil {
		return fmt.Errorf("MONGO_URI is not a valid URI: %w", err)
	}

	switch parsed.Scheme {
	case "mongodb", "mongodb+srv":
	default:
		return fmt.Errorf("MONGO_URI must use mongodb:// or mongodb+srv:// scheme, got %q", parsed.Scheme)
	}

	if parsed.Host == "" {
		return fmt.Errorf("MONGO_URI must include a host")
	}
	if parsed.Scheme == "mongodb+srv" && strings.Contains(parsed.Host, ",") {
		return fmt.Errorf("MONGO_URI with mongodb+srv must name a single host")
	}

	return nil
}

// redactURI hides the password of a connection string.
func redactURI(rawURI string) string {
	parsed, err := url.Parse(rawURI)
	if err != nil {
		return "<invalid uri>"
	}
	return parsed.Redacted()
}
