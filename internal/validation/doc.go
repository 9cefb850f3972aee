// Marquee - Movie Metadata API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

// Package validation provides struct validation using go-playground/validator v10.
//
// The package wraps a thread-safe singleton validator and turns its errors
// into user-facing messages. Field names in messages follow the struct's json
// tag (or query tag), so a poster entry reports "mongoId is required" rather
// than "MongoID is required".
//
// # Quick Start
//
//	type PosterUpdate struct {
//	    MongoID   string `json:"mongoId" validate:"required,mongodb"`
//	    PosterURL string `json:"posterURL" validate:"required"`
//	}
//
//	if verr := validation.ValidateStruct(&entry); verr != nil {
//	    verr = verr.WithPrefix("posters.a")
//	    // verr.Error() == "posters.a.mongoId must be a 24 character hex ObjectID"
//	}
//
// # Building errors by hand
//
// Decoders that detect problems before a struct exists (wrong JSON type,
// empty object) use NewValidationError and NewRequestValidationError so the
// caller sees a single error type:
//
//	verr := validation.NewRequestValidationError(
//	    validation.NewValidationError("body", "object", nil, "body must be a JSON object"),
//	)
//
// # Error Message Translation
//
//	required  -> "mongoId is required"
//	mongodb   -> "mongoId must be a 24 character hex ObjectID"
//	http_url  -> "website must be a valid http or https URL"
//	oneof=a b -> "default_sort must be one of: a b"
//	min=1     -> "page must be at least 1"
//
// # Thread Safety
//
// GetValidator and ValidateStruct are safe for concurrent use. The validator
// caches struct reflection information after the first call per type.
package validation
