// Marquee - Movie Metadata API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package models

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/goccy/go-json"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/tomtom215/marquee/internal/database/query"
	"github.com/tomtom215/marquee/internal/validation"
)

// DefaultMaxPosterBatch bounds the number of entries accepted in one
// PUT /updatePosters request.
const DefaultMaxPosterBatch = 1000

// PosterUpdate sets the poster URL of the movie identified by MongoID.
// PosterURL is stored as given; only its presence is checked.
type PosterUpdate struct {
	MongoID   string `json:"mongoId" validate:"required,mongodb"`
	PosterURL string `json:"posterURL" validate:"required"`
}

// ObjectID parses MongoID.
func (p PosterUpdate) ObjectID() (bson.ObjectID, error) {
	return bson.ObjectIDFromHex(p.MongoID)
}

// PosterEntry is one keyed entry of a poster batch.
type PosterEntry struct {
	Key string
	PosterUpdate
}

// PosterBatch is a validated PUT /updatePosters body.
// Entries are ordered by key so the resulting bulk write is deterministic.
type PosterBatch struct {
	Entries []PosterEntry
}

// Len returns the number of entries.
func (b *PosterBatch) Len() int {
	return len(b.Entries)
}

// ParsePosterUpdates decodes a JSON body of the form
//
//	{"<key>": {"mongoId": "<hex>", "posterURL": "<url>"}, ...}
//
// Every entry is checked; all violations are reported together.
func ParsePosterUpdates(data []byte, maxEntries int) (*PosterBatch, *validation.RequestValidationError) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, bodyError("body must be a JSON object")
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &raw); err != nil {
		return nil, bodyError("body must be a JSON object")
	}
	if verr := checkBatchSize(len(raw), maxEntries); verr != nil {
		return nil, verr
	}

	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	batch := &PosterBatch{Entries: make([]PosterEntry, 0, len(keys))}
	var verr *validation.RequestValidationError

	for _, key := range keys {
		var update PosterUpdate
		entry := bytes.TrimSpace(raw[key])
		if len(entry) == 0 || entry[0] != '{' || json.Unmarshal(entry, &update) != nil {
			verr = verr.Append(entryShapeError(key))
			continue
		}
		if ferr := validation.ValidateStruct(&update); ferr != nil {
			verr = verr.Append(ferr.WithPrefix(key))
			continue
		}
		batch.Entries = append(batch.Entries, PosterEntry{Key: key, PosterUpdate: update})
	}

	if verr != nil {
		return nil, verr
	}
	return batch, nil
}

// ParsePosterForm builds a batch from a urlencoded body using bracket
// notation: a[mongoId]=<hex>&a[posterURL]=<url>.
func ParsePosterForm(params query.Params, maxEntries int) (*PosterBatch, *validation.RequestValidationError) {
	if verr := checkBatchSize(params.Len(), maxEntries); verr != nil {
		return nil, verr
	}

	batch := &PosterBatch{}
	var verr *validation.RequestValidationError

	for _, key := range params.Keys() {
		fields, ok := params.Object(key)
		if !ok {
			verr = verr.Append(entryShapeError(key))
			continue
		}
		update := PosterUpdate{
			MongoID:   fields["mongoId"],
			PosterURL: fields["posterURL"],
		}
		if ferr := validation.ValidateStruct(&update); ferr != nil {
			verr = verr.Append(ferr.WithPrefix(key))
			continue
		}
		batch.Entries = append(batch.Entries, PosterEntry{Key: key, PosterUpdate: update})
	}

	if verr != nil {
		return nil, verr
	}
	return batch, nil
}

func checkBatchSize(n, maxEntries int) *validation.RequestValidationError {
	if n == 0 {
		return bodyError("body must contain at least one poster update")
	}
	if maxEntries > 0 && n > maxEntries {
		return validation.NewRequestValidationError(validation.NewValidationError(
			"body", "max", n, fmt.Sprintf("body must contain at most %d poster updates", maxEntries)))
	}
	return nil
}

func bodyError(msg string) *validation.RequestValidationError {
	return validation.NewRequestValidationError(validation.NewValidationError("body", "object", nil, msg))
}

func entryShapeError(key string) *validation.RequestValidationError {
	return validation.NewRequestValidationError(validation.NewValidationError(
		key, "object", nil, fmt.Sprintf("%s must be an object with string mongoId and posterURL", key)))
}
