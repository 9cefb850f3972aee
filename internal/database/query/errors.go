// Marquee - Movie Metadata API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package query

import (
	"errors"
	"fmt"
)

// ErrInvalidField is the sentinel wrapped by every translation failure.
var ErrInvalidField = errors.New("invalid field")

// FieldError describes which query parameter could not be translated.
type FieldError struct {
	Param  string
	Value  string
	Reason string
}

func (e *FieldError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("invalid field %q: %s", e.Param, e.Reason)
	}
	return fmt.Sprintf("invalid field %q (%q): %s", e.Param, e.Value, e.Reason)
}

// Unwrap allows errors.Is(err, ErrInvalidField).
func (e *FieldError) Unwrap() error {
	return ErrInvalidField
}

func invalidField(param, value, reason string) *FieldError {
	return &FieldError{Param: param, Value: value, Reason: reason}
}
