// Marquee - Movie Metadata API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package api

import (
	"errors"
	"net/http"

	"github.com/tomtom215/marquee/internal/database"
	"github.com/tomtom215/marquee/internal/database/query"
	"github.com/tomtom215/marquee/internal/logging"
	"github.com/tomtom215/marquee/internal/metrics"
	"github.com/tomtom215/marquee/internal/validation"
)

// Defaults applied when an error carries no status or message.
const (
	DefaultErrorStatus  = http.StatusInternalServerError
	DefaultErrorMessage = "Something went wrong"

	// InvalidFieldMessage is the client message for any rejected query
	// parameter. The specific parameter and reason are only logged.
	InvalidFieldMessage = "Invalid field"
)

// ErrorKind classifies an AppError for logs and metrics.
type ErrorKind string

// Error kinds
const (
	KindInvalidField       ErrorKind = "InvalidField"
	KindInvalidBody        ErrorKind = "InvalidBody"
	KindNotFound           ErrorKind = "NotFound"
	KindServiceUnavailable ErrorKind = "ServiceUnavailable"
	KindTooManyRequests    ErrorKind = "TooManyRequests"
	KindMethodNotAllowed   ErrorKind = "MethodNotAllowed"
	KindInternal           ErrorKind = "Internal"
)

// AppError is an error with the HTTP status and client-facing message to
// answer with. Zero StatusCode and empty Message fall back to the defaults.
type AppError struct {
	StatusCode int
	Message    string
	Kind       ErrorKind
	Err        error
}

func (e *AppError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = DefaultErrorMessage
	}
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Status returns StatusCode or DefaultErrorStatus.
func (e *AppError) Status() int {
	if e.StatusCode == 0 {
		return DefaultErrorStatus
	}
	return e.StatusCode
}

// ClientMessage returns Message or DefaultErrorMessage.
func (e *AppError) ClientMessage() string {
	if e.Message == "" {
		return DefaultErrorMessage
	}
	return e.Message
}

// NewAppError creates an AppError without a cause.
func NewAppError(message string, statusCode int) *AppError {
	return &AppError{StatusCode: statusCode, Message: message, Kind: kindForStatus(statusCode)}
}

// InvalidField reports a query parameter that could not be translated.
func InvalidField(err error) *AppError {
	return &AppError{StatusCode: http.StatusBadRequest, Message: InvalidFieldMessage, Kind: KindInvalidField, Err: err}
}

// InvalidBody reports a request body that failed decoding or validation.
func InvalidBody(message string, err error) *AppError {
	return &AppError{StatusCode: http.StatusBadRequest, Message: message, Kind: KindInvalidBody, Err: err}
}

// NotFound reports a missing resource.
func NotFound(message string) *AppError {
	return &AppError{StatusCode: http.StatusNotFound, Message: message, Kind: KindNotFound}
}

// ServiceUnavailable reports that the movie store cannot serve requests.
func ServiceUnavailable(err error) *AppError {
	return &AppError{
		StatusCode: http.StatusServiceUnavailable,
		Message:    "Service unavailable",
		Kind:       KindServiceUnavailable,
		Err:        err,
	}
}

func kindForStatus(status int) ErrorKind {
	switch status {
	case http.StatusBadRequest:
		return KindInvalidBody
	case http.StatusNotFound:
		return KindNotFound
	case http.StatusMethodNotAllowed:
		return KindMethodNotAllowed
	case http.StatusTooManyRequests:
		return KindTooManyRequests
	case http.StatusServiceUnavailable:
		return KindServiceUnavailable
	default:
		return KindInternal
	}
}

// toAppError maps errors returned by handlers onto an AppError.
// Unrecognised errors become a bare AppError so the defaults apply.
func toAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	var verr *validation.RequestValidationError
	if errors.As(err, &verr) {
		return InvalidBody(verr.Error(), err)
	}

	var maxBytes *http.MaxBytesError
	if errors.As(err, &maxBytes) {
		return &AppError{
			StatusCode: http.StatusRequestEntityTooLarge,
			Message:    "Request body too large",
			Kind:       KindInvalidBody,
			Err:        err,
		}
	}

	switch {
	case errors.Is(err, query.ErrInvalidField):
		return InvalidField(err)
	case errors.Is(err, database.ErrMovieNotFound):
		return NotFound("Movie not found")
	case database.IsUnavailable(err):
		return ServiceUnavailable(err)
	}

	return &AppError{Kind: KindInternal, Err: err}
}

// HandlerFunc is an http.HandlerFunc that returns its failure instead of
// writing it.
type HandlerFunc func(w http.ResponseWriter, r *http.Request) error

// Wrap adapts fn so any returned error reaches respondAppError.
func Wrap(fn HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := fn(w, r); err != nil {
			respondAppError(w, r, err)
		}
	}
}

// respondAppError is the single place error responses are written. The body
// is the message encoded as a JSON string.
func respondAppError(w http.ResponseWriter, r *http.Request, err error) {
	appErr := toAppError(err)
	status := appErr.Status()

	event := logging.Ctx(r.Context()).Warn()
	if status >= http.StatusInternalServerError {
		event = logging.Ctx(r.Context()).Error()
	}
	event.
		Str("kind", string(appErr.Kind)).
		Int("status", status).
		Str("method", r.Method).
		Str("path", sanitizeLogValue(r.URL.Path)).
		Err(appErr.Err).
		Msg("Request failed")

	metrics.RecordAPIError(string(appErr.Kind), status)
	respondJSON(w, status, appErr.ClientMessage())
}
