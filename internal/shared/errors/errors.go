package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an error by where in the prediction pipeline it arose.
type Kind string

const (
	// KindValidation: a form field is missing or fails to parse; never
	// reaches the network
	KindValidation Kind = "VALIDATION_ERROR"
	// KindTransport: the upstream call failed before a response was obtained
	KindTransport Kind = "TRANSPORT_ERROR"
	// KindServer: the upstream responded with a non-success status
	KindServer Kind = "SERVER_ERROR"
	// KindSchema: the upstream responded 200 but the body lacks the
	// expected success key
	KindSchema Kind = "SCHEMA_ERROR"
	// KindConflict: a submission was rejected because one is already in flight
	KindConflict Kind = "CONFLICT"
	// KindInternal: anything else
	KindInternal Kind = "INTERNAL_ERROR"
)

// Common error types
var (
	ErrValidation = errors.New("validation error")
	ErrTransport  = errors.New("transport error")
	ErrServer     = errors.New("server error")
	ErrSchema     = errors.New("schema error")
	ErrConflict   = errors.New("conflict")
	ErrInternal   = errors.New("internal error")
)

// AppError represents an application error with context. The Kind is kept
// distinct even where the user-facing message is uniform, so each failure
// class stays testable and countable.
type AppError struct {
	Err        error             `json:"-"`
	Message    string            `json:"message"`
	Kind       Kind              `json:"kind"`
	HTTPStatus int               `json:"-"`
	Details    map[string]string `json:"details,omitempty"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Validation creates a validation error with per-field details
func Validation(message string, details map[string]string) *AppError {
	return &AppError{
		Err:        ErrValidation,
		Message:    message,
		Kind:       KindValidation,
		HTTPStatus: http.StatusBadRequest,
		Details:    details,
	}
}

// Transport creates a transport error for a call that failed before any
// response was obtained
func Transport(err error) *AppError {
	return &AppError{
		Err:        fmt.Errorf("%w: %w", ErrTransport, err),
		Message:    "prediction service unreachable",
		Kind:       KindTransport,
		HTTPStatus: http.StatusBadGateway,
	}
}

// Server creates a server error from an upstream non-success status
func Server(status int, body string) *AppError {
	return &AppError{
		Err:        ErrServer,
		Message:    fmt.Sprintf("prediction service returned status %d", status),
		Kind:       KindServer,
		HTTPStatus: http.StatusBadGateway,
		Details:    map[string]string{"upstream_status": fmt.Sprintf("%d", status), "upstream_body": body},
	}
}

// Schema creates a schema error for a success response missing the expected keys
func Schema(message string) *AppError {
	return &AppError{
		Err:        ErrSchema,
		Message:    message,
		Kind:       KindSchema,
		HTTPStatus: http.StatusBadGateway,
	}
}

// Conflict creates a conflict error
func Conflict(message string) *AppError {
	return &AppError{
		Err:        ErrConflict,
		Message:    message,
		Kind:       KindConflict,
		HTTPStatus: http.StatusConflict,
	}
}

// Internal creates an internal error
func Internal(err error) *AppError {
	return &AppError{
		Err:        err,
		Message:    "internal server error",
		Kind:       KindInternal,
		HTTPStatus: http.StatusInternalServerError,
	}
}

// Wrap wraps an error with additional context, preserving its kind
func Wrap(err error, message string) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return &AppError{
			Err:        appErr,
			Message:    fmt.Sprintf("%s: %s", message, appErr.Message),
			Kind:       appErr.Kind,
			HTTPStatus: appErr.HTTPStatus,
			Details:    appErr.Details,
		}
	}
	return &AppError{
		Err:        err,
		Message:    message,
		Kind:       KindInternal,
		HTTPStatus: http.StatusInternalServerError,
	}
}

// KindOf returns the kind of an error, or KindInternal for unclassified errors
func KindOf(err error) Kind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}
