// Copyright (c) 2026 Lemraya. All rights reserved.

/*
Package apperr defines the centralized error taxonomy for the Lemraya API.

It provides a rich error type that bridges the gap between low-level storage
or upstream-service errors and the HTTP responses the frontend consumes.

Architecture:

  - AppError: a struct carrying a machine-readable Code and a client-safe message.
  - Taxonomy: exactly one constructor per error kind, one kind per HTTP status.
  - Mapping: the HTTP status lives on the error itself; respond.Error is the
    single place that turns an error into a response.

Every error that leaves a service should be wrapped as an [AppError] so all
handlers report failures in the same shape.
*/
package apperr

import (
	"errors"
	"net/http"
)

// AppError is the canonical error type for the Lemraya API.
//
// It carries an HTTP status code, a machine-readable kind, a client-safe
// message, and an optional slice of field-level validation errors.
//
// # Security
//
// The Cause field is for server-side logging only and is never sent to
// clients, so raw upstream error text cannot leak.
type AppError struct {
	// Code is a machine-readable error kind (e.g. "NOT_FOUND", "UNAUTHORIZED").
	Code string `json:"error"`
	// Message is a human-readable description safe to return to the client.
	Message string `json:"message"`
	// HTTPStatus is the HTTP response status code.
	HTTPStatus int `json:"-"`
	// Cause is the underlying error, used for server-side logging only.
	Cause error `json:"-"`
	// Details holds per-field validation errors for VALIDATION_ERROR responses.
	Details []FieldError `json:"details,omitempty"`
}

// FieldError represents a single field-level validation failure.
type FieldError struct {
	// Field is the JSON field name that failed validation.
	Field string `json:"field"`
	// Message is the human-readable description of the failure.
	Message string `json:"message"`
}

// Error implements the error interface. It returns the client-safe message.
func (e *AppError) Error() string { return e.Message }

// Unwrap allows [errors.Is] and [errors.As] to traverse the cause chain.
func (e *AppError) Unwrap() error { return e.Cause }

// # Client Errors (4xx)

// ValidationError creates a 400 [AppError] with optional per-field details.
func ValidationError(msg string, details ...FieldError) *AppError {
	return &AppError{
		Code:       "VALIDATION_ERROR",
		Message:    msg,
		HTTPStatus: http.StatusBadRequest,
		Details:    details,
	}
}

// Unauthorized creates a 401 [AppError] for a missing or invalid credential.
func Unauthorized(msg string) *AppError {
	return &AppError{
		Code:       "UNAUTHORIZED",
		Message:    msg,
		HTTPStatus: http.StatusUnauthorized,
	}
}

// Forbidden creates a 403 [AppError] for a valid credential with an
// insufficient role.
func Forbidden(msg string) *AppError {
	return &AppError{
		Code:       "FORBIDDEN",
		Message:    msg,
		HTTPStatus: http.StatusForbidden,
	}
}

// NotFound creates a 404 [AppError] with a descriptive message.
//
// Example:
//
//	apperr.NotFound("No metadata found for this article")
func NotFound(msg string) *AppError {
	return &AppError{
		Code:       "NOT_FOUND",
		Message:    msg,
		HTTPStatus: http.StatusNotFound,
	}
}

// # Server Errors (5xx)

// Internal creates a 500 [AppError] wrapping an unexpected server-side error.
// The cause is stored for logging but is never sent to the client.
func Internal(cause error) *AppError {
	return &AppError{
		Code:       "INTERNAL_ERROR",
		Message:    "An unexpected error occurred",
		HTTPStatus: http.StatusInternalServerError,
		Cause:      cause,
	}
}

// InternalMessage creates a 500 [AppError] with a client-safe message that
// names the failed step (e.g. which sub-query of a multi-table merge broke).
func InternalMessage(msg string, cause error) *AppError {
	return &AppError{
		Code:       "INTERNAL_ERROR",
		Message:    msg,
		HTTPStatus: http.StatusInternalServerError,
		Cause:      cause,
	}
}

// # Helpers

// IsAppError reports whether err (or any error in its chain) is an [*AppError].
func IsAppError(err error) bool {
	var ae *AppError
	return errors.As(err, &ae)
}

// As extracts the [*AppError] from err's chain. It returns nil if not found.
func As(err error) *AppError {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae
	}
	return nil
}
