// Copyright (c) 2026 Lemraya. All rights reserved.

// Package dberr provides a bridge between low-level database errors and
// higher-level application errors.
package dberr

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/lemraya/lemraya-api/internal/platform/apperr"
)

// ErrNoRows is the sentinel returned when a single-row query matched nothing.
//
// Services compare against it with errors.Is to decide whether "no row" is a
// 404, a defined empty state, or something else for their endpoint.
var ErrNoRows = apperr.NotFound("Resource not found")

// Wrap inspects a database error and wraps it into a meaningful [apperr.AppError].
// It hides internal database details from the client while classifying the error type.
func Wrap(err error, action string) error {
	if err == nil {
		return nil
	}

	// 1. Not Found mapping
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNoRows
	}

	// 2. Unknown query errors become Internal Server Errors. The action tag
	// travels in the cause for logging, never to the client.
	return apperr.Internal(fmt.Errorf("%s: %w", action, err))
}
