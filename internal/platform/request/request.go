// Copyright (c) 2026 Lemraya. All rights reserved.

/*
Package request provides utilities for extracting data from HTTP requests.

It abstracts away the underlying router's parameter extraction and common
body decoding patterns, ensuring consistent error handling and type safety.
*/
package requestutil

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/lemraya/lemraya-api/internal/platform/apperr"
	"github.com/lemraya/lemraya-api/internal/platform/ctxutil"
	"github.com/lemraya/lemraya-api/internal/platform/sec"
	"github.com/lemraya/lemraya-api/internal/platform/validate"
)

/*
DecodeJSON reads the request body and decodes it into the target structure.

Parameters:
  - request: *http.Request
  - target: interface{} (Pointer to the destination struct)

Returns:
  - error: validate.ErrInvalidJSON if decoding fails, otherwise nil
*/
func DecodeJSON(request *http.Request, target interface{}) error {
	if err := json.NewDecoder(request.Body).Decode(target); err != nil {
		return validate.ErrInvalidJSON
	}
	return nil
}

/*
Param retrieves a named URL parameter from the request.
*/
func Param(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

/*
IntParam retrieves a named URL parameter and requires it to be numeric.

Non-numeric values are a validation failure detected before any remote call.
*/
func IntParam(request *http.Request, name string) (int64, error) {
	raw := chi.URLParam(request, name)
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, apperr.ValidationError("Invalid " + name)
	}
	return value, nil
}

/*
IntQuery retrieves a named query parameter as an integer.

Returns:
  - value, true when the parameter is present and numeric
  - 0, false when absent
  - an error when present but non-numeric
*/
func IntQuery(request *http.Request, name string) (int64, bool, error) {
	raw := request.URL.Query().Get(name)
	if raw == "" {
		return 0, false, nil
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false, apperr.ValidationError("Invalid " + name)
	}
	return value, true, nil
}

/*
Identity extracts the authenticated identity from the request context.

Returns nil if the request is anonymous.
*/
func Identity(request *http.Request) *sec.Identity {
	return ctxutil.GetIdentity(request.Context())
}

/*
RequiredIdentity ensures the request is authenticated and returns the identity.

Returns:
  - *sec.Identity: the authenticated user
  - error: apperr.Unauthorized if the request is not authenticated
*/
func RequiredIdentity(request *http.Request) (*sec.Identity, error) {
	identity := ctxutil.GetIdentity(request.Context())
	if identity == nil {
		return nil, apperr.Unauthorized("Authentication required. Please log in.")
	}
	return identity, nil
}

/*
RequiredUserID returns the user ID of the currently logged-in user.

Returns:
  - string: user ID issued by the auth provider
  - error: apperr.Unauthorized if not authenticated
*/
func RequiredUserID(request *http.Request) (string, error) {
	identity, err := RequiredIdentity(request)
	if err != nil {
		return "", err
	}
	return identity.ID, nil
}
