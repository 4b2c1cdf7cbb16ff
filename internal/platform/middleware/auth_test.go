// Copyright (c) 2026 Lemraya. All rights reserved.

package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lemraya/lemraya-api/internal/platform/apperr"
	"github.com/lemraya/lemraya-api/internal/platform/ctxutil"
	"github.com/lemraya/lemraya-api/internal/platform/middleware"
	"github.com/lemraya/lemraya-api/internal/platform/sec"
)

// mockVerifier records whether it was called and returns a canned result.
type mockVerifier struct {
	identity *sec.Identity
	err      error
	calls    int
}

func (m *mockVerifier) VerifyToken(_ context.Context, _ string) (*sec.Identity, error) {
	m.calls++
	return m.identity, m.err
}

// runChain sends a request through the given middleware and reports whether
// the inner handler ran and which identity it observed.
func runChain(t *testing.T, mw func(http.Handler) http.Handler, authHeader string) (rec *httptest.ResponseRecorder, nextCalls int, seen *sec.Identity) {
	t.Helper()

	next := http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		nextCalls++
		seen = ctxutil.GetIdentity(request.Context())
		writer.WriteHeader(http.StatusOK)
	})

	request := httptest.NewRequest(http.MethodGet, "/api/dictionary", nil)
	if authHeader != "" {
		request.Header.Set("Authorization", authHeader)
	}

	rec = httptest.NewRecorder()
	mw(next).ServeHTTP(rec, request)
	return rec, nextCalls, seen
}

/*
TestRequireAuth_RejectsWithoutVerifierCall verifies that malformed or missing
credentials are rejected with 401 before any verification round trip.
*/
func TestRequireAuth_RejectsWithoutVerifierCall(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{"missing_header", ""},
		{"wrong_scheme", "Basic dXNlcjpwYXNz"},
		{"bare_scheme", "Bearer"},
		{"empty_token", "Bearer   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verifier := &mockVerifier{}

			rec, nextCalls, _ := runChain(t, middleware.RequireAuth(verifier), tt.header)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Zero(t, verifier.calls, "verifier must not be consulted")
			assert.Zero(t, nextCalls, "handler must not run")
			assert.Contains(t, rec.Body.String(), "UNAUTHORIZED")
		})
	}
}

/*
TestRequireAuth_VerifierOutcomes covers the verification result mapping:
rejection -> 401, provider failure -> 500, success -> identity in context.
*/
func TestRequireAuth_VerifierOutcomes(t *testing.T) {
	t.Run("invalid_token", func(t *testing.T) {
		verifier := &mockVerifier{err: apperr.Unauthorized("Invalid or expired token. Please log in again.")}

		rec, nextCalls, _ := runChain(t, middleware.RequireAuth(verifier), "Bearer bad-token")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, 1, verifier.calls)
		assert.Zero(t, nextCalls)
	})

	t.Run("provider_unreachable", func(t *testing.T) {
		verifier := &mockVerifier{err: apperr.InternalMessage("Failed to verify authentication", assert.AnError)}

		rec, nextCalls, _ := runChain(t, middleware.RequireAuth(verifier), "Bearer any")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Zero(t, nextCalls)
	})

	t.Run("no_identity", func(t *testing.T) {
		verifier := &mockVerifier{}

		rec, nextCalls, _ := runChain(t, middleware.RequireAuth(verifier), "Bearer any")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Zero(t, nextCalls)
	})

	t.Run("success_attaches_identity", func(t *testing.T) {
		verifier := &mockVerifier{identity: &sec.Identity{ID: "user-1", Email: "u@lemraya.app"}}

		rec, nextCalls, seen := runChain(t, middleware.RequireAuth(verifier), "Bearer good-token")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 1, nextCalls)
		require.NotNil(t, seen)
		assert.Equal(t, "user-1", seen.ID)
	})
}

/*
TestOptionalAuth_NeverBlocks verifies the degrade-to-anonymous contract: the
next handler always runs exactly once, whatever the credential state.
*/
func TestOptionalAuth_NeverBlocks(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		verifier *mockVerifier
		wantUser string
	}{
		{"missing_header", "", &mockVerifier{}, ""},
		{"malformed_scheme", "Token abc", &mockVerifier{}, ""},
		{"invalid_token", "Bearer bad", &mockVerifier{err: apperr.Unauthorized("nope")}, ""},
		{"provider_down", "Bearer any", &mockVerifier{err: apperr.Internal(assert.AnError)}, ""},
		{"valid_token", "Bearer good", &mockVerifier{identity: &sec.Identity{ID: "user-7"}}, "user-7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, nextCalls, seen := runChain(t, middleware.OptionalAuth(tt.verifier), tt.header)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, 1, nextCalls, "next must run exactly once")

			if tt.wantUser == "" {
				assert.Nil(t, seen)
			} else {
				require.NotNil(t, seen)
				assert.Equal(t, tt.wantUser, seen.ID)
			}
		})
	}
}

/*
TestRequireRole verifies role-set membership, the "user" default for tokens
issued without a role, and the 401-before-403 ordering.
*/
func TestRequireRole(t *testing.T) {
	gate := middleware.RequireRole(sec.RoleAdmin, "editor")

	serve := func(identity *sec.Identity) *httptest.ResponseRecorder {
		next := http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
			writer.WriteHeader(http.StatusOK)
		})

		request := httptest.NewRequest(http.MethodGet, "/api/admin", nil)
		if identity != nil {
			request = request.WithContext(ctxutil.WithIdentity(request.Context(), identity))
		}

		rec := httptest.NewRecorder()
		gate(next).ServeHTTP(rec, request)
		return rec
	}

	t.Run("anonymous_is_unauthorized", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, serve(nil).Code)
	})

	t.Run("member_of_set_passes", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, serve(&sec.Identity{ID: "u", Role: "editor"}).Code)
	})

	t.Run("outside_set_is_forbidden", func(t *testing.T) {
		rec := serve(&sec.Identity{ID: "u", Role: "user"})
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Contains(t, rec.Body.String(), "FORBIDDEN")
	})

	t.Run("unset_role_defaults_to_user", func(t *testing.T) {
		// "user" is not in the accepted set, so the default must be applied
		// and then rejected with 403, not treated as a match.
		assert.Equal(t, http.StatusForbidden, serve(&sec.Identity{ID: "u"}).Code)
	})
}

/*
TestRequireAdmin verifies the convenience composition: auth failures stay
401, a non-admin identity is 403, an admin passes.
*/
func TestRequireAdmin(t *testing.T) {
	t.Run("auth_failure_reports_unauthorized", func(t *testing.T) {
		verifier := &mockVerifier{err: apperr.Unauthorized("nope")}

		rec, nextCalls, _ := runChain(t, middleware.RequireAdmin(verifier), "Bearer bad")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Zero(t, nextCalls)
	})

	t.Run("non_admin_is_forbidden", func(t *testing.T) {
		verifier := &mockVerifier{identity: &sec.Identity{ID: "u", Role: sec.RoleUser}}

		rec, nextCalls, _ := runChain(t, middleware.RequireAdmin(verifier), "Bearer ok")

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Zero(t, nextCalls)
	})

	t.Run("admin_passes", func(t *testing.T) {
		verifier := &mockVerifier{identity: &sec.Identity{ID: "u", Role: sec.RoleAdmin}}

		rec, nextCalls, _ := runChain(t, middleware.RequireAdmin(verifier), "Bearer ok")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 1, nextCalls)
	})
}
