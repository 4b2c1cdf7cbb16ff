// Copyright (c) 2026 Lemraya. All rights reserved.

package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"github.com/lemraya/lemraya-api/internal/platform/apperr"
	"github.com/lemraya/lemraya-api/internal/platform/constants"
	"github.com/lemraya/lemraya-api/internal/platform/ctxutil"
	"github.com/lemraya/lemraya-api/internal/platform/respond"
	"github.com/lemraya/lemraya-api/internal/platform/sec"
)

// TokenVerifier defines the interface needed to verify tokens in middleware.
//
// # Why an interface?
//
// Defining TokenVerifier here decouples the middleware from the concrete
// verifier (local JWT or remote provider call), and lets unit tests inject
// a mock and assert that rejected requests never reach it.
type TokenVerifier interface {
	VerifyToken(ctx context.Context, tokenStr string) (*sec.Identity, error)
}

// bearerToken extracts the token segment from an Authorization header.
// ok is false when the header is absent, not Bearer-schemed, or empty
// after the scheme prefix.
func bearerToken(request *http.Request) (token string, ok bool) {
	authHeader := request.Header.Get(constants.HeaderAuthorization)
	if authHeader == "" {
		return "", false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", false
	}

	token = strings.TrimSpace(parts[1])
	if token == "" {
		return "", false
	}

	return token, true
}

// RequireAuth blocks requests that do not carry a valid bearer token.
//
// # Flow
//  1. Extract 'Authorization: Bearer <token>'; absent, malformed, or empty
//     tokens are rejected with 401 before the verifier is ever called.
//  2. Verify the token. A definitive rejection maps to 401; a verifier
//     failure (provider unreachable) surfaces as 500, never silently.
//  3. On success, inject [*sec.Identity] into the request context and call
//     the next handler exactly once.
func RequireAuth(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			token, ok := bearerToken(request)
			if !ok {
				respond.Error(writer, request, apperr.Unauthorized("Authentication required. Please log in."))
				return
			}

			identity, err := verifier.VerifyToken(request.Context(), token)
			if err != nil {
				if ae := apperr.As(err); ae != nil && ae.HTTPStatus >= 500 {
					respond.Error(writer, request, err)
					return
				}
				respond.Error(writer, request, apperr.Unauthorized("Invalid or expired token. Please log in again."))
				return
			}
			if identity == nil {
				respond.Error(writer, request, apperr.Unauthorized("User not found"))
				return
			}

			ctx := ctxutil.WithIdentity(request.Context(), identity)
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

// OptionalAuth attaches an identity when a valid bearer token is present,
// and otherwise lets the request proceed as anonymous.
//
// # Contract
//
// This middleware never rejects: missing headers, malformed schemes, and
// verification failures of any kind all degrade to an absent identity.
// The next handler is always called exactly once.
func OptionalAuth(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			token, ok := bearerToken(request)
			if !ok {
				next.ServeHTTP(writer, request)
				return
			}

			identity, err := verifier.VerifyToken(request.Context(), token)
			if err != nil || identity == nil {
				ctxutil.GetLogger(request.Context()).DebugContext(request.Context(),
					"optional_auth_anonymous", slog.Any("error", err))
				next.ServeHTTP(writer, request)
				return
			}

			ctx := ctxutil.WithIdentity(request.Context(), identity)
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

// RequireRole blocks requests whose identity's role is not in the accepted set.
//
// # Usage
//
// Must be registered AFTER [RequireAuth]. An absent identity is a 401 (the
// gate ran without authentication), a present identity with a role outside
// the set is a 403. A missing role on the identity defaults to "user".
func RequireRole(roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			identity := ctxutil.GetIdentity(request.Context())
			if identity == nil {
				respond.Error(writer, request, apperr.Unauthorized("Authentication required"))
				return
			}

			if !slices.Contains(roles, identity.RoleOrDefault()) {
				respond.Error(writer, request, apperr.Forbidden(
					"Access denied. Required role: "+strings.Join(roles, " or ")))
				return
			}

			next.ServeHTTP(writer, request)
		})
	}
}

// RequireAdmin composes [RequireAuth] with a hard-coded admin role check.
//
// Authentication failures inside the composition still surface as 401, not
// as some other shape, so clients can treat the endpoint uniformly.
func RequireAdmin(verifier TokenVerifier) func(http.Handler) http.Handler {
	requireAuth := RequireAuth(verifier)
	requireAdminRole := RequireRole(sec.RoleAdmin)
	return func(next http.Handler) http.Handler {
		return requireAuth(requireAdminRole(next))
	}
}
