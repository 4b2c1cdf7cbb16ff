// Copyright (c) 2026 Lemraya. All rights reserved.

// Package sec provides the request identity model and token verification.
//
// # Architecture
//
// This package isolates security-sensitive code from the domain logic.
// Identity is reconstructed on every request from a bearer token issued by
// the hosted auth provider; nothing here is ever persisted by this service.
// Two verifier implementations exist:
//
//   - [JWTVerifier]: validates the provider's HS256 access tokens locally
//     with the shared signing secret (no network round trip).
//   - [RemoteVerifier]: asks the provider's user endpoint to resolve the
//     token when no signing secret is configured.
//
// Both satisfy the middleware's TokenVerifier interface.
package sec

import "time"

// Identity is the per-request view of the authenticated user.
//
// It is constructed fresh from a verified token on each request and
// discarded at response time.
type Identity struct {
	ID        string         `json:"id"`
	Email     string         `json:"email"`
	Role      string         `json:"role"`
	Metadata  map[string]any `json:"metadata,omitempty"`
	CreatedAt time.Time      `json:"created_at,omitzero"`
}

// RoleOrDefault returns the identity's role, falling back to [RoleUser]
// when the provider issued a token without one.
func (id *Identity) RoleOrDefault() string {
	if id.Role == "" {
		return RoleUser
	}
	return id.Role
}
