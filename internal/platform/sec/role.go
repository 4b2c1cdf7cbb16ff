// Copyright (c) 2026 Lemraya. All rights reserved.

package sec

// # User Roles

// Roles are flat labels assigned by the hosted auth provider; access checks
// are set membership, not a hierarchy.
const (
	// Unrestricted access to management endpoints
	RoleAdmin = "admin"

	// Default role for standard registered users
	RoleUser = "user"
)
