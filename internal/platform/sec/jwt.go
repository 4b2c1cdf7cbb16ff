// Copyright (c) 2026 Lemraya. All rights reserved.

package sec

import (
	"context"
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/lemraya/lemraya-api/internal/platform/apperr"
)

// accessClaims mirrors the payload of the hosted provider's access tokens.
type accessClaims struct {
	jwt.RegisteredClaims

	Email        string         `json:"email"`
	Role         string         `json:"role"`
	UserMetadata map[string]any `json:"user_metadata"`
}

// JWTVerifier validates provider-issued HS256 access tokens locally using
// the project's shared signing secret.
//
// Local validation avoids a network round trip per request; the trade-off is
// that revocation is only observed once the token expires.
type JWTVerifier struct {
	secret []byte
}

// NewJWTVerifier creates a verifier from the provider's JWT signing secret.
func NewJWTVerifier(secret string) (*JWTVerifier, error) {
	if secret == "" {
		return nil, fmt.Errorf("sec: jwt signing secret is empty")
	}
	return &JWTVerifier{secret: []byte(secret)}, nil
}

// VerifyToken checks the signature and validity of a token string and
// returns the identity embedded in its claims.
//
// Invalid or expired tokens yield an UNAUTHORIZED error; the caller decides
// whether that is fatal (required auth) or not (optional auth).
func (verifier *JWTVerifier) VerifyToken(_ context.Context, tokenString string) (*Identity, error) {
	token, err := jwt.ParseWithClaims(tokenString, &accessClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("sec: unexpected signing method: %v", token.Header["alg"])
		}
		return verifier.secret, nil
	})
	if err != nil {
		return nil, apperr.Unauthorized("Invalid or expired token. Please log in again.")
	}

	claims, ok := token.Claims.(*accessClaims)
	if !ok || !token.Valid {
		return nil, apperr.Unauthorized("Invalid or expired token. Please log in again.")
	}

	identity := &Identity{
		ID:       claims.Subject,
		Email:    claims.Email,
		Role:     claims.Role,
		Metadata: claims.UserMetadata,
	}
	if claims.IssuedAt != nil {
		identity.CreatedAt = claims.IssuedAt.Time
	}

	return identity, nil
}
