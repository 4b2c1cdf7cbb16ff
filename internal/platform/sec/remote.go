// Copyright (c) 2026 Lemraya. All rights reserved.

package sec

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/lemraya/lemraya-api/internal/platform/apperr"
)

// verifyTimeout bounds the round trip to the auth provider so a hung
// upstream cannot hang the request.
const verifyTimeout = 10 * time.Second

// RemoteVerifier resolves bearer tokens by calling the hosted auth
// provider's user endpoint, the same operation the frontend SDK performs.
type RemoteVerifier struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewRemoteVerifier creates a verifier for the provider at baseURL.
// apiKey is the project's public API key, sent alongside the user's token.
func NewRemoteVerifier(baseURL, apiKey string) (*RemoteVerifier, error) {
	if baseURL == "" || apiKey == "" {
		return nil, fmt.Errorf("sec: auth provider URL and API key are required")
	}
	return &RemoteVerifier{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		client:  &http.Client{Timeout: verifyTimeout},
	}, nil
}

// remoteUser mirrors the provider's user resource.
type remoteUser struct {
	ID           string         `json:"id"`
	Email        string         `json:"email"`
	Role         string         `json:"role"`
	UserMetadata map[string]any `json:"user_metadata"`
	CreatedAt    time.Time      `json:"created_at"`
}

// VerifyToken resolves the token to an identity via the provider.
//
// A definitive rejection from the provider (401/403) maps to UNAUTHORIZED;
// transport failures and unexpected statuses map to INTERNAL_ERROR so the
// middleware can distinguish "bad token" from "provider unreachable".
func (verifier *RemoteVerifier) VerifyToken(ctx context.Context, tokenString string) (*Identity, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, verifier.baseURL+"/auth/v1/user", nil)
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("sec: build verify request: %w", err))
	}
	request.Header.Set("Authorization", "Bearer "+tokenString)
	request.Header.Set("apikey", verifier.apiKey)

	response, err := verifier.client.Do(request)
	if err != nil {
		return nil, apperr.InternalMessage("Failed to verify authentication", fmt.Errorf("sec: verify token: %w", err))
	}
	defer response.Body.Close()

	switch {
	case response.StatusCode == http.StatusUnauthorized || response.StatusCode == http.StatusForbidden:
		return nil, apperr.Unauthorized("Invalid or expired token. Please log in again.")
	case response.StatusCode != http.StatusOK:
		return nil, apperr.InternalMessage("Failed to verify authentication",
			fmt.Errorf("sec: auth provider returned status %d", response.StatusCode))
	}

	var user remoteUser
	if err := json.NewDecoder(response.Body).Decode(&user); err != nil {
		return nil, apperr.InternalMessage("Failed to verify authentication", fmt.Errorf("sec: decode user: %w", err))
	}
	if user.ID == "" {
		return nil, apperr.Unauthorized("User not found")
	}

	return &Identity{
		ID:        user.ID,
		Email:     user.Email,
		Role:      user.Role,
		Metadata:  user.UserMetadata,
		CreatedAt: user.CreatedAt,
	}, nil
}
