// Package auth verifies bearer tokens against the upstream identity
// service. The gateway issues no tokens of its own; every request is
// checked remotely and the resulting identity is attached to the request
// context by the API middleware.
package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/mohammadsarwary/anki-ai-service/internal/config"
	"github.com/mohammadsarwary/anki-ai-service/internal/generation"
)

// Identity describes the authenticated user as reported by the identity
// service.
type Identity struct {
	UserID int64  `json:"user_id"`
	Email  string `json:"email"`
}

// Verifier checks a bearer token and returns the identity it belongs to.
type Verifier interface {
	Verify(ctx context.Context, token string) (*Identity, error)
}

// RemoteVerifier verifies tokens by calling the identity service's
// verify-token endpoint.
type RemoteVerifier struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewRemoteVerifier creates a RemoteVerifier from the auth configuration.
func NewRemoteVerifier(cfg config.AuthConfig, logger *slog.Logger) (*RemoteVerifier, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("%w: auth base URL cannot be empty", generation.ErrInvalidConfig)
	}
	if logger == nil {
		return nil, fmt.Errorf("%w: logger cannot be nil", generation.ErrInvalidConfig)
	}
	return &RemoteVerifier{
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: cfg.Timeout()},
		logger:     logger.With(slog.String("component", "auth_verifier")),
	}, nil
}

// Verify calls the identity service with the token in an Authorization
// header. Any transport failure, non-200 status or undecodable body is
// reported as ErrInvalidToken so the caller cannot distinguish a forged
// token from an unreachable verifier.
func (v *RemoteVerifier) Verify(ctx context.Context, token string) (*Identity, error) {
	if token == "" {
		return nil, ErrEmptyToken
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, v.baseURL+"/api/auth/verify-token", nil)
	if err != nil {
		return nil, fmt.Errorf("%w: building verify request: %v", ErrInvalidToken, err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	resp, err := v.httpClient.Do(req)
	if err != nil {
		v.logger.WarnContext(ctx, "identity service unreachable",
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("%w: identity service unreachable", ErrInvalidToken)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: identity service returned status %d", ErrInvalidToken, resp.StatusCode)
	}

	var identity Identity
	if err := json.NewDecoder(resp.Body).Decode(&identity); err != nil {
		return nil, fmt.Errorf("%w: decoding identity response: %v", ErrInvalidToken, err)
	}
	return &identity, nil
}
