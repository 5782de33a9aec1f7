package api

import (
	"errors"
	"net/http"

	"github.com/mohammadsarwary/anki-ai-service/internal/generation"
	"github.com/mohammadsarwary/anki-ai-service/internal/service/auth"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status
// codes. This keeps internal error types and messages out of responses.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrEmptyToken):
		return http.StatusUnauthorized

	case errors.Is(err, generation.ErrRateLimited):
		return http.StatusTooManyRequests

	case errors.Is(err, generation.ErrProviderUnavailable),
		errors.Is(err, generation.ErrInvalidResponse):
		return http.StatusBadGateway

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-facing message for the
// given error.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrEmptyToken):
		return "Invalid token"

	case errors.Is(err, generation.ErrRateLimited):
		return "AI provider rate limit exceeded, please retry later"

	case errors.Is(err, generation.ErrInvalidResponse):
		return "AI provider returned an unusable response"

	case errors.Is(err, generation.ErrProviderUnavailable):
		return "AI provider is unavailable"

	default:
		return "An unexpected error occurred"
	}
}
