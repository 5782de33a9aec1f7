package gemini

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"github.com/mohammadsarwary/anki-ai-service/internal/config"
	"github.com/mohammadsarwary/anki-ai-service/internal/generation"
)

func TestNew_ValidatesConfig(t *testing.T) {
	t.Parallel()

	logger := slog.Default()

	tests := []struct {
		name   string
		logger *slog.Logger
		cfg    config.GeminiConfig
	}{
		{
			name:   "nil_logger",
			logger: nil,
			cfg:    config.GeminiConfig{APIKey: "key", Model: "gemini-2.0-flash"},
		},
		{
			name:   "missing_api_key",
			logger: logger,
			cfg:    config.GeminiConfig{Model: "gemini-2.0-flash"},
		},
		{
			name:   "missing_model",
			logger: logger,
			cfg:    config.GeminiConfig{APIKey: "key"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			client, err := New(context.Background(), tc.logger, tc.cfg, 30*time.Second, 2000)
			require.Error(t, err)
			assert.Nil(t, client)
		})
	}
}

func TestMapError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		expected error
	}{
		{
			name:     "rate_limit",
			err:      genai.APIError{Code: 429, Message: "quota exceeded"},
			expected: generation.ErrRateLimited,
		},
		{
			name:     "server_error",
			err:      genai.APIError{Code: 500, Message: "internal"},
			expected: generation.ErrProviderUnavailable,
		},
		{
			name:     "plain_transport_error",
			err:      errors.New("connection refused"),
			expected: generation.ErrProviderUnavailable,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, mapError(tc.err), tc.expected)
		})
	}
}
