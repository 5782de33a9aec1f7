package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/mohammadsarwary/anki-ai-service/internal/config"
	"github.com/mohammadsarwary/anki-ai-service/internal/generation"
)

// Client implements generation.Client against the Gemini API directly.
// A single instance holds one long-lived genai client and is safe for
// concurrent use.
type Client struct {
	logger *slog.Logger
	client *genai.Client
	model  string

	maxOutputTokens int32
	timeout         time.Duration
}

// New creates a Gemini-backed client from the given configuration.
func New(ctx context.Context, logger *slog.Logger, cfg config.GeminiConfig, timeout time.Duration, maxTokens int) (*Client, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: gemini API key cannot be empty", generation.ErrInvalidConfig)
	}
	if cfg.Model == "" {
		return nil, fmt.Errorf("%w: gemini model name cannot be empty", generation.ErrInvalidConfig)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create gemini client: %v", generation.ErrInvalidConfig, err)
	}

	return &Client{
		logger:          logger,
		client:          client,
		model:           cfg.Model,
		maxOutputTokens: int32(maxTokens),
		timeout:         timeout,
	}, nil
}

// Complete sends the prompt and returns the model's raw reply with
// surrounding whitespace stripped.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	c.logger.DebugContext(ctx, "dispatching prompt to gemini",
		"model", c.model,
		"prompt_length", len(prompt))

	contents := []*genai.Content{
		{Role: "user", Parts: []*genai.Part{{Text: prompt}}},
	}
	cfg := &genai.GenerateContentConfig{
		MaxOutputTokens: c.maxOutputTokens,
	}

	result, err := c.client.Models.GenerateContent(ctx, c.model, contents, cfg)
	if err != nil {
		c.logger.ErrorContext(ctx, "gemini call failed", "error", err)
		return "", mapError(err)
	}

	raw := strings.TrimSpace(result.Text())
	c.logger.DebugContext(ctx, "gemini reply received",
		"model", c.model,
		"raw_response", raw)

	return raw, nil
}

// ModelID returns the configured model name.
func (c *Client) ModelID() string {
	return c.model
}

// mapError translates genai failures onto the generation sentinels.
// Anything that is not an explicit rate limit collapses to
// ErrProviderUnavailable.
func mapError(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) && apiErr.Code == http.StatusTooManyRequests {
		return fmt.Errorf("%w: %v", generation.ErrRateLimited, err)
	}
	return fmt.Errorf("%w: %v", generation.ErrProviderUnavailable, err)
}
