package openrouter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/mohammadsarwary/anki-ai-service/internal/config"
	"github.com/mohammadsarwary/anki-ai-service/internal/generation"
)

// systemPrompt pins the model to JSON-only output regardless of what the
// user prompt asks for.
const systemPrompt = "You are a JSON API. You MUST respond with ONLY valid JSON. " +
	"No thinking, no reasoning, no explanation."

// Client implements generation.Client against any OpenAI-compatible
// chat-completions gateway (OpenRouter, Cerebras, and the like). The
// gateway is selected by base URL; the wire protocol is identical.
type Client struct {
	logger *slog.Logger
	client *openai.Client
	model  string

	maxTokens int
	timeout   time.Duration
}

// headerTransport injects the attribution headers OpenRouter expects
// (HTTP-Referer, X-Title) into every outbound request.
type headerTransport struct {
	base    http.RoundTripper
	referer string
	title   string
}

func (t *headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.referer != "" {
		req.Header.Set("HTTP-Referer", t.referer)
	}
	if t.title != "" {
		req.Header.Set("X-Title", t.title)
	}
	return t.base.RoundTrip(req)
}

// New creates an OpenRouter-backed client from the given configuration.
func New(logger *slog.Logger, cfg config.OpenRouterConfig, timeout time.Duration, maxTokens int) (*Client, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: openrouter API key cannot be empty", generation.ErrInvalidConfig)
	}
	if cfg.Model == "" {
		return nil, fmt.Errorf("%w: openrouter model name cannot be empty", generation.ErrInvalidConfig)
	}

	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	clientCfg.HTTPClient = &http.Client{
		Transport: &headerTransport{
			base:    http.DefaultTransport,
			referer: cfg.Referer,
			title:   cfg.SiteTitle,
		},
	}

	return &Client{
		logger:    logger,
		client:    openai.NewClientWithConfig(clientCfg),
		model:     cfg.Model,
		maxTokens: maxTokens,
		timeout:   timeout,
	}, nil
}

// Complete sends the prompt as a single-turn chat completion and returns
// the model's raw reply with surrounding whitespace stripped.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	c.logger.DebugContext(ctx, "dispatching prompt to openrouter",
		"model", c.model,
		"prompt_length", len(prompt))

	req := openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		MaxTokens: c.maxTokens,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	}

	resp, err := c.client.CreateChatCompletion(ctx, req)
	if err != nil {
		c.logger.ErrorContext(ctx, "openrouter call failed", "error", err)
		return "", mapError(err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices in completion", generation.ErrProviderUnavailable)
	}

	raw := strings.TrimSpace(resp.Choices[0].Message.Content)
	c.logger.DebugContext(ctx, "openrouter reply received",
		"model", resp.Model,
		"raw_response", raw)

	return raw, nil
}

// ModelID returns the configured model name.
func (c *Client) ModelID() string {
	return c.model
}

// mapError translates go-openai failures onto the generation sentinels.
func mapError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) && apiErr.HTTPStatusCode == http.StatusTooManyRequests {
		return fmt.Errorf("%w: %v", generation.ErrRateLimited, err)
	}
	return fmt.Errorf("%w: %v", generation.ErrProviderUnavailable, err)
}
