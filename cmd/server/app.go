package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mohammadsarwary/anki-ai-service/internal/config"
	"github.com/mohammadsarwary/anki-ai-service/internal/generation"
	"github.com/mohammadsarwary/anki-ai-service/internal/platform/gemini"
	"github.com/mohammadsarwary/anki-ai-service/internal/platform/openrouter"
	"github.com/mohammadsarwary/anki-ai-service/internal/service"
	"github.com/mohammadsarwary/anki-ai-service/internal/service/auth"
)

// application holds the wired dependencies of the running server.
type application struct {
	config    *config.Config
	logger    *slog.Logger
	generator generation.Client
	service   *service.GenerationService
	verifier  auth.Verifier
}

// newApplication builds the dependency graph: provider client, generation
// service and token verifier, all from the loaded configuration.
func newApplication(ctx context.Context, cfg *config.Config) (*application, error) {
	log := slog.Default()

	client, err := newProviderClient(ctx, log, cfg)
	if err != nil {
		return nil, fmt.Errorf("creating provider client: %w", err)
	}

	svc, err := service.NewGenerationService(client, log)
	if err != nil {
		return nil, fmt.Errorf("creating generation service: %w", err)
	}

	verifier, err := auth.NewRemoteVerifier(cfg.Auth, log)
	if err != nil {
		return nil, fmt.Errorf("creating token verifier: %w", err)
	}

	return &application{
		config:    cfg,
		logger:    log,
		generator: client,
		service:   svc,
		verifier:  verifier,
	}, nil
}

// newProviderClient selects the provider implementation named in the
// configuration. Config validation has already checked that the selected
// provider carries an API key.
func newProviderClient(ctx context.Context, log *slog.Logger, cfg *config.Config) (generation.Client, error) {
	timeout := cfg.LLM.LLMTimeout()

	switch cfg.LLM.Provider {
	case config.ProviderGemini:
		return gemini.New(ctx, log, cfg.LLM.Gemini, timeout, cfg.LLM.MaxTokens)
	case config.ProviderOpenRouter:
		return openrouter.New(log, cfg.LLM.OpenRouter, timeout, cfg.LLM.MaxTokens)
	default:
		return nil, fmt.Errorf("%w: unknown provider %q", generation.ErrInvalidConfig, cfg.LLM.Provider)
	}
}
