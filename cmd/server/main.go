// Package main implements the entry point for the anki-ai-service
// gateway, which turns authenticated flashcard requests into LLM
// provider calls and validated card JSON.
package main

import (
	"context"
	"log"
	"log/slog"

	"github.com/joho/godotenv"

	"github.com/mohammadsarwary/anki-ai-service/internal/config"
	"github.com/mohammadsarwary/anki-ai-service/internal/platform/logger"
)

func main() {
	// A missing .env file is fine; real deployments configure through
	// the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Setup(cfg.Server)

	ctx := context.Background()
	app, err := newApplication(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	slog.Info("configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"provider", cfg.LLM.Provider,
		"model", app.generator.ModelID())

	if err := app.startHTTPServer(ctx, app.setupRouter()); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
