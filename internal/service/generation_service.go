package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/mohammadsarwary/anki-ai-service/internal/domain"
	"github.com/mohammadsarwary/anki-ai-service/internal/generation"
	"github.com/mohammadsarwary/anki-ai-service/internal/generation/normalize"
	"github.com/mohammadsarwary/anki-ai-service/internal/generation/prompt"
	"github.com/mohammadsarwary/anki-ai-service/internal/redact"
)

// GenerationService coordinates prompt construction, the provider call and
// response normalization for all generation operations.
type GenerationService struct {
	client generation.Client
	logger *slog.Logger
}

// NewGenerationService creates a GenerationService backed by the given
// provider client. Returns an error if any dependency is nil.
func NewGenerationService(client generation.Client, logger *slog.Logger) (*GenerationService, error) {
	if client == nil {
		return nil, fmt.Errorf("%w: client cannot be nil", generation.ErrInvalidConfig)
	}
	if logger == nil {
		return nil, fmt.Errorf("%w: logger cannot be nil", generation.ErrInvalidConfig)
	}
	return &GenerationService{
		client: client,
		logger: logger.With(slog.String("component", "generation_service")),
	}, nil
}

// GenerateCard produces a single flashcard for the given term. The term
// itself stays in the source language; the back fields are written in the
// target language per the prompt contract.
func (s *GenerationService) GenerateCard(
	ctx context.Context,
	term, language, targetLanguage string,
	level domain.Level,
) (*domain.FlashCard, error) {
	start := time.Now()
	p := prompt.Card(term, language, targetLanguage, level)

	raw, err := s.client.Complete(ctx, p)
	if err != nil {
		s.logFailure(ctx, "generate_card", err)
		return nil, err
	}

	card, err := normalize.Card(raw, term)
	if err != nil {
		s.logFailure(ctx, "generate_card", err)
		return nil, err
	}

	s.logger.InfoContext(ctx, "card generated",
		slog.String("operation", "generate_card"),
		slog.String("model", s.client.ModelID()),
		slog.Duration("duration", time.Since(start)))
	return card, nil
}

// GenerateCardsFromTopic produces a batch of flashcards for a topic. The
// returned slice may hold fewer cards than requested when the model comes
// up short; callers get whatever parsed successfully.
func (s *GenerationService) GenerateCardsFromTopic(
	ctx context.Context,
	topic string,
	count int,
	level domain.Level,
	language, targetLanguage string,
) ([]domain.FlashCard, error) {
	start := time.Now()
	p := prompt.Topic(topic, count, level, language, targetLanguage)

	raw, err := s.client.Complete(ctx, p)
	if err != nil {
		s.logFailure(ctx, "generate_from_topic", err)
		return nil, err
	}

	cards, err := normalize.Cards(raw)
	if err != nil {
		s.logFailure(ctx, "generate_from_topic", err)
		return nil, err
	}

	s.logger.InfoContext(ctx, "topic batch generated",
		slog.String("operation", "generate_from_topic"),
		slog.String("model", s.client.ModelID()),
		slog.Int("requested", count),
		slog.Int("returned", len(cards)),
		slog.Duration("duration", time.Since(start)))
	return cards, nil
}

// GeneratePracticeSentence evaluates a user-written sentence that uses the
// target word and returns structured feedback.
func (s *GenerationService) GeneratePracticeSentence(
	ctx context.Context,
	targetWord, userSentence, language string,
) (*domain.PracticeEvaluation, error) {
	start := time.Now()
	p := prompt.Practice(targetWord, userSentence, language)

	raw, err := s.client.Complete(ctx, p)
	if err != nil {
		s.logFailure(ctx, "generate_practice_sentence", err)
		return nil, err
	}

	eval, err := normalize.Practice(raw)
	if err != nil {
		s.logFailure(ctx, "generate_practice_sentence", err)
		return nil, err
	}

	s.logger.InfoContext(ctx, "practice sentence evaluated",
		slog.String("operation", "generate_practice_sentence"),
		slog.String("model", s.client.ModelID()),
		slog.Int("naturalness_score", eval.NaturalnessScore),
		slog.Duration("duration", time.Since(start)))
	return eval, nil
}

func (s *GenerationService) logFailure(ctx context.Context, operation string, err error) {
	s.logger.ErrorContext(ctx, "generation failed",
		slog.String("operation", operation),
		slog.String("model", s.client.ModelID()),
		slog.String("error", redact.Error(err)))
}
