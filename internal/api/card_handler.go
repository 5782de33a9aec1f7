package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/mohammadsarwary/anki-ai-service/internal/api/shared"
	"github.com/mohammadsarwary/anki-ai-service/internal/domain"
)

// Generator defines the generation operations the handlers depend on.
// *service.GenerationService satisfies it.
type Generator interface {
	GenerateCard(
		ctx context.Context,
		term, language, targetLanguage string,
		level domain.Level,
	) (*domain.FlashCard, error)

	GenerateCardsFromTopic(
		ctx context.Context,
		topic string,
		count int,
		level domain.Level,
		language, targetLanguage string,
	) ([]domain.FlashCard, error)

	GeneratePracticeSentence(
		ctx context.Context,
		targetWord, userSentence, language string,
	) (*domain.PracticeEvaluation, error)
}

// CardHandler handles flashcard generation HTTP requests.
type CardHandler struct {
	generator Generator
	logger    *slog.Logger
}

// NewCardHandler creates a new CardHandler.
func NewCardHandler(generator Generator, logger *slog.Logger) *CardHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for CardHandler")
	}
	if generator == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("generator cannot be nil for CardHandler")
	}

	return &CardHandler{
		generator: generator,
		logger:    logger.With(slog.String("component", "card_handler")),
	}
}

// GenerateCard handles POST /generate-flashcards requests. It produces a
// single flashcard for the requested term.
func (h *CardHandler) GenerateCard(w http.ResponseWriter, r *http.Request) {
	var req GenerateCardRequest
	if err := shared.DecodeAndValidate(r, &req); err != nil {
		shared.RespondWithValidationError(w, r, err)
		return
	}

	card, err := h.generator.GenerateCard(r.Context(), req.Term, req.Language, req.TargetLanguage, req.Level)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, card)
}

// GenerateFromTopic handles POST /generate-from-topic requests. It produces
// a batch of flashcards covering the requested topic.
func (h *CardHandler) GenerateFromTopic(w http.ResponseWriter, r *http.Request) {
	var req GenerateFromTopicRequest
	if err := shared.DecodeAndValidate(r, &req); err != nil {
		shared.RespondWithValidationError(w, r, err)
		return
	}

	cards, err := h.generator.GenerateCardsFromTopic(
		r.Context(), req.Topic, req.Count, req.Level, req.Language, req.TargetLanguage)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	if cards == nil {
		cards = []domain.FlashCard{}
	}
	shared.RespondWithJSON(w, r, http.StatusOK, TopicCardsResponse{Cards: cards})
}
