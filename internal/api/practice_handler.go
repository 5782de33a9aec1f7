package api

import (
	"log/slog"
	"net/http"

	"github.com/mohammadsarwary/anki-ai-service/internal/api/shared"
)

// PracticeHandler handles practice sentence evaluation HTTP requests.
type PracticeHandler struct {
	generator Generator
	logger    *slog.Logger
}

// NewPracticeHandler creates a new PracticeHandler.
func NewPracticeHandler(generator Generator, logger *slog.Logger) *PracticeHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for PracticeHandler")
	}
	if generator == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("generator cannot be nil for PracticeHandler")
	}

	return &PracticeHandler{
		generator: generator,
		logger:    logger.With(slog.String("component", "practice_handler")),
	}
}

// Evaluate handles POST /generate-practice-sentence requests. It scores a
// learner-written sentence that uses the target word.
func (h *PracticeHandler) Evaluate(w http.ResponseWriter, r *http.Request) {
	var req GeneratePracticeRequest
	if err := shared.DecodeAndValidate(r, &req); err != nil {
		shared.RespondWithValidationError(w, r, err)
		return
	}

	eval, err := h.generator.GeneratePracticeSentence(r.Context(), req.TargetWord, req.UserSentence, req.Language)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, eval)
}
