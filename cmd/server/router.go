package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/mohammadsarwary/anki-ai-service/internal/api"
	apiMiddleware "github.com/mohammadsarwary/anki-ai-service/internal/api/middleware"
	"github.com/mohammadsarwary/anki-ai-service/internal/api/shared"
)

// setupRouter creates the application router with all routes and
// middleware wired to the application's services.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	cardHandler := api.NewCardHandler(app.service, app.logger)
	practiceHandler := api.NewPracticeHandler(app.service, app.logger)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.verifier)

	r.Route("/api/v1", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)
			r.Post("/generate-flashcards", cardHandler.GenerateCard)
			r.Post("/generate-from-topic", cardHandler.GenerateFromTopic)
			r.Post("/generate-practice-sentence", practiceHandler.Evaluate)
		})
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithJSON(w, r, http.StatusOK, api.HealthResponse{Status: "ok"})
	})

	return r
}
