package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/askary/studyaid-api/internal/api"
	apiMiddleware "github.com/askary/studyaid-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all
// routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	studyHandler := api.NewStudyHandler(app.studyService, app.logger)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.config.Auth)

	r.Route("/api/v1", func(r chi.Router) {
		// Generation endpoints require an edit-scoped platform token.
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.RequireEditScope)
			r.Post("/flashcards", studyHandler.GenerateFlashcards)
			r.Post("/meta", studyHandler.GenerateMeta)
		})
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
