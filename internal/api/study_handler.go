package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/askary/studyaid-api/internal/api/shared"
	"github.com/askary/studyaid-api/internal/service"
)

// GenerationService defines the service operations the handlers depend
// on. The concrete implementation is service.StudyService; tests supply
// a stub.
type GenerationService interface {
	GenerateFlashcards(ctx context.Context, text string) (*service.FlashcardResult, error)
	GenerateMetaDescription(ctx context.Context, title, content string) (*service.MetaResult, error)
}

// StudyHandler handles the generation HTTP requests.
type StudyHandler struct {
	service   GenerationService
	validator *validator.Validate
	logger    *slog.Logger
}

// NewStudyHandler creates a new StudyHandler.
func NewStudyHandler(svc GenerationService, logger *slog.Logger) *StudyHandler {
	return &StudyHandler{
		service:   svc,
		validator: validator.New(),
		logger:    logger,
	}
}

// GenerateFlashcards handles POST /api/v1/flashcards requests.
func (h *StudyHandler) GenerateFlashcards(w http.ResponseWriter, r *http.Request) {
	var req FlashcardsRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	// The only validatable field is the text itself, so a tag failure
	// and a blank-after-stripping failure read the same to the caller.
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, EmptyTextMessage)
		return
	}

	result, err := h.service.GenerateFlashcards(r.Context(), req.Text)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "flashcard generation failed", "error", err)
		shared.RespondWithError(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err))
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, FlashcardsResponse{
		OK:     true,
		Cards:  result.Cards,
		Cached: result.Cached,
	})
}

// GenerateMeta handles POST /api/v1/meta requests.
func (h *StudyHandler) GenerateMeta(w http.ResponseWriter, r *http.Request) {
	var req MetaRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, EmptyContentMessage)
		return
	}

	result, err := h.service.GenerateMetaDescription(r.Context(), req.Title, req.Content)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "meta description generation failed", "error", err)
		shared.RespondWithError(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err))
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, MetaResponse{
		OK:          true,
		Meta:        result.Description,
		ReadingEase: result.ReadingEase,
	})
}
