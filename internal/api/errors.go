package api

import (
	"errors"
	"net/http"

	"github.com/askary/studyaid-api/internal/domain"
	"github.com/askary/studyaid-api/internal/generation"
)

// Client-facing messages for validation failures. These are part of the
// endpoint contract.
const (
	EmptyTextMessage    = "Empty text."
	EmptyContentMessage = "Empty content."
)

// MapErrorToStatusCode maps service errors to HTTP status codes.
// Validation failures never reached the provider and are the caller's
// fault; everything else (configuration, transport, provider-semantic,
// recovery) is reported as a server-side failure.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, domain.ErrEmptyText),
		errors.Is(err, domain.ErrEmptyContent):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns the client-facing message for a service
// error. Generation errors carry their own surfaceable message,
// including provider-supplied error text passed through the gateway.
func GetSafeErrorMessage(err error) string {
	var genErr *generation.Error

	switch {
	case errors.Is(err, domain.ErrEmptyText):
		return EmptyTextMessage
	case errors.Is(err, domain.ErrEmptyContent):
		return EmptyContentMessage
	case errors.As(err, &genErr):
		return genErr.Message
	default:
		return "An unexpected error occurred"
	}
}
