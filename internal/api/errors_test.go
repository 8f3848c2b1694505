package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/askary/studyaid-api/internal/domain"
	"github.com/askary/studyaid-api/internal/generation"
)

func TestMapErrorToStatusCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{
			name:     "empty text is a client error",
			err:      domain.ErrEmptyText,
			expected: http.StatusBadRequest,
		},
		{
			name:     "empty content is a client error",
			err:      domain.ErrEmptyContent,
			expected: http.StatusBadRequest,
		},
		{
			name:     "wrapped validation error keeps its status",
			err:      fmt.Errorf("generating: %w", domain.ErrEmptyText),
			expected: http.StatusBadRequest,
		},
		{
			name:     "configuration failure is a server error",
			err:      generation.NewError(generation.KindConfiguration, "Missing API key."),
			expected: http.StatusInternalServerError,
		},
		{
			name:     "transport failure is a server error",
			err:      generation.NewError(generation.KindTransport, "timeout"),
			expected: http.StatusInternalServerError,
		},
		{
			name:     "recovery failure is a server error",
			err:      generation.NewError(generation.KindRecovery, generation.MalformedResponseMessage),
			expected: http.StatusInternalServerError,
		},
		{
			name:     "unknown error is a server error",
			err:      errors.New("boom"),
			expected: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MapErrorToStatusCode(tt.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "empty text",
			err:      domain.ErrEmptyText,
			expected: EmptyTextMessage,
		},
		{
			name:     "empty content",
			err:      domain.ErrEmptyContent,
			expected: EmptyContentMessage,
		},
		{
			name:     "generation error surfaces its message",
			err:      generation.NewError(generation.KindProvider, "Incorrect API key provided"),
			expected: "Incorrect API key provided",
		},
		{
			name:     "unknown error is sanitized",
			err:      errors.New("pq: relation does not exist"),
			expected: "An unexpected error occurred",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetSafeErrorMessage(tt.err))
		})
	}
}
