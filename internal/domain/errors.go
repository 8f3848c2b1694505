package domain

import "errors"

// Validation errors surfaced before any provider call is attempted.
var (
	// ErrEmptyText is returned when flashcard source text is empty
	// after markup stripping.
	ErrEmptyText = errors.New("empty text")

	// ErrEmptyContent is returned when meta-description content is
	// empty after markup stripping.
	ErrEmptyContent = errors.New("empty content")
)
