package api

import "github.com/askary/studyaid-api/internal/domain"

// FlashcardsRequest represents the request body for flashcard
// generation.
type FlashcardsRequest struct {
	Text string `json:"text" validate:"required"`
}

// FlashcardsResponse represents a successful flashcard generation.
// Cached reports whether the cards came from the fingerprint cache.
type FlashcardsResponse struct {
	OK     bool               `json:"ok"`
	Cards  []domain.Flashcard `json:"cards"`
	Cached bool               `json:"cached"`
}

// MetaRequest represents the request body for meta-description
// generation. Title is optional context; Content is required.
type MetaRequest struct {
	Title   string `json:"title"`
	Content string `json:"content" validate:"required"`
}

// MetaResponse represents a successful meta-description generation.
// ReadingEase is the Flesch Reading Ease score of the submitted
// content.
type MetaResponse struct {
	OK          bool    `json:"ok"`
	Meta        string  `json:"meta"`
	ReadingEase float64 `json:"readingEase"`
}
