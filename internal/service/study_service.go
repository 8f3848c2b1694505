package service

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/askary/studyaid-api/internal/cache"
	"github.com/askary/studyaid-api/internal/domain"
	"github.com/askary/studyaid-api/internal/generation"
	"github.com/askary/studyaid-api/internal/readability"
)

// System instructions sent ahead of the user text. The flashcard
// instruction demands a bare JSON array so responses can be parsed
// directly; recovery handles models that add preamble anyway.
const (
	flashcardSystemPrompt = `You generate exactly 5 flashcards. Output pure JSON: [{"q":"...", "a":"..."}]. No preamble.`
	metaSystemPrompt      = `Write a compelling meta description (<= 155 chars). No quotes.`
)

// metaTemperature is slightly higher than the provider default for more
// varied phrasing.
const metaTemperature = 0.4

// FlashcardResult is the outcome of a flashcard generation: the pairs
// in model order and whether they were served from the cache.
type FlashcardResult struct {
	Cards  []domain.Flashcard
	Cached bool
}

// MetaResult is the outcome of a meta-description generation.
type MetaResult struct {
	Description string
	ReadingEase float64
}

// StudyService orchestrates the generation endpoints: it validates
// input, consults the fingerprint cache, builds prompts, invokes the
// provider, applies response recovery, and stores successful results.
type StudyService struct {
	provider generation.Provider
	cache    cache.Cache
	cacheTTL time.Duration
	logger   *slog.Logger
}

// NewStudyService creates a StudyService with its collaborators
// supplied by the caller. The provider and cache are interfaces so test
// doubles and alternate backends are composed in, never hooked in.
func NewStudyService(
	provider generation.Provider,
	c cache.Cache,
	cacheTTL time.Duration,
	logger *slog.Logger,
) *StudyService {
	return &StudyService{
		provider: provider,
		cache:    c,
		cacheTTL: cacheTTL,
		logger:   logger,
	}
}

// GenerateFlashcards produces question/answer pairs for text.
//
// The text is stripped of markup and must be non-empty
// (domain.ErrEmptyText otherwise). Byte-identical stripped text maps to
// the same fingerprint, so an immediate repeat call is a cache hit.
// Provider and recovery failures are returned as *generation.Error and
// never populate the cache.
func (s *StudyService) GenerateFlashcards(ctx context.Context, text string) (*FlashcardResult, error) {
	text = readability.StripTags(text)
	if text == "" {
		return nil, domain.ErrEmptyText
	}

	key := cache.Fingerprint(text)
	if cards, ok := s.cache.Get(ctx, key); ok {
		s.logger.DebugContext(ctx, "flashcard cache hit", "fingerprint", key)
		return &FlashcardResult{Cards: cards, Cached: true}, nil
	}

	messages := []domain.ChatMessage{
		domain.NewSystemMessage(flashcardSystemPrompt),
		domain.NewUserMessage(text),
	}

	content, err := s.provider.Chat(ctx, messages, generation.ChatOptions{})
	if err != nil {
		return nil, err
	}

	cards, err := generation.RecoverCards(content)
	if err != nil {
		s.logger.WarnContext(ctx, "provider response could not be recovered",
			"fingerprint", key,
			"content_length", len(content))
		return nil, err
	}

	s.cache.Put(ctx, key, cards, s.cacheTTL)
	s.logger.InfoContext(ctx, "flashcards generated",
		"fingerprint", key,
		"card_count", len(cards))

	return &FlashcardResult{Cards: cards, Cached: false}, nil
}

// GenerateMetaDescription produces an SEO meta description for content,
// using the title and the content's Flesch Reading Ease score as prompt
// context. The content must be non-empty after markup stripping
// (domain.ErrEmptyContent otherwise). One layer of surrounding
// double-quote runs is stripped from the model output. This path is not
// cached.
func (s *StudyService) GenerateMetaDescription(ctx context.Context, title, content string) (*MetaResult, error) {
	title = strings.TrimSpace(readability.StripTags(title))
	content = readability.StripTags(content)
	if content == "" {
		return nil, domain.ErrEmptyContent
	}

	score := readability.Score(content)

	prompt := fmt.Sprintf("Title: %s\n\nContent:\n%s\n\nReadingEase:%s",
		title, content, strconv.FormatFloat(score, 'f', -1, 64))

	messages := []domain.ChatMessage{
		domain.NewSystemMessage(metaSystemPrompt),
		domain.NewUserMessage(prompt),
	}

	raw, err := s.provider.Chat(ctx, messages, generation.ChatOptions{Temperature: metaTemperature})
	if err != nil {
		return nil, err
	}

	// Models sometimes quote the description despite the instruction.
	desc := strings.TrimSpace(raw)
	desc = strings.TrimLeft(desc, `"`)
	desc = strings.TrimRight(desc, `"`)

	s.logger.InfoContext(ctx, "meta description generated",
		"description_length", len(desc),
		"reading_ease", score)

	return &MetaResult{Description: desc, ReadingEase: score}, nil
}
