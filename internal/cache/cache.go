// Package cache provides the fingerprint cache used to reuse flashcard
// results across requests with identical input text. Backing storage is
// an implementation detail behind the Cache interface; an in-memory map
// and a Redis client are provided.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/askary/studyaid-api/internal/domain"
)

// Cache maps input fingerprints to previously generated flashcards with
// a bounded TTL. Implementations must be safe for concurrent Get/Put
// from simultaneous requests. Entries only ever hold results of
// successful generations; callers never Put a failure.
type Cache interface {
	// Get returns the cached flashcards for key, or ok=false on a miss.
	// An entry whose TTL has elapsed is a miss and is discarded.
	Get(ctx context.Context, key string) ([]domain.Flashcard, bool)

	// Put stores cards under key for the given TTL. Re-writing an
	// existing key with fresher data is always safe.
	Put(ctx context.Context, key string, cards []domain.Flashcard, ttl time.Duration)
}

// Fingerprint returns the cache key for the exact input text: a SHA-256
// hex digest. Byte-identical input always yields the same key.
func Fingerprint(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}
