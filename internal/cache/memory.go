package cache

import (
	"context"
	"sync"
	"time"

	"github.com/askary/studyaid-api/internal/domain"
)

// entry is a stored value with its absolute expiry time.
type entry struct {
	cards     []domain.Flashcard
	expiresAt time.Time
}

// MemoryCache is an in-process Cache backed by a mutex-guarded map.
// Entries expire by TTL only; volume is bounded by human-paced
// requests, so there is no size cap or LRU eviction.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]entry

	// now is injectable for TTL tests.
	now func() time.Time
}

var _ Cache = (*MemoryCache)(nil)

// NewMemoryCache returns an empty in-memory cache.
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

// Get returns the flashcards stored under key. An entry at or past its
// expiry is treated as a miss and removed.
func (c *MemoryCache) Get(_ context.Context, key string) ([]domain.Flashcard, bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		return nil, false
	}

	if !c.now().Before(e.expiresAt) {
		c.mu.Lock()
		// Re-check under the write lock; a concurrent Put may have
		// refreshed the key.
		if cur, ok := c.entries[key]; ok && !c.now().Before(cur.expiresAt) {
			delete(c.entries, key)
		}
		c.mu.Unlock()
		return nil, false
	}

	return e.cards, true
}

// Put stores cards under key until now+ttl.
func (c *MemoryCache) Put(_ context.Context, key string, cards []domain.Flashcard, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry{
		cards:     cards,
		expiresAt: c.now().Add(ttl),
	}
}
