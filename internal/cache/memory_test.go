package cache

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askary/studyaid-api/internal/domain"
)

func testCards() []domain.Flashcard {
	return []domain.Flashcard{
		{Question: "What is Go?", Answer: "A programming language."},
		{Question: "Who made it?", Answer: "Google."},
	}
}

func TestMemoryCacheHit(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	c.Put(ctx, "k", testCards(), time.Second)

	got, ok := c.Get(ctx, "k")
	require.True(t, ok)
	assert.Equal(t, testCards(), got)
}

func TestMemoryCacheMissUnknownKey(t *testing.T) {
	c := NewMemoryCache()

	got, ok := c.Get(context.Background(), "never-stored")
	assert.False(t, ok)
	assert.Nil(t, got)
}

func TestMemoryCacheExpiry(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	// Simulated clock so the test does not sleep.
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	c.Put(ctx, "k", testCards(), time.Second)

	_, ok := c.Get(ctx, "k")
	require.True(t, ok, "entry should be live before the TTL elapses")

	// Exactly at expiry the entry is already a miss.
	now = now.Add(time.Second)
	_, ok = c.Get(ctx, "k")
	assert.False(t, ok, "entry should be expired at now >= expiresAt")

	// The stale entry was discarded, not just hidden.
	c.mu.RLock()
	_, present := c.entries["k"]
	c.mu.RUnlock()
	assert.False(t, present)
}

func TestMemoryCacheRewriteRefreshesTTL(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	c.Put(ctx, "k", testCards(), time.Second)

	now = now.Add(900 * time.Millisecond)
	fresher := []domain.Flashcard{{Question: "updated", Answer: "yes"}}
	c.Put(ctx, "k", fresher, time.Second)

	// Past the original expiry but within the refreshed one.
	now = now.Add(500 * time.Millisecond)
	got, ok := c.Get(ctx, "k")
	require.True(t, ok)
	assert.Equal(t, fresher, got)
}

func TestMemoryCacheConcurrentAccess(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := fmt.Sprintf("key-%d", i%4)
			for j := 0; j < 100; j++ {
				c.Put(ctx, key, testCards(), time.Minute)
				c.Get(ctx, key)
			}
		}(i)
	}
	wg.Wait()

	for i := 0; i < 4; i++ {
		got, ok := c.Get(ctx, fmt.Sprintf("key-%d", i))
		require.True(t, ok)
		assert.Equal(t, testCards(), got)
	}
}
