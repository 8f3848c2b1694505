package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/askary/studyaid-api/internal/domain"
)

// keyPrefix namespaces flashcard entries within a shared Redis
// instance.
const keyPrefix = "studyaid:fc:"

// RedisCache is a Cache backed by Redis, for deployments running more
// than one instance of the service. Values are JSON-encoded flashcard
// slices stored with Redis-native TTLs. Redis failures degrade to a
// cache miss; a generation request is never failed over cache trouble.
type RedisCache struct {
	client *redis.Client
	logger *slog.Logger
}

var _ Cache = (*RedisCache)(nil)

// NewRedisCache returns a Redis-backed cache speaking to addr
// (host:port). The connection is verified lazily on first use.
func NewRedisCache(addr string, logger *slog.Logger) *RedisCache {
	return &RedisCache{
		client: redis.NewClient(&redis.Options{Addr: addr}),
		logger: logger,
	}
}

// Get fetches and decodes the flashcards stored under key. Missing
// keys, expired keys, and Redis errors all report a miss.
func (c *RedisCache) Get(ctx context.Context, key string) ([]domain.Flashcard, bool) {
	raw, err := c.client.Get(ctx, keyPrefix+key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.WarnContext(ctx, "redis cache get failed", "error", err)
		}
		return nil, false
	}

	var cards []domain.Flashcard
	if err := json.Unmarshal(raw, &cards); err != nil {
		c.logger.WarnContext(ctx, "redis cache entry is not valid JSON, dropping", "error", err)
		return nil, false
	}

	return cards, true
}

// Put stores cards under key with the given TTL. Failures are logged
// and ignored; the next identical request simply regenerates.
func (c *RedisCache) Put(ctx context.Context, key string, cards []domain.Flashcard, ttl time.Duration) {
	raw, err := json.Marshal(cards)
	if err != nil {
		c.logger.WarnContext(ctx, "failed to encode cache entry", "error", err)
		return
	}

	if err := c.client.Set(ctx, keyPrefix+key, raw, ttl).Err(); err != nil {
		c.logger.WarnContext(ctx, "redis cache put failed", "error", err)
	}
}
