package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"bms-api/internal/core/domain"

	"github.com/redis/go-redis/v9"
)

const quoteTTL = time.Hour

// RedisQuoteCache caches EMI quotes in Redis. Identical inputs always
// produce identical quotes, so entries never need invalidation before
// their TTL.
type RedisQuoteCache struct {
	client *redis.Client
}

func NewRedisQuoteCache(client *redis.Client) *RedisQuoteCache {
	return &RedisQuoteCache{client: client}
}

// Get returns a cached quote. Any Redis or decode error is treated as
// a cache miss.
func (c *RedisQuoteCache) Get(ctx context.Context, key string) (*domain.LoanQuoteResult, bool) {
	payload, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}

	var result domain.LoanQuoteResult
	if err := json.Unmarshal(payload, &result); err != nil {
		return nil, false
	}
	return &result, true
}

// Set stores a quote. Failures are logged and otherwise ignored.
func (c *RedisQuoteCache) Set(ctx context.Context, key string, result *domain.LoanQuoteResult) {
	payload, err := json.Marshal(result)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, key, payload, quoteTTL).Err(); err != nil {
		log.Printf("⚠️  Quote cache write failed: %v", err)
	}
}
