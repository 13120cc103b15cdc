package config

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// ConnectRedis connects to the optional Redis quote cache.
// Returns a nil client with no error when REDIS_ADDR is not configured;
// callers must treat a nil client as cache disabled.
func ConnectRedis(cfg *Config) (*redis.Client, error) {
	if !cfg.CacheEnabled() {
		log.Println("ℹ️ Quote cache disabled (no REDIS_ADDR configured)")
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	log.Printf("✅ Quote cache connected [%s]", cfg.Redis.Addr)
	return client, nil
}
