package services

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ShareCache is a read-through cache for resolved share projections.
// The public share path is the only unauthenticated read surface and is
// the one worth caching: a popular link can be hit far more often than
// the note changes. A nil *ShareCache disables caching.
type ShareCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewShareCache(redisURL string, ttl time.Duration) (*ShareCache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &ShareCache{client: client, ttl: ttl}, nil
}

func (sc *ShareCache) key(token string) string {
	return "share:" + token
}

// Get returns the cached projection bytes for a share token, or false.
func (sc *ShareCache) Get(ctx context.Context, token string) ([]byte, bool) {
	if sc == nil {
		return nil, false
	}
	data, err := sc.client.Get(ctx, sc.key(token)).Bytes()
	if err != nil {
		return nil, false
	}
	return data, true
}

// Set stores the projection bytes for a share token. Failures are
// swallowed; the cache is best effort.
func (sc *ShareCache) Set(ctx context.Context, token string, data []byte) {
	if sc == nil {
		return
	}
	sc.client.Set(ctx, sc.key(token), data, sc.ttl)
}

// Invalidate drops the cached projection for a token, used when a share
// is revoked or its note is deleted.
func (sc *ShareCache) Invalidate(ctx context.Context, token string) {
	if sc == nil {
		return
	}
	sc.client.Del(ctx, sc.key(token))
}
