// Package redis implements the parsed-cue cache. Entries are keyed by the
// upload's content hash, so identical subtitle text never parses twice while
// the entry lives.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ofirgaash1/engsub/internal/config"
	"github.com/ofirgaash1/engsub/internal/domain"
)

// CueCache caches parsed cue lists in Redis as JSON. All failures degrade to
// a cache miss: the caller parses again, a request never fails because the
// cache did.
type CueCache struct {
	client *redis.Client
	log    *slog.Logger
	ttl    time.Duration
}

// NewCueCache connects to Redis and pings it. An empty Addr disables the
// cache: every method becomes a no-op and Get always misses.
func NewCueCache(ctx context.Context, cfg config.RedisConfig, logger *slog.Logger) (*CueCache, error) {
	log := logger.With("component", "cue_cache")

	if cfg.Addr == "" {
		log.Info("cue cache disabled")
		return &CueCache{log: log}, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	log.Info("redis connected", "addr", cfg.Addr, "db", cfg.DB)

	return &CueCache{client: client, log: log, ttl: cfg.CueTTL}, nil
}

func cueKey(contentHash string) string {
	return "cues:" + contentHash
}

// Get returns the cached cues for a content hash. The second return value
// reports a hit; misses and failures both come back as (nil, false).
func (c *CueCache) Get(ctx context.Context, contentHash string) ([]domain.Cue, bool) {
	if c.client == nil {
		return nil, false
	}

	key := cueKey(contentHash)
	payload, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false
	}
	if err != nil {
		c.log.Warn("cache get failed", "key", key, "error", err)
		return nil, false
	}

	var cues []domain.Cue
	if err := json.Unmarshal(payload, &cues); err != nil {
		c.log.Warn("cache entry corrupt, dropping", "key", key, "error", err)
		_ = c.client.Del(ctx, key).Err()
		return nil, false
	}

	return cues, true
}

// Set stores the cues for a content hash with the configured TTL. Failures
// are logged and swallowed.
func (c *CueCache) Set(ctx context.Context, contentHash string, cues []domain.Cue) {
	if c.client == nil {
		return
	}

	payload, err := json.Marshal(cues)
	if err != nil {
		c.log.Warn("cache marshal failed", "hash", contentHash, "error", err)
		return
	}

	key := cueKey(contentHash)
	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		c.log.Warn("cache set failed", "key", key, "error", err)
	}
}

// Invalidate drops the cached cues for a content hash, for file deletion.
func (c *CueCache) Invalidate(ctx context.Context, contentHash string) {
	if c.client == nil {
		return
	}

	key := cueKey(contentHash)
	if err := c.client.Del(ctx, key).Err(); err != nil {
		c.log.Warn("cache invalidate failed", "key", key, "error", err)
	}
}

// Ping reports cache reachability for readiness checks. A disabled cache is
// always ready.
func (c *CueCache) Ping(ctx context.Context) error {
	if c.client == nil {
		return nil
	}
	return c.client.Ping(ctx).Err()
}

// Close releases the Redis connection.
func (c *CueCache) Close() error {
	if c.client == nil {
		return nil
	}
	return c.client.Close()
}
