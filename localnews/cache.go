package localnews

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const snapshotKey = "localnews:snapshot"

// SnapshotCache shares the latest merged article list between instances
// through Redis so a fresh process can serve the news page before its
// first fetch cycle completes.
type SnapshotCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSnapshotCacheFromEnv creates a cache using environment variables
// REDIS_ADDR, REDIS_PASS, REDIS_DB (optional) and NEWS_SNAPSHOT_TTL_SECONDS
// (optional). Returns nil when REDIS_ADDR is unset; the pipeline then runs
// with in-process state only.
func NewSnapshotCacheFromEnv() *SnapshotCache {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		return nil
	}

	db := 0
	if v := os.Getenv("REDIS_DB"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			db = parsed
		}
	}

	ttl := 15 * time.Minute
	if v := os.Getenv("NEWS_SNAPSHOT_TTL_SECONDS"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			ttl = time.Duration(secs) * time.Second
		}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASS"),
		DB:       db,
	})
	return &SnapshotCache{client: client, ttl: ttl}
}

// Store writes the merged list as JSON with the configured TTL.
func (c *SnapshotCache) Store(ctx context.Context, articles []Article) error {
	payload, err := json.Marshal(articles)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, snapshotKey, payload, c.ttl).Err()
}

// Load returns the cached list, or nil when the key is missing or expired.
func (c *SnapshotCache) Load(ctx context.Context) ([]Article, error) {
	payload, err := c.client.Get(ctx, snapshotKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var articles []Article
	if err := json.Unmarshal(payload, &articles); err != nil {
		return nil, err
	}
	return articles, nil
}
