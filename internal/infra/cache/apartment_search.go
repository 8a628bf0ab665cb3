// Package cache keeps available-apartment search results in Redis.
//
// Entries are keyed by a listing version. Any write that changes which
// apartments are available bumps the version, so stale entries are never
// read again and simply expire.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"tenancy-service/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
)

const (
	versionKey   = "apartments:search:version"
	resultPrefix = "apartments:search:v"
)

type ApartmentSearchCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewApartmentSearchCache returns a cache that does nothing when client is nil.
func NewApartmentSearchCache(client *redis.Client, ttl time.Duration) *ApartmentSearchCache {
	return &ApartmentSearchCache{
		client: client,
		ttl:    ttl,
	}
}

func (c *ApartmentSearchCache) Enabled() bool {
	return c.client != nil
}

// Get looks query up under the current listing version and returns the key
// it used. The key is empty when the cache is disabled or the version could
// not be read.
func (c *ApartmentSearchCache) Get(ctx context.Context, query string) ([]*queries.ApartmentView, string, bool) {
	if !c.Enabled() {
		return nil, "", false
	}

	key, err := c.resultKey(ctx, query)
	if err != nil {
		slog.Warn("apartment search cache version lookup failed", "error", err.Error())
		return nil, "", false
	}

	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			slog.Warn("apartment search cache GET failed", "key", key, "error", err.Error())
		}
		return nil, key, false
	}

	var items []*queries.ApartmentView
	if err := json.Unmarshal(raw, &items); err != nil {
		slog.Warn("apartment search cache entry is corrupt", "key", key, "error", err.Error())
		return nil, key, false
	}
	return items, key, true
}

// Set stores items under a key returned by Get. The version is not read
// again, so a result loaded before an invalidation stays on the old version.
func (c *ApartmentSearchCache) Set(ctx context.Context, key string, items []*queries.ApartmentView) {
	if !c.Enabled() || key == "" {
		return
	}

	raw, err := json.Marshal(items)
	if err != nil {
		slog.Warn("failed to encode apartment search result", "error", err.Error())
		return
	}
	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		slog.Warn("apartment search cache SET failed", "key", key, "error", err.Error())
	}
}

// InvalidateListings moves every reader to a fresh version.
func (c *ApartmentSearchCache) InvalidateListings(ctx context.Context) {
	if !c.Enabled() {
		return
	}
	if err := c.client.Incr(ctx, versionKey).Err(); err != nil {
		slog.Error("failed to invalidate apartment search cache", "error", err.Error())
	}
}

func (c *ApartmentSearchCache) resultKey(ctx context.Context, query string) (string, error) {
	version, err := c.client.Get(ctx, versionKey).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		return "", err
	}
	return resultPrefix + strconv.FormatInt(version, 10) + ":" + query, nil
}
