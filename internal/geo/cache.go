package geo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"roommatch_backend/platform/logger"

	"github.com/redis/go-redis/v9"
)

// DistanceCache is a short-lived redis cache keyed by coordinate pair. It
// exists to avoid redundant routing-service calls within one match-list
// build; correctness never depends on it.
type DistanceCache struct {
	rdb *redis.Client
	ttl time.Duration
	log *logger.Logger
}

// NewDistanceCache wraps a redis client with the configured TTL.
func NewDistanceCache(rdb *redis.Client, ttl time.Duration, log *logger.Logger) *DistanceCache {
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}
	return &DistanceCache{rdb: rdb, ttl: ttl, log: log}
}

// Get returns the cached distance for a coordinate pair, if present.
func (c *DistanceCache) Get(ctx context.Context, lat, lng float64) (Distance, bool) {
	raw, err := c.rdb.Get(ctx, cacheKey(lat, lng)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.Warn("distance cache read failed", "error", err)
		}
		return Distance{}, false
	}

	var dist Distance
	if err := json.Unmarshal(raw, &dist); err != nil {
		c.log.Warn("distance cache entry corrupt", "error", err)
		return Distance{}, false
	}

	return dist, true
}

// Set stores a resolved distance. Failures are logged and ignored.
func (c *DistanceCache) Set(ctx context.Context, lat, lng float64, dist Distance) {
	raw, err := json.Marshal(dist)
	if err != nil {
		return
	}

	if err := c.rdb.Set(ctx, cacheKey(lat, lng), raw, c.ttl).Err(); err != nil {
		c.log.Warn("distance cache write failed", "error", err)
	}
}

// Five decimals is roughly one meter of precision, enough to treat a listing
// as the same cache entry across requests.
func cacheKey(lat, lng float64) string {
	return fmt.Sprintf("geo:dist:%.5f,%.5f", lat, lng)
}
