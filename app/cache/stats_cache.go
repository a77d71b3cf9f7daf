// Package cache implements the optional Redis-backed dashboard stats cache.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/armughan418/EPS-MY-SMS/app/models"
	"github.com/redis/go-redis/v9"
)

const statsKey = "dashboard:stats"

// ErrCacheMiss is returned when no cached stats are available.
var ErrCacheMiss = errors.New("cache: dashboard stats not cached")

// StatsCache caches the dashboard aggregate with a TTL so repeated
// dashboard loads do not rescan the student table. Writes to the ledger
// invalidate it.
type StatsCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewStatsCache creates a cache on the given client. A zero ttl defaults
// to five minutes.
func NewStatsCache(client *redis.Client, ttl time.Duration) *StatsCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &StatsCache{client: client, ttl: ttl}
}

// Get retrieves the cached stats, or ErrCacheMiss.
func (c *StatsCache) Get(ctx context.Context) (*models.DashboardStats, error) {
	data, err := c.client.Get(ctx, statsKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, err
	}

	var stats models.DashboardStats
	if err := json.Unmarshal(data, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// Set stores the stats under the configured TTL.
func (c *StatsCache) Set(ctx context.Context, stats *models.DashboardStats) error {
	data, err := json.Marshal(stats)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, statsKey, data, c.ttl).Err()
}

// Invalidate drops the cached stats after a ledger or roster change.
func (c *StatsCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, statsKey).Err()
}
