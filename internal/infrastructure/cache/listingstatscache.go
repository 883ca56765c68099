package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/estately-inc/estately/internal/application/listing/dto"
	"github.com/estately-inc/estately/internal/shared/logger"
)

const (
	listingStatsKey        = "estately:listing:stats"
	defaultListingStatsTTL = 30 * time.Second
)

// ListingStatsCache keeps the moderation dashboard counters in redis so the
// grouped count does not run on every dashboard refresh.
type ListingStatsCache struct {
	client *redis.Client
	ttl    time.Duration
	logger logger.Interface
}

func NewListingStatsCache(client *redis.Client, ttl time.Duration, logger logger.Interface) *ListingStatsCache {
	if ttl <= 0 {
		ttl = defaultListingStatsTTL
	}
	return &ListingStatsCache{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

// Get returns nil, nil on a miss. An undecodable entry is dropped and
// treated as a miss.
func (c *ListingStatsCache) Get(ctx context.Context) (*dto.ListingStatsDTO, error) {
	data, err := c.client.Get(ctx, listingStatsKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get listing stats from cache: %w", err)
	}

	var stats dto.ListingStatsDTO
	if err := json.Unmarshal(data, &stats); err != nil {
		c.logger.Warnw("discarding corrupt listing stats entry", "error", err)
		if delErr := c.client.Del(ctx, listingStatsKey).Err(); delErr != nil {
			c.logger.Warnw("failed to delete corrupt listing stats entry", "error", delErr)
		}
		return nil, nil
	}
	return &stats, nil
}

func (c *ListingStatsCache) Set(ctx context.Context, stats *dto.ListingStatsDTO) error {
	data, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("failed to encode listing stats: %w", err)
	}
	if err := c.client.Set(ctx, listingStatsKey, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache listing stats: %w", err)
	}
	return nil
}

// Invalidate drops the cached counters; called after every successful write.
func (c *ListingStatsCache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, listingStatsKey).Err(); err != nil {
		return fmt.Errorf("failed to invalidate listing stats: %w", err)
	}
	return nil
}
