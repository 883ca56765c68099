package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/estately-inc/estately/internal/application/listing/dto"
	"github.com/estately-inc/estately/internal/shared/logger"
)

func setupTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	mr, err := miniredis.Run()
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		client.Close()
		mr.Close()
	})
	return mr, client
}

func sampleStats() *dto.ListingStatsDTO {
	return &dto.ListingStatsDTO{
		ByStatus: map[string]int64{"Pending": 4, "Approved": 10, "Canceled": 1, "Sold": 2},
		Pending:  4,
		Total:    17,
	}
}

func TestListingStatsCache_RoundTrip(t *testing.T) {
	_, client := setupTestRedis(t)
	c := NewListingStatsCache(client, time.Minute, logger.NewNop())
	ctx := context.Background()

	got, err := c.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, got, "empty cache is a miss")

	require.NoError(t, c.Set(ctx, sampleStats()))

	got, err = c.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, sampleStats(), got)

	require.NoError(t, c.Invalidate(ctx))
	got, err = c.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestListingStatsCache_Expiry(t *testing.T) {
	mr, client := setupTestRedis(t)
	c := NewListingStatsCache(client, 0, logger.NewNop())
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, sampleStats()))
	assert.Equal(t, defaultListingStatsTTL, mr.TTL(listingStatsKey))

	mr.FastForward(defaultListingStatsTTL + time.Second)

	got, err := c.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestListingStatsCache_CorruptEntry(t *testing.T) {
	mr, client := setupTestRedis(t)
	c := NewListingStatsCache(client, time.Minute, logger.NewNop())

	require.NoError(t, mr.Set(listingStatsKey, "{not json"))

	got, err := c.Get(context.Background())
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.False(t, mr.Exists(listingStatsKey))
}

func TestListingStatsCache_Unavailable(t *testing.T) {
	mr, client := setupTestRedis(t)
	c := NewListingStatsCache(client, time.Minute, logger.NewNop())
	mr.Close()

	_, err := c.Get(context.Background())
	assert.Error(t, err)
	assert.Error(t, c.Set(context.Background(), sampleStats()))
	assert.Error(t, c.Invalidate(context.Background()))
}
