package ratelimit

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type window struct {
	duration time.Duration
	limit    int
}

// RedisRateLimiter is a sliding-window limiter backed by one sorted set per
// key and window.
type RedisRateLimiter struct {
	client *redis.Client
	now    func() time.Time
}

func NewRedisRateLimiter(client *redis.Client) *RedisRateLimiter {
	return &RedisRateLimiter{
		client: client,
		now:    time.Now,
	}
}

func (l *RedisRateLimiter) Allow(ctx context.Context, key string, config RateLimitConfig) (bool, error) {
	now := l.now()

	windows := []window{
		{time.Minute, config.RequestsPerMinute},
		{time.Hour, config.RequestsPerHour},
		{24 * time.Hour, config.RequestsPerDay},
	}

	active := windows[:0]
	for _, w := range windows {
		if w.limit <= 0 {
			continue
		}
		count, err := l.count(ctx, key, w.duration, now)
		if err != nil {
			return false, err
		}
		if count >= int64(w.limit) {
			return false, nil
		}
		active = append(active, w)
	}

	if err := l.record(ctx, key, active, now); err != nil {
		return false, err
	}
	return true, nil
}

// count trims entries older than the window and returns what is left.
func (l *RedisRateLimiter) count(ctx context.Context, key string, d time.Duration, now time.Time) (int64, error) {
	redisKey := l.getKey(key, d)
	windowStart := now.Add(-d).UnixNano()

	pipe := l.client.Pipeline()
	pipe.ZRemRangeByScore(ctx, redisKey, "0", strconv.FormatInt(windowStart, 10))
	zcard := pipe.ZCard(ctx, redisKey)

	if _, err := pipe.Exec(ctx); err != nil {
		return 0, fmt.Errorf("failed to execute pipeline: %w", err)
	}
	return zcard.Val(), nil
}

func (l *RedisRateLimiter) record(ctx context.Context, key string, windows []window, now time.Time) error {
	if len(windows) == 0 {
		return nil
	}

	// members must be unique or concurrent requests collapse into one entry
	member := strconv.FormatInt(now.UnixNano(), 10) + "-" + uuid.NewString()

	pipe := l.client.TxPipeline()
	for _, w := range windows {
		redisKey := l.getKey(key, w.duration)
		pipe.ZAdd(ctx, redisKey, redis.Z{Score: float64(now.UnixNano()), Member: member})
		pipe.Expire(ctx, redisKey, w.duration+time.Minute)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to record request: %w", err)
	}
	return nil
}

// GetRemaining returns how many requests are still allowed in the window.
func (l *RedisRateLimiter) GetRemaining(ctx context.Context, key string, d time.Duration, limit int) (int64, error) {
	count, err := l.count(ctx, key, d, l.now())
	if err != nil {
		return 0, fmt.Errorf("failed to get remaining: %w", err)
	}
	return max(int64(limit)-count, 0), nil
}

func (l *RedisRateLimiter) Reset(ctx context.Context, key string) error {
	pattern := fmt.Sprintf("ratelimit:%s:*", key)

	iter := l.client.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		if err := l.client.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("failed to delete key %s: %w", iter.Val(), err)
		}
	}

	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to scan keys: %w", err)
	}

	return nil
}

func (l *RedisRateLimiter) getKey(identifier string, window time.Duration) string {
	return fmt.Sprintf("ratelimit:%s:%s", identifier, window.String())
}
