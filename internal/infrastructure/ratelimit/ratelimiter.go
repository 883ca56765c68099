package ratelimit

import (
	"context"
	"time"
)

// RateLimitConfig holds per-window limits; a zero limit disables that window.
type RateLimitConfig struct {
	RequestsPerMinute int
	RequestsPerHour   int
	RequestsPerDay    int
}

func (c RateLimitConfig) IsZero() bool {
	return c.RequestsPerMinute <= 0 && c.RequestsPerHour <= 0 && c.RequestsPerDay <= 0
}

type RateLimiter interface {
	// Allow reports whether one more request for key fits every window and
	// records it if so. Rejected requests do not consume quota.
	Allow(ctx context.Context, key string, config RateLimitConfig) (bool, error)
	GetRemaining(ctx context.Context, key string, window time.Duration, limit int) (int64, error)
	Reset(ctx context.Context, key string) error
}
