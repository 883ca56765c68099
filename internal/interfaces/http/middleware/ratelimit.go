package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/estately-inc/estately/internal/infrastructure/ratelimit"
	"github.com/estately-inc/estately/internal/shared/authorization"
	"github.com/estately-inc/estately/internal/shared/logger"
	"github.com/estately-inc/estately/internal/shared/utils"
)

// RateLimitMiddleware throttles a route per authenticated user, falling back
// to the client IP for anonymous callers.
type RateLimitMiddleware struct {
	limiter ratelimit.RateLimiter
	scope   string
	config  ratelimit.RateLimitConfig
	logger  logger.Interface
}

func NewRateLimitMiddleware(
	limiter ratelimit.RateLimiter,
	scope string,
	config ratelimit.RateLimitConfig,
	logger logger.Interface,
) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		limiter: limiter,
		scope:   scope,
		config:  config,
		logger:  logger,
	}
}

func (m *RateLimitMiddleware) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.limiter == nil || m.config.IsZero() {
			c.Next()
			return
		}

		key := m.key(c)
		allowed, err := m.limiter.Allow(c.Request.Context(), key, m.config)
		if err != nil {
			// fail open
			m.logger.Errorw("rate limit check failed, allowing request", "key", key, "error", err)
			c.Next()
			return
		}

		if m.config.RequestsPerHour > 0 {
			remaining, err := m.limiter.GetRemaining(c.Request.Context(), key, time.Hour, m.config.RequestsPerHour)
			if err == nil {
				c.Header("X-RateLimit-Limit", strconv.Itoa(m.config.RequestsPerHour))
				c.Header("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))
			}
		}

		if !allowed {
			m.logger.Warnw("rate limit exceeded", "key", key)
			utils.ErrorResponse(c, http.StatusTooManyRequests, "rate limit exceeded, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}

func (m *RateLimitMiddleware) key(c *gin.Context) string {
	if actor := authorization.ActorFromContext(c); actor.IsAuthenticated() {
		return fmt.Sprintf("%s:user:%d", m.scope, actor.UserID)
	}
	return fmt.Sprintf("%s:ip:%s", m.scope, c.ClientIP())
}
