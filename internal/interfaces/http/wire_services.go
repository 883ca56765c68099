package http

import (
	"context"
	"fmt"

	"github.com/estately-inc/estately/internal/application/listing/usecases"
	"github.com/estately-inc/estately/internal/domain/listing"
	"github.com/estately-inc/estately/internal/infrastructure/auth"
	"github.com/estately-inc/estately/internal/infrastructure/cache"
	"github.com/estately-inc/estately/internal/infrastructure/metrics"
	"github.com/estately-inc/estately/internal/infrastructure/permission"
	"github.com/estately-inc/estately/internal/infrastructure/ratelimit"
	"github.com/estately-inc/estately/internal/interfaces/http/handlers"
	"github.com/estately-inc/estately/internal/interfaces/http/middleware"
	"github.com/estately-inc/estately/internal/shared/services/markdown"
)

// initInfrastructure builds the policy enforcer, auth and rate limiting.
func (c *Container) initInfrastructure() error {
	cfg := c.cfg
	log := c.log

	var (
		enforcer *permission.Enforcer
		err      error
	)
	if cfg.Permission.Persist {
		enforcer, err = permission.NewPersistentEnforcer(c.db, log)
	} else {
		enforcer, err = permission.NewEnforcer(log)
	}
	if err != nil {
		return fmt.Errorf("failed to initialize permission enforcer: %w", err)
	}
	c.checker = enforcer

	c.jwtSvc = auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.Issuer)
	c.authMiddleware = middleware.NewAuthMiddleware(c.jwtSvc, log)

	var limiter ratelimit.RateLimiter
	if c.redis != nil {
		limiter = ratelimit.NewRedisRateLimiter(c.redis)
	}
	c.createRateLimit = middleware.NewRateLimitMiddleware(limiter, "listing:create",
		ratelimit.RateLimitConfig{RequestsPerHour: cfg.Listing.CreatePerHour}, log)

	c.httpMetrics = metrics.NewHTTPMetrics(c.registry)
	return nil
}

// initListing wires repositories, use cases and handlers of the listing API.
func (c *Container) initListing() {
	c.repos = newRepositories(c.db, c.cfg, c.log)

	// a nil *ListingStatsCache must not leak into the interface
	var statsCache usecases.StatsCache
	if c.redis != nil {
		statsCache = cache.NewListingStatsCache(c.redis, c.cfg.Listing.StatsCacheTTL(), c.log)
	}

	c.ucs = newUseCases(useCaseDeps{
		repos:     c.repos,
		lifecycle: listing.NewLifecycle(c.checker),
		cache:     statsCache,
		metrics:   metrics.NewListingMetrics(c.registry),
		renderer:  markdown.NewRenderer(),
	}, c.log)

	c.hdlrs = newHandlers(c.ucs, c.healthChecks(), c.log)
}

func (c *Container) healthChecks() map[string]handlers.HealthCheck {
	checks := map[string]handlers.HealthCheck{
		"database": func(ctx context.Context) error {
			sqlDB, err := c.db.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		},
	}
	if c.redis != nil {
		checks["redis"] = func(ctx context.Context) error {
			return c.redis.Ping(ctx).Err()
		}
	}
	return checks
}
