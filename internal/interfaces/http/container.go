package http

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/estately-inc/estately/internal/infrastructure/auth"
	"github.com/estately-inc/estately/internal/infrastructure/config"
	"github.com/estately-inc/estately/internal/infrastructure/metrics"
	"github.com/estately-inc/estately/internal/interfaces/http/middleware"
	"github.com/estately-inc/estately/internal/shared/authorization"
	"github.com/estately-inc/estately/internal/shared/logger"
)

// Container holds all infrastructure components, repositories, use cases and
// handlers of the HTTP server and wires them together.
type Container struct {
	// Core infrastructure
	engine   *gin.Engine
	db       *gorm.DB
	cfg      *config.Config
	log      logger.Interface
	redis    *redis.Client
	registry *prometheus.Registry

	repos *repositories
	ucs   *allUseCases
	hdlrs *allHandlers

	checker         authorization.Checker
	jwtSvc          *auth.JWTService
	authMiddleware  *middleware.AuthMiddleware
	createRateLimit *middleware.RateLimitMiddleware
	httpMetrics     *metrics.HTTPMetrics
}

// NewContainer wires the server. redisClient may be nil, in which case the
// stats cache and the create rate limit are disabled.
func NewContainer(db *gorm.DB, redisClient *redis.Client, cfg *config.Config, log logger.Interface) (*Container, error) {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	c := &Container{
		engine:   gin.New(),
		db:       db,
		cfg:      cfg,
		log:      log,
		redis:    redisClient,
		registry: registry,
	}

	if err := c.initInfrastructure(); err != nil {
		return nil, err
	}
	c.initListing()
	c.SetupRoutes()

	return c, nil
}

// ConnectRedis opens and pings the configured Redis. It returns nil when
// Redis is disabled.
func ConnectRedis(ctx context.Context, cfg *config.Config, log logger.Interface) (*redis.Client, error) {
	if !cfg.Redis.Enabled {
		log.Infow("redis disabled, listing stats cache and create rate limit are off")
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.GetAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.Redis.GetAddr(), err)
	}
	log.Infow("Redis connection established successfully", "addr", cfg.Redis.GetAddr())

	return client, nil
}

// Engine returns the configured gin engine.
func (c *Container) Engine() *gin.Engine {
	return c.engine
}

// Shutdown releases resources owned by the container.
func (c *Container) Shutdown() {
	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			c.log.Warnw("failed to close redis client", "error", err)
		}
	}
}
