package http

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/estately-inc/estately/docs"
	"github.com/estately-inc/estately/internal/infrastructure/metrics"
	"github.com/estately-inc/estately/internal/interfaces/http/middleware"
	"github.com/estately-inc/estately/internal/interfaces/http/routes"
)

// SetupRoutes configures all HTTP routes
func (c *Container) SetupRoutes() {
	e := c.engine

	e.Use(middleware.RequestID())
	e.Use(middleware.Recovery(c.log))
	e.Use(middleware.CustomLogger(c.log))
	e.Use(metrics.GinMiddleware(c.httpMetrics))
	e.Use(middleware.CORS(c.cfg.Server.AllowedOrigins))
	e.Use(middleware.SecurityHeaders())

	e.GET("/health", c.hdlrs.healthHandler.HealthCheck)
	e.GET("/version", c.hdlrs.healthHandler.Version)
	e.GET("/metrics", gin.WrapH(promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{Registry: c.registry})))
	e.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := e.Group("/api/v1")
	routes.SetupListingRoutes(api, &routes.ListingRouteConfig{
		ListingHandler:  c.hdlrs.listingHandler,
		AuthMiddleware:  c.authMiddleware,
		CreateRateLimit: c.createRateLimit,
		Checker:         c.checker,
	})
}
