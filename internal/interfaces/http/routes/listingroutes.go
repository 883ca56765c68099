package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/estately-inc/estately/internal/interfaces/http/handlers"
	"github.com/estately-inc/estately/internal/interfaces/http/middleware"
	"github.com/estately-inc/estately/internal/shared/authorization"
)

// ListingRouteConfig holds dependencies for listing routes.
type ListingRouteConfig struct {
	ListingHandler  *handlers.ListingHandler
	AuthMiddleware  *middleware.AuthMiddleware
	CreateRateLimit *middleware.RateLimitMiddleware
	Checker         authorization.Checker
}

// SetupListingRoutes configures public, owner and admin listing routes.
func SetupListingRoutes(api *gin.RouterGroup, cfg *ListingRouteConfig) {
	h := cfg.ListingHandler

	listings := api.Group("/listings")
	{
		listings.GET("/featured", h.FeaturedListings)

		// Reads resolve the caller when a token is present
		listingsRead := listings.Group("")
		listingsRead.Use(cfg.AuthMiddleware.OptionalAuth())
		{
			listingsRead.GET("", h.ListListings)
			listingsRead.GET("/count", h.CountListings)
			listingsRead.GET("/slug/:slug", h.GetListingBySlug)
			listingsRead.GET("/:id", h.GetListing)
		}

		listingsWrite := listings.Group("")
		listingsWrite.Use(cfg.AuthMiddleware.RequireAuth())
		{
			listingsWrite.POST("", cfg.CreateRateLimit.Limit(), h.CreateListing)
			listingsWrite.PUT("/:id", h.UpdateListing)
			listingsWrite.POST("/:id/cancel", h.CancelListing)
			listingsWrite.POST("/:id/sold", h.MarkSold)
			listingsWrite.DELETE("/:id", h.DeleteListing)
		}
	}

	me := api.Group("/me")
	me.Use(cfg.AuthMiddleware.RequireAuth())
	{
		me.GET("/listings", h.ListMyListings)
	}

	admin := api.Group("/admin")
	admin.Use(cfg.AuthMiddleware.RequireAuth())
	{
		admin.GET("/listings/stats", authorization.RequireAction(cfg.Checker, authorization.ActionViewAll), h.GetStats)
		admin.POST("/listings/:id/moderate", authorization.RequireAction(cfg.Checker, authorization.ActionModerate), h.ModerateListing)
		admin.PATCH("/listings/:id/status", authorization.RequireAction(cfg.Checker, authorization.ActionSetStatus), h.SetStatus)
		admin.PATCH("/listings/:id/premium", authorization.RequireAction(cfg.Checker, authorization.ActionSetPremium), h.SetPremium)
		admin.DELETE("/users/:id/listings", authorization.RequireAction(cfg.Checker, authorization.ActionPurgeUser), h.DeleteUserListings)
	}
}
