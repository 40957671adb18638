package main

import (
	"github.com/devyhq/devy-backend/internal/config"
	"github.com/devyhq/devy-backend/internal/middleware"
	"github.com/devyhq/devy-backend/pkg/logger"
	"github.com/gin-gonic/gin"
)

// registerRoutes sets up all HTTP routes on the given Gin engine.
func registerRoutes(r *gin.Engine, cfg *config.Config, svc *appServices) {
	r.Use(logger.GinLogger(), logger.GinRecovery())
	r.RedirectTrailingSlash = false
	r.RedirectFixedPath = false
	r.Use(middleware.CORS())

	// Throttle the credential endpoints per client IP
	authLimiter := middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst)

	r.GET("/health", svc.healthHandler.CheckHealth)

	api := r.Group("/api")
	{
		// Public auth routes
		public := api.Group("/users", authLimiter.Middleware())
		{
			public.POST("/register", svc.authHandler.Register)
			public.POST("/login", svc.authHandler.Login)
			public.POST("/refresh-token", svc.authHandler.Refresh)
		}

		// Reference data (public)
		locations := api.Group("/locations")
		{
			locations.GET("", svc.locationHandler.GetLocationData)
			locations.GET("/countries", svc.locationHandler.GetCountries)
			locations.GET("/countries/:countryId/cities", svc.locationHandler.GetCitiesByCountry)
			locations.GET("/work-preferences", svc.locationHandler.GetWorkPreferences)
		}

		// Protected routes
		protected := api.Group("")
		protected.Use(middleware.AuthRequired())
		{
			protected.GET("/users/me", svc.authHandler.Me)
			protected.GET("/users", svc.userHandler.List)
			protected.GET("/users/:id", svc.userHandler.GetByID)
			protected.PUT("/users/:id", svc.userHandler.Update)
			protected.DELETE("/users/:id", svc.userHandler.Delete)
		}
	}
}
