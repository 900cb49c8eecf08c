package handlers

import (
	"github.com/SscSPs/dual_currency_display/cmd/docs"
	portssvc "github.com/SscSPs/dual_currency_display/internal/core/ports/services"
	"github.com/SscSPs/dual_currency_display/internal/middleware"
	"github.com/SscSPs/dual_currency_display/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	analytics middleware.EventSink,
) error {
	if err := registerValidators(); err != nil {
		return err
	}

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// Register public authentication routes
	if err := registerAuthRoutes(r, services.Auth); err != nil {
		return err
	}

	// Storefront display routes are public and rate limited per IP
	public := r.Group("/api/v1")
	if err := registerDisplayRoutes(public, services, cfg.DisplayRateLimit); err != nil {
		return err
	}

	setupAdminRoutes(r, cfg, services, analytics)
	setupSwaggerRoutes(r, cfg)
	return nil
}

// setupSwaggerRoutes serves the API documentation outside production
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// setupAdminRoutes configures the authenticated /api/v1 group used by the administrator
func setupAdminRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	analytics middleware.EventSink,
) {
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret), middleware.PosthogMiddleware(analytics))
	registerAdminRoutes(v1, services)
}
