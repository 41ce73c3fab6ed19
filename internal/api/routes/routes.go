// Package routes handles the setup and configuration of API routes
package routes

import (
	"database/sql"
	_ "tzfield/docs" // Import swagger docs
	"tzfield/internal/api/handlers"
	"tzfield/internal/api/middleware"
	"tzfield/internal/auth"
	"tzfield/internal/config"
	"tzfield/internal/repository/postgres"
	"tzfield/internal/tzindex"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRoutes configures all API routes and their handlers
func SetupRoutes(cfg *config.Config, db *sql.DB, index *tzindex.Index) *gin.Engine {
	r := gin.Default()

	// Apply compression middleware globally
	r.Use(middleware.Compression(middleware.DefaultCompressionConfig()))

	// Routes without rate limiting
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Apply rate limiting to all other routes
	r.Use(middleware.NewRateLimiter(cfg).Middleware())

	// Initialize repositories
	configRepo := postgres.NewFieldConfigRepository(db)
	auditRepo := postgres.NewAuditLogRepository(db)

	// Initialize services and middleware
	authService := auth.NewService(cfg)
	authMiddleware := middleware.NewAuthMiddleware(authService)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db, index)
	fieldHandler := handlers.NewFieldHandler(auditRepo)
	zoneHandler := handlers.NewZoneHandler(index, configRepo, auditRepo, cfg)
	configHandler := handlers.NewFieldConfigHandler(configRepo, auditRepo)

	// API v1 routes
	v1 := r.Group("/api/v1")
	{
		// Health check (no authentication required)
		v1.GET("/health", healthHandler.Health)

		// Field value conversion routes
		field := v1.Group("/field")
		field.Use(authMiddleware.AuthRequired())
		{
			field.POST("/parse", fieldHandler.Parse)
			field.POST("/format", fieldHandler.Format)
			field.POST("/structured", fieldHandler.Structured)
		}

		// Zone picker routes
		zones := v1.Group("/zones")
		zones.Use(authMiddleware.AuthRequired())
		{
			zones.GET("/options", zoneHandler.Options)
		}

		// Field configuration routes
		configs := v1.Group("/configs")
		configs.Use(authMiddleware.AuthRequired())
		{
			configs.GET("/me", configHandler.GetOwnConfig)

			// Admin-only routes
			adminConfigs := configs.Group("")
			adminConfigs.Use(authMiddleware.AdminRequired())
			{
				adminConfigs.GET("", configHandler.ListConfigs)
				adminConfigs.GET("/:id", configHandler.GetConfig)
				adminConfigs.POST("", configHandler.CreateConfig)
				adminConfigs.PUT("/:id", configHandler.UpdateConfig)
				adminConfigs.DELETE("/:id", configHandler.DeleteConfig)
			}
		}

		// Operational routes, guarded by the provisioning key
		admin := v1.Group("/admin")
		admin.Use(authMiddleware.ProvisionKeyRequired())
		{
			admin.POST("/zones/reload", zoneHandler.Reload)
		}
	}

	return r
}
