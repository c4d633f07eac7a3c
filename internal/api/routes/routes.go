package routes

import (
	"lead-pipeline-backend/internal/api/handlers"
	"lead-pipeline-backend/internal/api/middleware"
	"lead-pipeline-backend/internal/auth"
	"lead-pipeline-backend/internal/config"
	"lead-pipeline-backend/internal/repository"
	"lead-pipeline-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	stageRepo := repository.NewStageRepository(db)
	leadRepo := repository.NewLeadRepository(db)
	eventRepo := repository.NewLeadEventRepository(db)

	// Initialize services
	boardService := service.NewBoardService(leadRepo, stageRepo)
	leadService := service.NewLeadService(leadRepo, stageRepo, eventRepo, validator)
	importExportService := service.NewImportExportService(leadRepo, stageRepo, userRepo)
	stageService := service.NewStageService(stageRepo, leadRepo, validator)
	userService := service.NewUserService(userRepo, leadRepo, validator)

	// Initialize auth
	authService := auth.NewService(cfg.JWTSecret)
	authMiddleware := auth.NewMiddleware(authService, userRepo)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	boardHandler := handlers.NewBoardHandler(boardService)
	leadHandler := handlers.NewLeadHandler(leadService)
	importExportHandler := handlers.NewImportExportHandler(importExportService)
	stageHandler := handlers.NewStageHandler(stageService)
	userHandler := handlers.NewUserHandler(userService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 routes - All endpoints require authentication
	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())

	{
		// Board routes
		board := v1.Group("/board")
		{
			board.GET("", boardHandler.GetBoard)
			board.POST("/move", boardHandler.MoveLead)
			board.POST("/reorder", boardHandler.Reorder)
		}

		// Lead routes
		leads := v1.Group("/leads")
		{
			leads.POST("", leadHandler.CreateLead)
			leads.POST("/import", importExportHandler.ImportCSV)
			leads.GET("/export", importExportHandler.ExportCSV)
			leads.GET("/:id", leadHandler.GetLead)
			leads.PUT("/:id", leadHandler.UpdateLead)
			leads.DELETE("/:id", leadHandler.DeleteLead)
		}

		// Schedule projection
		v1.GET("/schedule", leadHandler.GetSchedule)

		// Audit event routes
		events := v1.Group("/events")
		{
			events.DELETE("/:id", leadHandler.DeleteEvent)
		}

		// Stage routes
		stages := v1.Group("/stages")
		{
			stages.GET("", stageHandler.ListStages)
			stages.POST("", stageHandler.CreateStage)
			stages.PUT("/:id", stageHandler.UpdateStage)
			stages.DELETE("/:id", stageHandler.DeleteStage)
		}

		// User routes
		users := v1.Group("/users")
		{
			users.GET("", userHandler.ListUsers)
			users.POST("", userHandler.CreateUser)
			users.PATCH("/:id/role", userHandler.ChangeRole)
			users.PATCH("/:id/active", userHandler.SetActive)
			users.DELETE("/:id", userHandler.DeleteUser)
		}
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(db)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	return router
}
