package http

import (
	"github.com/archiveinsight/backend/config"
	"github.com/archiveinsight/backend/internal/infrastructure/metrics"
	"github.com/gin-gonic/gin"
)

// SetupRouter creates and configures the Gin router
func SetupRouter(cfg *config.Config, handler *Handler) *gin.Engine {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.MaxMultipartMemory = cfg.Upload.MaxBytes

	// Global middleware
	router.Use(RecoveryMiddleware())
	router.Use(RequestIDMiddleware())
	router.Use(LoggerMiddleware())
	router.Use(MetricsMiddleware())
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))

	router.GET("/health", handler.HealthCheck)
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	v1 := router.Group("/api/v1")
	v1.Use(RateLimitMiddleware(NewIPRateLimiter(cfg.RateLimit.PerIP)))
	{
		analyze := v1.Group("/analyze")
		{
			analyze.POST("", handler.Analyze)
			analyze.POST("/text", handler.AnalyzeText)
		}

		projects := v1.Group("/projects")
		{
			projects.GET("", handler.ListProjects)
			projects.GET("/:id", handler.GetProject)
		}
	}

	return router
}
