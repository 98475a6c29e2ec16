package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/cogniverse/insight-backend/internal/handlers"
	"github.com/cogniverse/insight-backend/internal/middleware"
)

type RouterConfig struct {
	AllowOrigins        []string
	RequestIDMiddleware *middleware.RequestIDMiddleware
	InsightsHandler     *handlers.InsightsHandler
	StrategyHandler     *handlers.StrategyHandler
	ReportHandler       *handlers.ReportHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With", middleware.RequestIDHeader},
		AllowCredentials: true,
	}))
	router.Use(cfg.RequestIDMiddleware.Attach())

	router.GET("/healthcheck", handlers.HealthCheck)

	api := router.Group("/api")
	{
		api.POST("/insights", cfg.InsightsHandler.PostInsights)
		api.POST("/strategy", cfg.StrategyHandler.PostStrategy)
		api.POST("/report", cfg.ReportHandler.PostReport)
	}

	return router
}
