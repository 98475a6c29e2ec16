package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/cogniverse/insight-backend/internal/handlers"
	"github.com/cogniverse/insight-backend/internal/logger"
	"github.com/cogniverse/insight-backend/internal/middleware"
	"github.com/cogniverse/insight-backend/internal/server"
	"github.com/cogniverse/insight-backend/internal/services"
	"github.com/cogniverse/insight-backend/internal/utils"
)

func main() {
	// Logger
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Env
	log.Info("Loading environment variables from main...")
	port := utils.GetEnv("PORT", "8080", log)
	promptVersion := utils.GetEnv("PROMPT_VERSION", "go-v1.0.0", log)
	debug := utils.GetEnvAsBool("DEBUG_INSIGHTS", false, log)
	origins := strings.Split(utils.GetEnv("CORS_ALLOW_ORIGINS", "http://localhost:3000", log), ",")

	// Generator client
	openaiClient, err := services.NewOpenAIClient(log)
	if err != nil {
		log.Error("Could not init OpenAIClient", "error", err)
		os.Exit(1)
	}

	// Services
	log.Info("Setting up Services from main...")
	insightService := services.NewInsightService(log, services.InsightConfig{Debug: debug})
	strategyService := services.NewStrategyService(log, openaiClient, services.StrategyConfig{
		PromptVersion: promptVersion,
		Debug:         debug,
	})
	reportService := services.NewReportService(log, insightService, strategyService)

	// Handlers
	insightsHandler := handlers.NewInsightsHandler(log, insightService)
	strategyHandler := handlers.NewStrategyHandler(log, strategyService)
	reportHandler := handlers.NewReportHandler(log, reportService)

	// Router
	router := server.NewRouter(server.RouterConfig{
		AllowOrigins:        origins,
		RequestIDMiddleware: middleware.NewRequestIDMiddleware(log),
		InsightsHandler:     insightsHandler,
		StrategyHandler:     strategyHandler,
		ReportHandler:       reportHandler,
	})

	log.Info("Starting server", "port", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatal("Server exited", "error", err)
	}
}
