package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cogniverse/insight-backend/internal/logger"
	"github.com/cogniverse/insight-backend/internal/services"
)

type InsightsHandler struct {
	log        *logger.Logger
	insightSvc services.InsightService
}

func NewInsightsHandler(log *logger.Logger, insightSvc services.InsightService) *InsightsHandler {
	return &InsightsHandler{
		log:        log.With("handler", "InsightsHandler"),
		insightSvc: insightSvc,
	}
}

// POST /api/insights
// Derives trend, behavior, persona and risk signals from attempt history.
// Always answers with a structured result; unusable attempts degrade to the
// fixed unknown record.
func (h *InsightsHandler) PostInsights(c *gin.Context) {
	var req services.InsightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, CodeBadRequest, err)
		return
	}
	result := h.insightSvc.Analyze(c.Request.Context(), req)
	RespondOK(c, result)
}
