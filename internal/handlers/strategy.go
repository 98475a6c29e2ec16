package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cogniverse/insight-backend/internal/logger"
	"github.com/cogniverse/insight-backend/internal/services"
)

type StrategyHandler struct {
	log         *logger.Logger
	strategySvc services.StrategyService
}

func NewStrategyHandler(log *logger.Logger, strategySvc services.StrategyService) *StrategyHandler {
	return &StrategyHandler{
		log:         log.With("handler", "StrategyHandler"),
		strategySvc: strategySvc,
	}
}

// POST /api/strategy
// Generates and normalizes a next-mock strategy plan from a report plus
// optional intake context.
func (h *StrategyHandler) PostStrategy(c *gin.Context) {
	var req services.StrategyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, CodeBadRequest, err)
		return
	}
	result, err := h.strategySvc.GeneratePlan(c.Request.Context(), req)
	if err != nil {
		RespondError(c, http.StatusBadGateway, CodeGenerationFailed, err)
		return
	}
	RespondOK(c, result)
}
