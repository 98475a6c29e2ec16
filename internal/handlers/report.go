package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cogniverse/insight-backend/internal/logger"
	"github.com/cogniverse/insight-backend/internal/services"
)

type ReportHandler struct {
	log       *logger.Logger
	reportSvc services.ReportService
}

func NewReportHandler(log *logger.Logger, reportSvc services.ReportService) *ReportHandler {
	return &ReportHandler{
		log:       log.With("handler", "ReportHandler"),
		reportSvc: reportSvc,
	}
}

// POST /api/report
// Combined flow: analytics over the attempt history plus a best-effort
// strategy plan. A generation failure shows up as strategy_plan: null with
// a strategy_plan_error annotation, never as a request failure.
func (h *ReportHandler) PostReport(c *gin.Context) {
	var req services.ReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, CodeBadRequest, err)
		return
	}
	result := h.reportSvc.BuildReport(c.Request.Context(), req)
	RespondOK(c, result)
}
