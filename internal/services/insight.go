package services

import (
	"context"

	"github.com/cogniverse/insight-backend/internal/insights"
	"github.com/cogniverse/insight-backend/internal/logger"
)

type InsightRequest struct {
	UserID   string                   `json:"userId"`
	Exam     string                   `json:"exam"`
	Attempts []insights.AttemptRecord `json:"attempts"`
}

type InsightService interface {
	Analyze(ctx context.Context, req InsightRequest) insights.Result
}

type InsightConfig struct {
	Debug bool
}

type insightService struct {
	log *logger.Logger
	cfg InsightConfig
}

func NewInsightService(log *logger.Logger, cfg InsightConfig) InsightService {
	return &insightService{
		log: log.With("service", "InsightService"),
		cfg: cfg,
	}
}

// Analyze never fails: unusable input degrades to the fixed unknown result.
func (s *insightService) Analyze(ctx context.Context, req InsightRequest) insights.Result {
	result := insights.Compute(req.Attempts)
	if s.cfg.Debug {
		s.log.Debug("Computed attempt insights",
			"user_id", req.UserID,
			"exam", req.Exam,
			"attempts", len(req.Attempts),
			"usable_scores", len(result.LearningCurve),
			"trend", result.Trend,
			"risk_zone", result.RiskZone,
		)
	}
	return result
}
