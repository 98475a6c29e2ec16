package services

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/cogniverse/insight-backend/internal/insights"
	"github.com/cogniverse/insight-backend/internal/logger"
	"github.com/cogniverse/insight-backend/internal/strategy"
)

type ReportRequest struct {
	UserID   string                   `json:"userId"`
	Exam     string                   `json:"exam"`
	Intake   Intake                   `json:"intake"`
	Attempts []insights.AttemptRecord `json:"attempts"`
	// Report is the latest analyzed mock report the strategy plan should be
	// built from. When absent, the newest usable attempt report is used.
	Report map[string]any `json:"report"`
}

// ReportResult carries the analytics result plus a best-effort strategy
// plan. A generation failure never aborts the flow; it surfaces as the
// StrategyPlanError annotation with a nil plan.
type ReportResult struct {
	Insights          insights.Result `json:"insights"`
	StrategyPlan      *strategy.Plan  `json:"strategy_plan"`
	IsFallback        bool            `json:"is_fallback"`
	StrategyPlanError string          `json:"strategy_plan_error,omitempty"`
}

type ReportService interface {
	BuildReport(ctx context.Context, req ReportRequest) ReportResult
}

type reportService struct {
	log         *logger.Logger
	insightSvc  InsightService
	strategySvc StrategyService
}

func NewReportService(log *logger.Logger, insightSvc InsightService, strategySvc StrategyService) ReportService {
	return &reportService{
		log:         log.With("service", "ReportService"),
		insightSvc:  insightSvc,
		strategySvc: strategySvc,
	}
}

func firstUsableReport(attempts []insights.AttemptRecord) map[string]any {
	for _, a := range attempts {
		if r, ok := a.Report.(map[string]any); ok && r != nil {
			return r
		}
	}
	return nil
}

func (s *reportService) BuildReport(ctx context.Context, req ReportRequest) ReportResult {
	out := ReportResult{}

	report := req.Report
	if report == nil {
		report = firstUsableReport(req.Attempts)
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		out.Insights = s.insightSvc.Analyze(gctx, InsightRequest{
			UserID:   req.UserID,
			Exam:     req.Exam,
			Attempts: req.Attempts,
		})
		return nil
	})

	g.Go(func() error {
		res, err := s.strategySvc.GeneratePlan(gctx, StrategyRequest{
			Exam:   req.Exam,
			Intake: req.Intake,
			Report: report,
		})
		if err != nil {
			// best-effort: annotate and keep the analytics result
			s.log.Warn("Strategy plan generation failed, continuing without plan",
				"user_id", req.UserID,
				"exam", req.Exam,
				"error", err,
			)
			out.StrategyPlan = nil
			out.StrategyPlanError = err.Error()
			return nil
		}
		out.StrategyPlan = &res.Plan
		out.IsFallback = res.IsFallback
		return nil
	})

	// both goroutines always return nil; the group only orders completion
	_ = g.Wait()
	return out
}
