package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/cogniverse/insight-backend/internal/logger"
	"github.com/cogniverse/insight-backend/internal/strategy"
)

// Intake is optional student context forwarded to the generator.
type Intake struct {
	Goal        string `json:"goal,omitempty"`
	Hardest     string `json:"hardest,omitempty"`
	WeeklyHours string `json:"weekly_hours,omitempty"`
}

type StrategyRequest struct {
	Exam   string         `json:"exam"`
	Intake Intake         `json:"intake"`
	Report map[string]any `json:"report"`
}

type StrategyResult struct {
	Plan       strategy.Plan     `json:"strategy_plan"`
	IsFallback bool              `json:"is_fallback"`
	Meta       map[string]string `json:"meta"`
}

type StrategyService interface {
	// GeneratePlan asks the generator for a candidate plan, normalizes it,
	// and re-generates at most once when the result reads as generic.
	GeneratePlan(ctx context.Context, req StrategyRequest) (StrategyResult, error)
}

// StrategyConfig is process-wide immutable configuration, established once
// at startup and passed in explicitly.
type StrategyConfig struct {
	PromptVersion string
	Debug         bool
}

type strategyService struct {
	log *logger.Logger
	gen GeneratorClient
	cfg StrategyConfig
}

func NewStrategyService(log *logger.Logger, gen GeneratorClient, cfg StrategyConfig) StrategyService {
	return &strategyService{
		log: log.With("service", "StrategyService"),
		gen: gen,
		cfg: cfg,
	}
}

func rubricByExam(exam string) string {
	switch strings.ToUpper(strings.TrimSpace(exam)) {
	case "CAT":
		return "CAT EXAM CONTEXT:\n- Sections: VARC, DILR, Quant\n- Focus on accuracy, question selection, and time allocation.\n- Do NOT assume section mapping unless explicitly stated in the report."
	case "NEET":
		return "NEET EXAM CONTEXT:\n- Focus on concept clarity, NCERT alignment, and negative marking.\n- Be conservative with assumptions unless the report states specifics."
	case "JEE":
		return "JEE EXAM CONTEXT:\n- Focus on multi-step reasoning, approach quality, and topic mastery.\n- Avoid guessing section-level weaknesses unless stated."
	default:
		return "GENERIC EXAM CONTEXT:\n- Keep advice exam-agnostic and grounded only in the report."
	}
}

const strategySystemPrompt = "You are a rigorous, conservative exam-strategy coach. " +
	"Return ONLY valid JSON matching the requested schema. " +
	"Every instruction must be a concrete mechanism with numbers or decision rules, never generic advice."

func safeJSON(v any, maxChars int) string {
	b, err := json.Marshal(v)
	if err != nil {
		return "{}"
	}
	s := string(b)
	if maxChars > 0 && len(s) > maxChars {
		s = s[:maxChars]
	}
	return s
}

func (s *strategyService) buildUserPrompt(req StrategyRequest, correction string) string {
	var b strings.Builder
	b.WriteString("Design a next-mock strategy plan for this student.\n\n")
	b.WriteString(rubricByExam(req.Exam))
	b.WriteString("\n\nSTUDENT CONTEXT (may be partial):\n")
	b.WriteString(safeJSON(req.Intake, 2500))
	b.WriteString("\n\nLATEST MOCK REPORT (source of truth):\n")
	b.WriteString(safeJSON(req.Report, 12000))
	b.WriteString("\n\nRULES:\n")
	b.WriteString("- top_levers: 1-3 levers, each targeting a different failure mode.\n")
	b.WriteString("- if_then_rules: 3-10 IF/THEN execution rules.\n")
	b.WriteString("- plan_days: 3-14 days, each with a title, minutes, and 2-6 measurable tasks.\n")
	b.WriteString("- next_questions: at most 2 clarifying questions.\n")
	if correction != "" {
		b.WriteString("\nCORRECTION:\n")
		b.WriteString(correction)
		b.WriteString("\n")
	}
	return b.String()
}

// planSchema is the strict JSON schema sent to the generator. The
// normalizer still repairs whatever comes back; the schema just raises the
// odds of a usable candidate.
func planSchema() map[string]any {
	stringArray := map[string]any{"type": "array", "items": map[string]any{"type": "string"}}
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"required":             []string{"title", "confidence", "top_levers", "if_then_rules", "plan_days", "next_questions"},
		"properties": map[string]any{
			"title": map[string]any{"type": "string"},
			"confidence": map[string]any{
				"type":                 "object",
				"additionalProperties": false,
				"required":             []string{"score", "band", "missing_signals", "assumptions"},
				"properties": map[string]any{
					"score":           map[string]any{"type": "integer", "minimum": 0, "maximum": 100},
					"band":            map[string]any{"type": "string", "enum": []string{"high", "medium", "low"}},
					"missing_signals": stringArray,
					"assumptions":     stringArray,
				},
			},
			"top_levers": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type":                 "object",
					"additionalProperties": false,
					"required":             []string{"title", "do", "stop", "why", "metric", "next_mock_rule"},
					"properties": map[string]any{
						"title":          map[string]any{"type": "string"},
						"do":             stringArray,
						"stop":           stringArray,
						"why":            map[string]any{"type": "string"},
						"metric":         map[string]any{"type": "string"},
						"next_mock_rule": map[string]any{"type": "string"},
					},
				},
			},
			"if_then_rules": stringArray,
			"plan_days": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type":                 "object",
					"additionalProperties": false,
					"required":             []string{"day", "title", "minutes", "tasks"},
					"properties": map[string]any{
						"day":     map[string]any{"type": "integer"},
						"title":   map[string]any{"type": "string"},
						"minutes": map[string]any{"type": "integer"},
						"tasks":   stringArray,
					},
				},
			},
			"next_questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type":                 "object",
					"additionalProperties": false,
					"required":             []string{"question", "options", "unlocks"},
					"properties": map[string]any{
						"question": map[string]any{"type": "string"},
						"options":  stringArray,
						"unlocks":  map[string]any{"type": "string"},
					},
				},
			},
		},
	}
}

func (s *strategyService) GeneratePlan(ctx context.Context, req StrategyRequest) (StrategyResult, error) {
	candidate, err := s.gen.GenerateJSON(ctx, strategySystemPrompt, s.buildUserPrompt(req, ""), "next_mock_strategy_plan", planSchema())
	if err != nil {
		return StrategyResult{}, fmt.Errorf("strategy generation: %w", err)
	}

	plan, isFallback, err := strategy.Normalize(candidate)
	if err != nil {
		return StrategyResult{}, fmt.Errorf("strategy normalization: %w", err)
	}

	if generic, phrases := strategy.ContainsGenericContent(plan); generic {
		if s.cfg.Debug {
			s.log.Debug("Plan contains generic content, regenerating once", "phrases", phrases)
		}
		correction := fmt.Sprintf(
			"Your previous plan contained generic advice (%s). Replace every generic instruction with a concrete mechanism: explicit numbers, cutoffs, or IF/THEN decision rules.",
			strings.Join(phrases, ", "),
		)
		// Retry budget is exactly one. The second result stands regardless
		// of whether it still reads generic.
		candidate, err = s.gen.GenerateJSON(ctx, strategySystemPrompt, s.buildUserPrompt(req, correction), "next_mock_strategy_plan", planSchema())
		if err != nil {
			return StrategyResult{}, fmt.Errorf("strategy regeneration: %w", err)
		}
		plan, isFallback, err = strategy.Normalize(candidate)
		if err != nil {
			return StrategyResult{}, fmt.Errorf("strategy normalization: %w", err)
		}
	}

	return StrategyResult{
		Plan:       plan,
		IsFallback: isFallback,
		Meta: map[string]string{
			"engine":         "go",
			"prompt_version": s.cfg.PromptVersion,
		},
	}, nil
}
