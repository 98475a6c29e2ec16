package strategy

import "fmt"

func validBand(band string) bool {
	switch band {
	case "high", "medium", "low":
		return true
	}
	return false
}

// Validate checks a normalized plan against the strict schema. Normalize is
// expected to produce a passing plan; a failure here means the candidate
// was beyond repair and is a hard error for the caller.
func Validate(p Plan) error {
	if p.Title == "" {
		return fmt.Errorf("strategy plan: empty title")
	}
	if p.Confidence.Score < 0 || p.Confidence.Score > 100 {
		return fmt.Errorf("strategy plan: confidence score %d out of range", p.Confidence.Score)
	}
	if !validBand(p.Confidence.Band) {
		return fmt.Errorf("strategy plan: invalid confidence band %q", p.Confidence.Band)
	}

	if len(p.TopLevers) < 1 || len(p.TopLevers) > MaxLevers {
		return fmt.Errorf("strategy plan: %d levers, want 1..%d", len(p.TopLevers), MaxLevers)
	}
	seen := map[string]bool{}
	for i, lv := range p.TopLevers {
		if lv.Title == "" {
			return fmt.Errorf("strategy plan: lever %d has no title", i)
		}
		if len(lv.Do) < 1 {
			return fmt.Errorf("strategy plan: lever %d has no do items", i)
		}
		if len(lv.Stop) < 1 {
			return fmt.Errorf("strategy plan: lever %d has no stop items", i)
		}
		theme := classifyLeverTheme(lv)
		if seen[theme] {
			return fmt.Errorf("strategy plan: duplicate lever theme %q", theme)
		}
		seen[theme] = true
	}

	if len(p.IfThenRules) < MinIfThen || len(p.IfThenRules) > MaxIfThen {
		return fmt.Errorf("strategy plan: %d if_then_rules, want %d..%d", len(p.IfThenRules), MinIfThen, MaxIfThen)
	}

	if len(p.PlanDays) < MinPlanDays || len(p.PlanDays) > MaxPlanDays {
		return fmt.Errorf("strategy plan: %d plan_days, want %d..%d", len(p.PlanDays), MinPlanDays, MaxPlanDays)
	}
	for i, d := range p.PlanDays {
		if d.Title == "" {
			return fmt.Errorf("strategy plan: day %d has no title", i)
		}
		if len(d.Tasks) < 1 || len(d.Tasks) > MaxDayTasks {
			return fmt.Errorf("strategy plan: day %d has %d tasks, want 1..%d", i, len(d.Tasks), MaxDayTasks)
		}
	}

	if len(p.NextQuestions) > MaxQuestions {
		return fmt.Errorf("strategy plan: %d next_questions, want at most %d", len(p.NextQuestions), MaxQuestions)
	}
	return nil
}
