package strategy

import "strings"

// Normalize coerces an arbitrary candidate plan object into the strict Plan
// shape, applying the documented per-field defaulting rules. The returned
// bool reports whether canonical fallback levers were substituted. A
// residual validation failure after normalization is a hard error.
func Normalize(candidate any) (Plan, bool, error) {
	obj := mapFromAny(candidate)

	plan := Plan{
		Title:      titleFromAny(obj["title"]),
		Confidence: normalizeConfidence(obj["confidence"]),
	}

	levers, isFallback := normalizeLevers(obj["top_levers"])
	plan.TopLevers = levers
	plan.IfThenRules = normalizeIfThenRules(obj["if_then_rules"])
	plan.PlanDays = normalizePlanDays(obj["plan_days"])
	plan.NextQuestions = normalizeQuestions(obj["next_questions"])

	if err := Validate(plan); err != nil {
		return Plan{}, false, err
	}
	return plan, isFallback, nil
}

// falsyNonString reports whether v is a non-string falsy value (nil,
// false/true booleans, numeric zero) that should read as absent rather
// than be stringified.
func falsyNonString(v any) bool {
	switch t := v.(type) {
	case nil, bool:
		return true
	case float64:
		return t == 0
	case int:
		return t == 0
	case int64:
		return t == 0
	}
	return false
}

func titleFromAny(v any) string {
	if falsyNonString(v) {
		return DefaultTitle
	}
	s := strings.TrimSpace(stringFromAny(v))
	if s == "" {
		return DefaultTitle
	}
	return s
}

func bandFromAny(v any) string {
	if falsyNonString(v) {
		return DefaultBand
	}
	s := strings.TrimSpace(stringFromAny(v))
	if s == "" {
		return DefaultBand
	}
	return s
}

func normalizeConfidence(v any) Confidence {
	m := mapFromAny(v)
	return Confidence{
		Score:          scoreFromAny(m["score"]),
		Band:           bandFromAny(m["band"]),
		MissingSignals: stringSliceFromAny(m["missing_signals"]),
		Assumptions:    stringSliceFromAny(m["assumptions"]),
	}
}

func leverFromMap(m map[string]any) Lever {
	return Lever{
		Title:        strings.TrimSpace(stringFromAny(m["title"])),
		Do:           stringSliceFromAny(m["do"]),
		Stop:         stringSliceFromAny(m["stop"]),
		Why:          strings.TrimSpace(stringFromAny(m["why"])),
		Metric:       strings.TrimSpace(stringFromAny(m["metric"])),
		NextMockRule: strings.TrimSpace(stringFromAny(m["next_mock_rule"])),
	}
}

func fillLeverDefaults(lv Lever) Lever {
	if lv.Title == "" {
		lv.Title = defaultLeverTitle
	}
	if len(lv.Do) == 0 {
		lv.Do = append([]string(nil), defaultLeverDo...)
	}
	if len(lv.Stop) == 0 {
		lv.Stop = append([]string(nil), defaultLeverStop...)
	}
	if lv.Why == "" {
		lv.Why = defaultLeverWhy
	}
	if lv.Metric == "" {
		lv.Metric = defaultLeverMetric
	}
	if lv.NextMockRule == "" {
		lv.NextMockRule = defaultLeverRule
	}
	return lv
}

// normalizeLevers classifies each candidate lever into one theme, keeps the
// first lever per theme, caps the list at three, and substitutes the
// canonical fallback pair when nothing survives.
func normalizeLevers(v any) ([]Lever, bool) {
	raw, _ := v.([]any)
	accepted := []Lever{}
	seenThemes := map[string]bool{}

	for _, item := range raw {
		if len(accepted) >= MaxLevers {
			break
		}
		m := mapFromAny(item)
		if m == nil {
			continue
		}
		lv := leverFromMap(m)
		theme := classifyLeverTheme(lv)
		if seenThemes[theme] {
			continue
		}
		seenThemes[theme] = true
		accepted = append(accepted, fillLeverDefaults(lv))
	}

	if len(accepted) == 0 {
		return fallbackLevers(), true
	}
	return accepted, false
}

func normalizeIfThenRules(v any) []string {
	rules := stringSliceFromAny(v)
	for i := 0; len(rules) < MinIfThen && i < len(fillerIfThenRules); i++ {
		rules = append(rules, fillerIfThenRules[i])
	}
	if len(rules) > MaxIfThen {
		rules = rules[:MaxIfThen]
	}
	return rules
}

func normalizePlanDays(v any) []DayPlan {
	raw, _ := v.([]any)
	days := []DayPlan{}
	for _, item := range raw {
		m := mapFromAny(item)
		if m == nil {
			continue
		}
		d := DayPlan{
			Day:     intFromAny(m["day"], len(days)+1),
			Title:   strings.TrimSpace(stringFromAny(m["title"])),
			Minutes: intFromAny(m["minutes"], DefaultDayMin),
			Tasks:   stringSliceFromAny(m["tasks"]),
		}
		if d.Title == "" || m["title"] == nil {
			d.Title = defaultDayTitle
		}
		if len(d.Tasks) == 0 {
			d.Tasks = append([]string(nil), defaultDayTasks...)
		}
		if len(d.Tasks) > MaxDayTasks {
			d.Tasks = d.Tasks[:MaxDayTasks]
		}
		days = append(days, d)
	}
	if len(days) < MinPlanDays {
		return fallbackPlanDays()
	}
	if len(days) > MaxPlanDays {
		days = days[:MaxPlanDays]
	}
	return days
}

func normalizeQuestions(v any) []Question {
	raw, _ := v.([]any)
	qs := []Question{}
	for _, item := range raw {
		if len(qs) >= MaxQuestions {
			break
		}
		m := mapFromAny(item)
		if m == nil {
			continue
		}
		qs = append(qs, Question{
			Question: strings.TrimSpace(stringFromAny(m["question"])),
			Options:  stringSliceFromAny(m["options"]),
			Unlocks:  strings.TrimSpace(stringFromAny(m["unlocks"])),
		})
	}
	return qs
}
