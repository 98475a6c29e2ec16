package insights

import (
	"reflect"
	"testing"
)

func attempt(createdAt any, report any) AttemptRecord {
	return AttemptRecord{CreatedAt: createdAt, Report: report}
}

func scoreReport(score float64) map[string]any {
	return map[string]any{"focus_score": score}
}

func TestCompute_EmptyAttemptsIsUnknownRecord(t *testing.T) {
	got := Compute(nil)
	want := unknownResult()
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Compute(nil) = %#v, want fixed unknown record", got)
	}
	if len(want.LearningBehavior.Evidence) != 1 || want.LearningBehavior.Evidence[0] != "no usable reports found in attempts" {
		t.Fatalf("unexpected unknown evidence: %#v", want.LearningBehavior.Evidence)
	}
}

func TestCompute_MalformedReportsAreDropped(t *testing.T) {
	attempts := []AttemptRecord{
		attempt("2026-01-03T10:00:00Z", "not a mapping"),
		attempt("2026-01-02T10:00:00Z", nil),
		attempt(nil, []any{"also not a mapping"}),
	}
	got := Compute(attempts)
	if got.Trend != "unknown" {
		t.Fatalf("trend = %q, want unknown for all-malformed input", got.Trend)
	}
}

func TestCompute_TrendImproving(t *testing.T) {
	// newest-first input; chronological series is 50,55,60
	attempts := []AttemptRecord{
		attempt("2026-01-03T10:00:00Z", scoreReport(60)),
		attempt("2026-01-02T10:00:00Z", scoreReport(55)),
		attempt("2026-01-01T10:00:00Z", scoreReport(50)),
	}
	got := Compute(attempts)
	if got.Trend != "improving" {
		t.Fatalf("trend = %q, want improving", got.Trend)
	}
}

func TestCompute_TrendDeclining(t *testing.T) {
	attempts := []AttemptRecord{
		attempt("2026-01-03T10:00:00Z", scoreReport(50)),
		attempt("2026-01-02T10:00:00Z", scoreReport(55)),
		attempt("2026-01-01T10:00:00Z", scoreReport(60)),
	}
	got := Compute(attempts)
	if got.Trend != "declining" {
		t.Fatalf("trend = %q, want declining", got.Trend)
	}
}

func TestCompute_LearningCurveChronological(t *testing.T) {
	attempts := []AttemptRecord{
		attempt("2026-01-03T10:00:00Z", scoreReport(70)),
		attempt(nil, scoreReport(60)),
		attempt("2026-01-01T10:00:00Z", scoreReport(50)),
	}
	got := Compute(attempts)
	if len(got.LearningCurve) != 3 {
		t.Fatalf("curve length = %d, want 3", len(got.LearningCurve))
	}
	if got.LearningCurve[0].XP != 50 || got.LearningCurve[2].XP != 70 {
		t.Fatalf("curve out of chronological order: %#v", got.LearningCurve)
	}
	if got.LearningCurve[0].Index != 0 || got.LearningCurve[2].Index != 2 {
		t.Fatalf("curve indexes wrong: %#v", got.LearningCurve)
	}
	if got.LearningCurve[1].Date != nil {
		t.Fatalf("unparsable timestamp should give nil date: %#v", got.LearningCurve[1])
	}
	if got.LearningCurve[0].Date == nil || *got.LearningCurve[0].Date != "2026-01-01T10:00:00Z" {
		t.Fatalf("unexpected first curve date: %#v", got.LearningCurve[0].Date)
	}
}

func TestCompute_FocusScoreFallsBackToTimeWeight(t *testing.T) {
	attempts := []AttemptRecord{
		attempt(nil, map[string]any{
			"error_types": map[string]any{"time": float64(30)},
		}),
	}
	got := Compute(attempts)
	if len(got.LearningCurve) != 1 || got.LearningCurve[0].XP != 70 {
		t.Fatalf("expected derived score 70, got %#v", got.LearningCurve)
	}
}

func TestCompute_DominantErrorMode(t *testing.T) {
	rep := func(kind string) map[string]any {
		return map[string]any{
			"error_types": map[string]any{kind: float64(80), "comprehension": float64(10)},
		}
	}
	attempts := []AttemptRecord{
		attempt(nil, rep("careless")),
		attempt(nil, rep("careless")),
		attempt(nil, rep("time")),
	}
	got := Compute(attempts)
	if got.DominantError != "careless" {
		t.Fatalf("dominant_error = %q, want careless", got.DominantError)
	}
}

func TestCompute_RiskZoneLateSectionPanic(t *testing.T) {
	rep := func(kind string) map[string]any {
		return map[string]any{"error_types": map[string]any{kind: float64(90)}}
	}
	attempts := []AttemptRecord{
		attempt(nil, rep("time")),
		attempt(nil, rep("time")),
		attempt(nil, rep("conceptual")),
	}
	got := Compute(attempts)
	if got.RiskZone != "late_section_panic" {
		t.Fatalf("risk_zone = %q, want late_section_panic", got.RiskZone)
	}
}

func TestCompute_RiskZoneMisreadTrap(t *testing.T) {
	rep := func(kind string) map[string]any {
		return map[string]any{"error_types": map[string]any{kind: float64(90)}}
	}
	attempts := []AttemptRecord{
		attempt(nil, rep("comprehension")),
		attempt(nil, rep("time")),
		attempt(nil, rep("comprehension")),
		attempt(nil, rep("comprehension")),
	}
	got := Compute(attempts)
	if got.RiskZone != "misread_trap" {
		t.Fatalf("risk_zone = %q, want misread_trap", got.RiskZone)
	}
}

func TestPersonaRules_FastButCareless(t *testing.T) {
	rep := func(kind string, score float64) map[string]any {
		return map[string]any{
			"focus_score": score,
			"error_types": map[string]any{kind: float64(85)},
		}
	}
	// careless dominates 3/5 and score std is well above 12
	reports := []map[string]any{
		rep("careless", 90),
		rep("careless", 45),
		rep("careless", 92),
		rep("time", 40),
		rep("conceptual", 88),
	}
	personas := personaRules(reports)
	if len(personas) == 0 {
		t.Fatalf("expected at least one persona")
	}
	if personas[0].Label != "Fast-but-Careless" {
		t.Fatalf("persona = %q, want Fast-but-Careless", personas[0].Label)
	}
	if personas[0].Confidence != "high" {
		t.Fatalf("confidence = %q, want high", personas[0].Confidence)
	}
}

func TestPersonaRules_TruncatedToTwo(t *testing.T) {
	rep := func(kind string, score float64, topic string) map[string]any {
		return map[string]any{
			"focus_score": score,
			"error_types": map[string]any{kind: float64(85)},
			"weaknesses":  []any{map[string]any{"topic": topic, "severity": float64(4)}},
		}
	}
	// trips all three rules: careless+volatility, time>=2, repeated topic
	reports := []map[string]any{
		rep("careless", 95, "Algebra"),
		rep("careless", 40, "Algebra"),
		rep("time", 95, "Algebra"),
		rep("time", 40, "Geometry"),
		rep("careless", 90, "Geometry"),
	}
	personas := personaRules(reports)
	if len(personas) != 2 {
		t.Fatalf("personas = %d, want 2 (truncated)", len(personas))
	}
	if personas[0].Label != "Fast-but-Careless" || personas[1].Label != "Conceptually-OK-but-Panics-on-Time" {
		t.Fatalf("unexpected persona order: %#v", personas)
	}
}

func TestDominantError_TieBreaksByCanonicalOrder(t *testing.T) {
	et := map[string]any{
		"comprehension": float64(40),
		"careless":      float64(40),
		"time":          float64(10),
	}
	if got := dominantError(et); got != "careless" {
		t.Fatalf("dominantError = %q, want careless on tie", got)
	}
}

func TestParseTimestamp(t *testing.T) {
	cases := []struct {
		in string
		ok bool
	}{
		{"2026-01-18T12:34:56.789Z", true},
		{"2026-01-18T12:34:56", true},
		{"2026-01-18", true},
		{"yesterday", false},
		{"", false},
	}
	for _, tc := range cases {
		_, ok := parseTimestamp(tc.in)
		if ok != tc.ok {
			t.Fatalf("parseTimestamp(%q) ok = %v, want %v", tc.in, ok, tc.ok)
		}
	}
	if _, ok := parseTimestamp(nil); ok {
		t.Fatalf("parseTimestamp(nil) should fail")
	}
}

func TestCompute_ConfidenceTiers(t *testing.T) {
	build := func(n int) []AttemptRecord {
		out := []AttemptRecord{}
		for i := 0; i < n; i++ {
			out = append(out, attempt(nil, scoreReport(50)))
		}
		return out
	}
	if got := Compute(build(2)); got.LearningBehavior.Confidence != "low" {
		t.Fatalf("confidence = %q, want low", got.LearningBehavior.Confidence)
	}
	if got := Compute(build(5)); got.LearningBehavior.Confidence != "medium" {
		t.Fatalf("confidence = %q, want medium", got.LearningBehavior.Confidence)
	}
	if got := Compute(build(9)); got.LearningBehavior.Confidence != "high" {
		t.Fatalf("confidence = %q, want high", got.LearningBehavior.Confidence)
	}
}
