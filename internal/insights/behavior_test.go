package insights

import (
	"fmt"
	"testing"
	"time"
)

func daysOf(n int, start time.Time) []time.Time {
	out := make([]time.Time, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, start.AddDate(0, 0, i))
	}
	return out
}

func TestCadence_FourteenConsecutiveDays(t *testing.T) {
	start := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	pack := analyzeCadence(daysOf(14, start))

	if pack.WeeklyActivity != 7.0 {
		t.Fatalf("weekly_activity = %v, want 7.0", pack.WeeklyActivity)
	}
	if pack.Cadence != "steady" {
		t.Fatalf("cadence = %q, want steady", pack.Cadence)
	}
	if pack.StreakDays != 14 {
		t.Fatalf("streak_days = %d, want 14", pack.StreakDays)
	}
}

func TestCadence_SingleAttempt(t *testing.T) {
	pack := analyzeCadence([]time.Time{time.Date(2026, 3, 4, 9, 0, 0, 0, time.UTC)})
	if pack.WeeklyActivity != 0.5 {
		t.Fatalf("weekly_activity = %v, want 0.5", pack.WeeklyActivity)
	}
	if pack.Cadence != "sporadic" {
		t.Fatalf("cadence = %q, want sporadic", pack.Cadence)
	}
	if pack.StreakDays != 1 {
		t.Fatalf("streak_days = %d, want 1", pack.StreakDays)
	}
}

func TestCadence_BingePattern(t *testing.T) {
	day1 := time.Date(2026, 2, 1, 8, 0, 0, 0, time.UTC)
	dates := []time.Time{
		day1,
		day1.Add(2 * time.Hour),
		day1.Add(4 * time.Hour),
		day1.AddDate(0, 0, 7), // long gap then one more attempt
	}
	pack := analyzeCadence(dates)
	if pack.Cadence != "binge" {
		t.Fatalf("cadence = %q, want binge (maxDayAttempts=%d maxGap=%d)", pack.Cadence, pack.MaxDayAttempts, pack.MaxGap)
	}
}

func TestCadence_NoDates(t *testing.T) {
	pack := analyzeCadence(nil)
	if pack.Cadence != "unknown" || pack.WeeklyActivity != 0 || pack.StreakDays != 0 {
		t.Fatalf("unexpected pack: %#v", pack)
	}
}

func TestResponsiveness_Flat(t *testing.T) {
	pack := analyzeResponsiveness([]float64{40, 40, 40, 40, 40, 40})
	if pack.Responsiveness != "flat" {
		t.Fatalf("responsiveness = %q, want flat", pack.Responsiveness)
	}
	if pack.DeltaXP != 0 {
		t.Fatalf("delta_xp = %v, want 0", pack.DeltaXP)
	}
}

func TestResponsiveness_Improving(t *testing.T) {
	pack := analyzeResponsiveness([]float64{40, 40, 40, 60, 60, 60})
	if pack.Responsiveness != "improving" {
		t.Fatalf("responsiveness = %q, want improving", pack.Responsiveness)
	}
	if pack.DeltaXP != 20 {
		t.Fatalf("delta_xp = %v, want 20", pack.DeltaXP)
	}
}

func TestResponsiveness_Declining(t *testing.T) {
	pack := analyzeResponsiveness([]float64{70, 70, 70, 60, 60, 60})
	if pack.Responsiveness != "declining" {
		t.Fatalf("responsiveness = %q, want declining", pack.Responsiveness)
	}
}

func TestResponsiveness_TooFewScores(t *testing.T) {
	pack := analyzeResponsiveness([]float64{40, 50, 60})
	if pack.Responsiveness != "unknown" {
		t.Fatalf("responsiveness = %q, want unknown", pack.Responsiveness)
	}
}

func TestResponsiveness_ShortBaseline(t *testing.T) {
	// five scores: a = last 3, b = the 2 before them
	pack := analyzeResponsiveness([]float64{40, 40, 60, 60, 60})
	if pack.Responsiveness != "improving" {
		t.Fatalf("responsiveness = %q, want improving", pack.Responsiveness)
	}
	if pack.DeltaXP != 20 {
		t.Fatalf("delta_xp = %v, want 20", pack.DeltaXP)
	}
}

func weaknessReport(topics ...string) map[string]any {
	ws := []any{}
	for _, topic := range topics {
		ws = append(ws, map[string]any{"topic": topic, "severity": float64(4)})
	}
	return map[string]any{"weaknesses": ws}
}

func TestStuckLoop_RepeatedTopic(t *testing.T) {
	reports := []map[string]any{
		weaknessReport("Quant Ratios"),
		weaknessReport("Reading Speed"),
		weaknessReport("Quant Ratios"),
		weaknessReport("Grammar"),
		weaknessReport("Quant Ratios"),
		weaknessReport("Reading Speed"),
	}
	loop := analyzeStuckLoop(reports)
	if !loop.Active {
		t.Fatalf("expected active loop: %#v", loop)
	}
	if loop.Topic != "Quant Ratios" {
		t.Fatalf("topic = %q, want Quant Ratios", loop.Topic)
	}
	if loop.RepeatsInLast != 3 {
		t.Fatalf("repeats_in_last = %d, want 3", loop.RepeatsInLast)
	}
	if loop.AvgSeverity == nil || *loop.AvgSeverity != 4 {
		t.Fatalf("avg_severity = %v, want 4", loop.AvgSeverity)
	}
}

func TestStuckLoop_LowSeverityInactive(t *testing.T) {
	rep := func() map[string]any {
		return map[string]any{"weaknesses": []any{
			map[string]any{"topic": "quant ratios", "severity": float64(2)},
		}}
	}
	loop := analyzeStuckLoop([]map[string]any{rep(), rep(), rep()})
	if loop.Active {
		t.Fatalf("expected inactive loop with avg severity 2: %#v", loop)
	}
	if loop.RepeatsInLast != 3 {
		t.Fatalf("repeats_in_last = %d, want 3", loop.RepeatsInLast)
	}
}

func TestStuckLoop_MissingSeverityStillActive(t *testing.T) {
	rep := func() map[string]any {
		return map[string]any{"weaknesses": []any{
			map[string]any{"topic": "di sets"},
		}}
	}
	loop := analyzeStuckLoop([]map[string]any{rep(), rep(), rep()})
	if !loop.Active {
		t.Fatalf("expected active loop when severity unknown: %#v", loop)
	}
	if loop.AvgSeverity != nil {
		t.Fatalf("avg_severity = %v, want nil", loop.AvgSeverity)
	}
}

func TestStuckLoop_NoPairs(t *testing.T) {
	loop := analyzeStuckLoop([]map[string]any{{"summary": "nothing here"}})
	if loop.Active {
		t.Fatalf("expected inactive loop: %#v", loop)
	}
}

func TestStuckLoop_OnlyLastSixReportsCount(t *testing.T) {
	reports := []map[string]any{}
	// three old reports with a repeating topic that must fall out of window
	for i := 0; i < 3; i++ {
		reports = append(reports, weaknessReport("Ancient Topic"))
	}
	for i := 0; i < 6; i++ {
		reports = append(reports, weaknessReport(fmt.Sprintf("Topic %d", i)))
	}
	loop := analyzeStuckLoop(reports)
	if loop.Active {
		t.Fatalf("expected inactive loop, old reports should be ignored: %#v", loop)
	}
}

func TestExecutionStyle_Branches(t *testing.T) {
	cases := []struct {
		doms       []string
		volatility int
		want       string
	}{
		{[]string{"time", "time", "time", "careless", "conceptual"}, 20, "panic_cycle"},
		{[]string{"careless", "careless", "careless", "time", "time"}, 60, "speed_over_control"},
		{[]string{"careless", "careless", "careless", "time", "time"}, 40, "balanced"},
		{[]string{"conceptual", "conceptual", "conceptual", "time", "careless"}, 20, "control_over_speed"},
		{[]string{"conceptual", "conceptual", "conceptual", "time", "careless"}, 40, "balanced"},
		{[]string{"comprehension", "time", "careless"}, 10, "balanced"},
		{nil, 0, "unknown"},
	}
	for i, tc := range cases {
		got := analyzeExecutionStyle(tc.doms, tc.volatility)
		if got.ExecutionStyle != tc.want {
			t.Fatalf("case %d: execution_style = %q, want %q", i, got.ExecutionStyle, tc.want)
		}
	}
}
