package insights

import "time"

// Compute derives the full analytics result from a newest-first list of
// attempt records. It is pure: no I/O, no shared state, safe to call
// concurrently.
func Compute(attempts []AttemptRecord) Result {
	fs := extractFeatures(attempts)
	if len(fs.scores) == 0 {
		return unknownResult()
	}

	xsChrono := reversedFloats(fs.scores)
	reportsChrono := reversedReports(fs.reports)
	datesChrono := reversedDates(fs.reportDates)

	slope := linSlope(xsChrono)
	std := stddev(xsChrono)
	volatility := volatilityScore(std)

	dominant := "unknown"
	if len(fs.domErrors) > 0 {
		dominant = modeOf(fs.domErrors)
	}

	cadence := analyzeCadence(fs.dates)
	resp := analyzeResponsiveness(xsChrono)
	loop := analyzeStuckLoop(reportsChrono)
	exec := analyzeExecutionStyle(fs.domErrors, volatility)

	n := len(xsChrono)
	confidence := "low"
	switch {
	case n >= 8:
		confidence = "high"
	case n >= 4:
		confidence = "medium"
	}

	evidence := []string{}
	evidence = append(evidence, cadence.Evidence...)
	evidence = append(evidence, resp.Evidence...)
	evidence = append(evidence, loop.Evidence...)
	evidence = append(evidence, exec.Evidence...)
	if len(evidence) > 6 {
		evidence = evidence[:6]
	}

	curve := make([]CurvePoint, 0, len(xsChrono))
	for i, xp := range xsChrono {
		p := CurvePoint{Index: i, XP: xp}
		if d := datesChrono[i]; d != nil {
			s := d.UTC().Format(time.RFC3339)
			p.Date = &s
		}
		curve = append(curve, p)
	}

	return Result{
		Trend:         classifyTrend(slope),
		DominantError: dominant,
		Consistency:   classifyConsistency(std),
		Volatility:    volatility,
		RiskZone:      riskZone(fs.domErrors, dominant),
		Personas:      personaRules(fs.reports),
		LearningCurve: curve,
		LearningBehavior: LearningBehavior{
			Cadence:        cadence.Cadence,
			StreakDays:     cadence.StreakDays,
			WeeklyActivity: cadence.WeeklyActivity,
			Responsiveness: resp.Responsiveness,
			DeltaXP:        resp.DeltaXP,
			StuckLoop:      loop,
			ExecutionStyle: exec.ExecutionStyle,
			Confidence:     confidence,
			Evidence:       evidence,
		},
	}
}

// unknownResult is the fixed record returned when no attempt yields a
// usable score.
func unknownResult() Result {
	return Result{
		Trend:         "unknown",
		DominantError: "unknown",
		Consistency:   "unknown",
		Volatility:    0,
		RiskZone:      "none",
		Personas:      []Persona{},
		LearningCurve: []CurvePoint{},
		LearningBehavior: LearningBehavior{
			Cadence:        "unknown",
			StreakDays:     0,
			WeeklyActivity: 0,
			Responsiveness: "unknown",
			DeltaXP:        0,
			StuckLoop:      StuckLoop{Active: false},
			ExecutionStyle: "unknown",
			Confidence:     "low",
			Evidence:       []string{"no usable reports found in attempts"},
		},
	}
}
