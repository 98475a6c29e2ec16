package insights

// Trend bands over the OLS slope of the chronological score series.
const (
	slopeImproving = 1.2
	slopeDeclining = -1.2
)

func classifyTrend(slope float64) string {
	if slope > slopeImproving {
		return "improving"
	}
	if slope < slopeDeclining {
		return "declining"
	}
	return "plateau"
}

// volatilityScore scales the sample standard deviation into a 0..100 integer.
func volatilityScore(std float64) int {
	return int(clamp(std*6, 0, 100))
}

func classifyConsistency(std float64) string {
	switch {
	case std < 6:
		return "high"
	case std < 12:
		return "medium"
	default:
		return "low"
	}
}
