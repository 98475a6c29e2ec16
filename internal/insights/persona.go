package insights

import (
	"fmt"
	"strings"
)

const (
	highVolatilityStd = 12
	personaWindow     = 5
	maxPersonas       = 2
)

// personaRules evaluates the behavioral persona rules over the five most
// recent reports (newest-first). Rules run independently; the result is
// truncated to two personas in rule order.
func personaRules(reports []map[string]any) []Persona {
	rs := reports
	if len(rs) > personaWindow {
		rs = rs[:personaWindow]
	}
	if len(rs) == 0 {
		return []Persona{}
	}

	doms := []string{}
	xps := []float64{}
	weakTopics := []string{}

	for _, r := range rs {
		if dom := dominantError(errorTypesOf(r)); dom != "" {
			doms = append(doms, dom)
		}
		xps = append(xps, focusScore(r))

		ws, ok := r["weaknesses"].([]any)
		if ok {
			picked := 0
			for _, raw := range ws {
				if picked >= 2 {
					break
				}
				w, ok := raw.(map[string]any)
				if !ok || w["topic"] == nil {
					continue
				}
				t := strings.TrimSpace(fmt.Sprint(w["topic"]))
				if t != "" {
					weakTopics = append(weakTopics, t)
					picked++
				}
			}
		}
	}

	vol := stddev(xps)
	highVol := vol >= highVolatilityStd
	carelessCount, timeCount := 0, 0
	for _, d := range doms {
		switch d {
		case ErrorCareless:
			carelessCount++
		case ErrorTime:
			timeCount++
		}
	}

	personas := []Persona{}

	if carelessCount >= 2 && highVol {
		conf := "medium"
		if carelessCount >= 3 {
			conf = "high"
		}
		personas = append(personas, Persona{
			Label:      "Fast-but-Careless",
			Confidence: conf,
			Evidence: []string{
				fmt.Sprintf("careless dominates %d/%d recent mocks", carelessCount, len(doms)),
				"high XP volatility",
			},
		})
	}

	if timeCount >= 2 {
		conf := "medium"
		if timeCount >= 3 {
			conf = "high"
		}
		personas = append(personas, Persona{
			Label:      "Conceptually-OK-but-Panics-on-Time",
			Confidence: conf,
			Evidence: []string{
				fmt.Sprintf("time dominates %d/%d recent mocks", timeCount, len(doms)),
			},
		})
	}

	if len(weakTopics) > 0 {
		counts := map[string]int{}
		top, topN := "", 0
		for _, t := range weakTopics {
			counts[t]++
			if counts[t] > topN {
				top, topN = t, counts[t]
			}
		}
		if topN >= 3 {
			personas = append(personas, Persona{
				Label:      "Stuck-in-Repeat-Loop",
				Confidence: "medium",
				Evidence:   []string{fmt.Sprintf("'%s' repeats across multiple mocks", top)},
			})
		}
	}

	if len(personas) > maxPersonas {
		personas = personas[:maxPersonas]
	}
	return personas
}

// riskZone labels the most likely imminent failure mode from the three most
// recent dominant errors, falling back to the overall dominant error.
func riskZone(domErrors []string, overallDominant string) string {
	recent := domErrors
	if len(recent) > 3 {
		recent = recent[:3]
	}
	timeN, carelessN := 0, 0
	for _, d := range recent {
		switch d {
		case ErrorTime:
			timeN++
		case ErrorCareless:
			carelessN++
		}
	}
	switch {
	case timeN >= 2:
		return "late_section_panic"
	case carelessN >= 2:
		return "speed_over_control"
	case overallDominant == ErrorComprehension:
		return "misread_trap"
	default:
		return "none"
	}
}

// modeOf returns the most frequent entry, first seen winning ties, or ""
// for an empty series.
func modeOf(values []string) string {
	counts := map[string]int{}
	top, topN := "", 0
	for _, v := range values {
		counts[v]++
		if counts[v] > topN {
			top, topN = v, counts[v]
		}
	}
	return top
}
