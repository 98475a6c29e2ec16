package insights

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const cadenceWindowDays = 14

type cadencePack struct {
	Cadence        string
	WeeklyActivity float64
	StreakDays     int
	MaxDayAttempts int
	MaxGap         int
	Evidence       []string
}

type responsivenessPack struct {
	Responsiveness string
	DeltaXP        float64
	Evidence       []string
}

type executionPack struct {
	ExecutionStyle string
	Evidence       []string
}

func dayKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

func dayOf(key string) time.Time {
	t, _ := time.ParseInLocation("2006-01-02", key, time.UTC)
	return t
}

// streakDays counts consecutive calendar days, walking back from the most
// recent unique active day, stopping at the first gap of more than one day.
func streakDays(dates []time.Time) int {
	if len(dates) == 0 {
		return 0
	}
	seen := map[string]bool{}
	uniq := []string{}
	for _, d := range dates {
		k := dayKey(d)
		if !seen[k] {
			seen[k] = true
			uniq = append(uniq, k)
		}
	}
	sort.Sort(sort.Reverse(sort.StringSlice(uniq)))

	s := 1
	for i := 1; i < len(uniq); i++ {
		prev := dayOf(uniq[i-1])
		cur := dayOf(uniq[i])
		if int(prev.Sub(cur).Hours()/24) == 1 {
			s++
		} else {
			break
		}
	}
	return s
}

// analyzeCadence classifies the activity rhythm over the 14-day window
// ending at the most recent attempt date.
func analyzeCadence(dates []time.Time) cadencePack {
	if len(dates) == 0 {
		return cadencePack{Cadence: "unknown", Evidence: []string{}}
	}

	sorted := append([]time.Time(nil), dates...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Before(sorted[j]) })
	anchor := sorted[len(sorted)-1]
	windowStart := anchor.AddDate(0, 0, -(cadenceWindowDays - 1))

	window := []time.Time{}
	for _, d := range sorted {
		if !d.Before(windowStart) {
			window = append(window, d)
		}
	}

	countsByDay := map[string]int{}
	uniqDays := []string{}
	for _, d := range window {
		k := dayKey(d)
		if countsByDay[k] == 0 {
			uniqDays = append(uniqDays, k)
		}
		countsByDay[k]++
	}
	sort.Strings(uniqDays)

	weekly := round1(float64(len(uniqDays)) / 2)

	maxDayAttempts := 0
	for _, n := range countsByDay {
		if n > maxDayAttempts {
			maxDayAttempts = n
		}
	}

	maxGap := 0
	for i := 1; i < len(uniqDays); i++ {
		gap := int(dayOf(uniqDays[i]).Sub(dayOf(uniqDays[i-1])).Hours() / 24)
		if gap > maxGap {
			maxGap = gap
		}
	}

	pack := cadencePack{
		WeeklyActivity: weekly,
		StreakDays:     streakDays(window),
		MaxDayAttempts: maxDayAttempts,
		MaxGap:         maxGap,
	}
	switch {
	case weekly >= 3:
		pack.Cadence = "steady"
		pack.Evidence = []string{fmt.Sprintf("active on ~%.1f days/week (last 14d)", weekly)}
	case maxDayAttempts >= 3 && maxGap >= 5:
		pack.Cadence = "binge"
		pack.Evidence = []string{fmt.Sprintf("%d attempts in a day + long gaps", maxDayAttempts)}
	default:
		pack.Cadence = "sporadic"
		pack.Evidence = []string{fmt.Sprintf("active on ~%.1f days/week (last 14d)", weekly)}
	}
	return pack
}

// analyzeResponsiveness compares the mean of the last three chronological
// scores against the three immediately before them.
func analyzeResponsiveness(xsChrono []float64) responsivenessPack {
	n := len(xsChrono)
	if n < 4 {
		return responsivenessPack{
			Responsiveness: "unknown",
			Evidence:       []string{"not enough attempts to judge response trend"},
		}
	}

	a := xsChrono[n-3:]
	var b []float64
	if n >= 6 {
		b = xsChrono[n-6 : n-3]
	} else {
		b = xsChrono[:n-3]
	}

	meanA := mean(a)
	meanB := mean(b)
	delta := meanA - meanB

	resp := "flat"
	if delta >= 5 {
		resp = "improving"
	} else if delta <= -5 {
		resp = "declining"
	}

	return responsivenessPack{
		Responsiveness: resp,
		DeltaXP:        round1(delta),
		Evidence: []string{
			fmt.Sprintf("recent avg XP %.1f vs prior %.1f (Δ %.1f)", round1(meanA), round1(meanB), round1(delta)),
		},
	}
}

var topicTitleCaser = cases.Title(language.Und)

// severityOf reads an integer severity, tolerating digit strings.
// Fractional values carry no severity signal and read as absent.
func severityOf(v any) (int, bool) {
	switch t := v.(type) {
	case float64:
		if t == float64(int(t)) && t >= 0 {
			return int(t), true
		}
		return 0, false
	case int:
		if t >= 0 {
			return t, true
		}
		return 0, false
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return 0, false
		}
		for _, r := range s {
			if r < '0' || r > '9' {
				return 0, false
			}
		}
		n := 0
		for _, r := range s {
			n = n*10 + int(r-'0')
		}
		return n, true
	default:
		return 0, false
	}
}

// analyzeStuckLoop looks for one weakness topic repeating across the last
// six chronological reports.
func analyzeStuckLoop(reportsChrono []map[string]any) StuckLoop {
	if len(reportsChrono) == 0 {
		return StuckLoop{Active: false}
	}

	rs := reportsChrono
	if len(rs) > 6 {
		rs = rs[len(rs)-6:]
	}

	type topicSev struct {
		topic string
		sev   *int
	}
	pairs := []topicSev{}
	for _, r := range rs {
		ws, ok := r["weaknesses"].([]any)
		if !ok {
			continue
		}
		for _, raw := range ws {
			w, ok := raw.(map[string]any)
			if !ok {
				continue
			}
			topic := strings.ToLower(strings.TrimSpace(fmt.Sprint(w["topic"])))
			if topic == "" || w["topic"] == nil {
				continue
			}
			p := topicSev{topic: topic}
			if sev, ok := severityOf(w["severity"]); ok {
				p.sev = &sev
			}
			pairs = append(pairs, p)
		}
	}
	if len(pairs) == 0 {
		return StuckLoop{Active: false}
	}

	counts := map[string]int{}
	topTopic, topN := "", 0
	for _, p := range pairs {
		counts[p.topic]++
		if counts[p.topic] > topN {
			topTopic, topN = p.topic, counts[p.topic]
		}
	}

	var avgSev *float64
	sevSum, sevN := 0, 0
	for _, p := range pairs {
		if p.topic == topTopic && p.sev != nil {
			sevSum += *p.sev
			sevN++
		}
	}
	if sevN > 0 {
		v := round2(float64(sevSum) / float64(sevN))
		avgSev = &v
	}

	active := topN >= 3 && (avgSev == nil || *avgSev >= 3)
	title := topicTitleCaser.String(topTopic)

	return StuckLoop{
		Active:        active,
		Topic:         title,
		RepeatsInLast: topN,
		AvgSeverity:   avgSev,
		Evidence:      []string{fmt.Sprintf("'%s' repeats %dx in last %d mocks", title, topN, len(rs))},
	}
}

// analyzeExecutionStyle classifies the error mode over the five most recent
// dominant-error entries (newest-first).
func analyzeExecutionStyle(domErrors []string, volatility int) executionPack {
	if len(domErrors) == 0 {
		return executionPack{ExecutionStyle: "unknown", Evidence: []string{}}
	}

	last5 := domErrors
	if len(last5) > 5 {
		last5 = last5[:5]
	}
	timeN, carelessN, conceptualN := 0, 0, 0
	for _, d := range last5 {
		switch d {
		case ErrorTime:
			timeN++
		case ErrorCareless:
			carelessN++
		case ErrorConceptual:
			conceptualN++
		}
	}

	switch {
	case timeN >= 3:
		return executionPack{
			ExecutionStyle: "panic_cycle",
			Evidence:       []string{fmt.Sprintf("time dominates %d/5 recent mocks", timeN)},
		}
	case carelessN >= 3 && volatility >= 50:
		return executionPack{
			ExecutionStyle: "speed_over_control",
			Evidence:       []string{fmt.Sprintf("careless dominates %d/5 + high volatility", carelessN)},
		}
	case conceptualN >= 3 && volatility < 35:
		return executionPack{
			ExecutionStyle: "control_over_speed",
			Evidence:       []string{fmt.Sprintf("conceptual dominates %d/5 + stable performance", conceptualN)},
		}
	default:
		return executionPack{
			ExecutionStyle: "balanced",
			Evidence:       []string{"no single failure mode dominates consistently"},
		}
	}
}
