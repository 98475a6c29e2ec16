package insights

import (
	"sort"
	"strings"
	"time"
)

// featureSet holds the aligned series derived from the raw attempts.
// scores, reports and reportDates are aligned per usable attempt and keep
// the newest-first input order. domErrors only covers attempts whose
// error_types mapping is non-empty. dates covers every attempt with a
// parseable timestamp regardless of report usability.
type featureSet struct {
	scores      []float64
	reports     []map[string]any
	reportDates []*time.Time
	domErrors   []string
	dates       []time.Time
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// parseTimestamp accepts ISO-8601-like strings. A trailing "Z" reads as UTC
// offset zero; layouts without a zone are taken as UTC.
func parseTimestamp(v any) (time.Time, bool) {
	switch t := v.(type) {
	case time.Time:
		return t, true
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return time.Time{}, false
		}
		for _, layout := range timestampLayouts {
			if ts, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
				return ts, true
			}
		}
		return time.Time{}, false
	default:
		return time.Time{}, false
	}
}

// errorKindRank fixes the tie-break order for dominant-error selection so
// the result does not depend on map iteration order.
func errorKindRank(kind string) int {
	switch kind {
	case ErrorConceptual:
		return 0
	case ErrorCareless:
		return 1
	case ErrorTime:
		return 2
	case ErrorComprehension:
		return 3
	default:
		return 4
	}
}

// dominantError returns the error kind with the maximum weight, or "" when
// the mapping is empty. Ties resolve by the canonical kind order, then name.
func dominantError(errorTypes map[string]any) string {
	if len(errorTypes) == 0 {
		return ""
	}
	kinds := make([]string, 0, len(errorTypes))
	for k := range errorTypes {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool {
		ri, rj := errorKindRank(kinds[i]), errorKindRank(kinds[j])
		if ri != rj {
			return ri < rj
		}
		return kinds[i] < kinds[j]
	})
	dom := kinds[0]
	best := safeNum(errorTypes[dom], 0)
	for _, k := range kinds[1:] {
		if w := safeNum(errorTypes[k], 0); w > best {
			dom, best = k, w
		}
	}
	return dom
}

func errorTypesOf(report map[string]any) map[string]any {
	et, _ := report["error_types"].(map[string]any)
	return et
}

// focusScore derives the 0..100 focus score of one report: the explicit
// value when present, otherwise 100 minus the time-error weight.
func focusScore(report map[string]any) float64 {
	v, ok := report["focus_score"]
	if !ok || v == nil {
		// accept the pre-rename field written by older analyzer versions
		v, ok = report["focusXP"]
	}
	if !ok || v == nil {
		et := errorTypesOf(report)
		v = 100 - safeNum(et[ErrorTime], 0)
	}
	return clamp(safeNum(v, 0), 0, 100)
}

func extractFeatures(attempts []AttemptRecord) featureSet {
	fs := featureSet{}
	for _, a := range attempts {
		ts, tsOK := parseTimestamp(a.CreatedAt)
		if tsOK {
			fs.dates = append(fs.dates, ts)
		}

		report, ok := a.Report.(map[string]any)
		if !ok || report == nil {
			continue
		}
		fs.reports = append(fs.reports, report)
		fs.scores = append(fs.scores, focusScore(report))
		if tsOK {
			t := ts
			fs.reportDates = append(fs.reportDates, &t)
		} else {
			fs.reportDates = append(fs.reportDates, nil)
		}

		if dom := dominantError(errorTypesOf(report)); dom != "" {
			fs.domErrors = append(fs.domErrors, dom)
		}
	}
	return fs
}

// reversedFloats returns a chronological (oldest-first) copy of a
// newest-first series.
func reversedFloats(xs []float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[len(xs)-1-i] = x
	}
	return out
}

func reversedReports(rs []map[string]any) []map[string]any {
	out := make([]map[string]any, len(rs))
	for i, r := range rs {
		out[len(rs)-1-i] = r
	}
	return out
}

func reversedDates(ds []*time.Time) []*time.Time {
	out := make([]*time.Time, len(ds))
	for i, d := range ds {
		out[len(ds)-1-i] = d
	}
	return out
}
