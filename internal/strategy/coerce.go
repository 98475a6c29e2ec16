package strategy

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

func stringFromAny(v any) string {
	if v == nil {
		return ""
	}
	switch t := v.(type) {
	case string:
		return t
	default:
		return fmt.Sprint(v)
	}
}

func intFromAny(v any, def int) int {
	switch t := v.(type) {
	case int:
		return t
	case int64:
		return int(t)
	case float64:
		return int(t)
	case json.Number:
		i, _ := t.Int64()
		return int(i)
	default:
		return def
	}
}

// stringSliceFromAny coerces to a list of non-empty strings. A scalar wraps
// into a one-element list; nil and unusable values become an empty list.
func stringSliceFromAny(v any) []string {
	switch t := v.(type) {
	case nil:
		return []string{}
	case []string:
		out := make([]string, 0, len(t))
		for _, s := range t {
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
		}
		return out
	case []any:
		out := make([]string, 0, len(t))
		for _, it := range t {
			if it == nil {
				continue
			}
			if s := strings.TrimSpace(stringFromAny(it)); s != "" {
				out = append(out, s)
			}
		}
		return out
	case string, float64, int, int64, json.Number:
		if s := strings.TrimSpace(stringFromAny(t)); s != "" {
			return []string{s}
		}
		return []string{}
	default:
		return []string{}
	}
}

func mapFromAny(v any) map[string]any {
	m, _ := v.(map[string]any)
	return m
}

// scoreFromAny parses a confidence score into an integer in [0,100]. Null,
// booleans and non-numeric strings default to DefaultScore.
func scoreFromAny(v any) int {
	var f float64
	switch t := v.(type) {
	case float64:
		f = t
	case int:
		f = float64(t)
	case int64:
		f = float64(t)
	case json.Number:
		parsed, err := t.Float64()
		if err != nil {
			return DefaultScore
		}
		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return DefaultScore
		}
		f = parsed
	default:
		return DefaultScore
	}
	if f < 0 {
		f = 0
	}
	if f > 100 {
		f = 100
	}
	return int(f)
}
