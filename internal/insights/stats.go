package insights

import (
	"math"
	"strconv"
	"strings"
)

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// safeNum coerces JSON-shaped values to a float64, falling back to def for
// anything non-numeric.
func safeNum(v any, def float64) float64 {
	switch t := v.(type) {
	case float64:
		return t
	case float32:
		return float64(t)
	case int:
		return float64(t)
	case int64:
		return float64(t)
	case bool:
		if t {
			return 1
		}
		return 0
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return def
		}
		return f
	default:
		return def
	}
}

// linSlope is the ordinary least-squares slope of xs against index
// positions 0..n-1. Zero when fewer than two samples.
func linSlope(xs []float64) float64 {
	n := len(xs)
	if n < 2 {
		return 0
	}
	var xMean, yMean float64
	for i, y := range xs {
		xMean += float64(i)
		yMean += y
	}
	xMean /= float64(n)
	yMean /= float64(n)

	var num, den float64
	for i, y := range xs {
		dx := float64(i) - xMean
		num += dx * (y - yMean)
		den += dx * dx
	}
	if den == 0 {
		den = 1e-9
	}
	return num / den
}

// stddev is the sample standard deviation (n-1 divisor). Zero when fewer
// than two samples.
func stddev(xs []float64) float64 {
	if len(xs) < 2 {
		return 0
	}
	var m float64
	for _, x := range xs {
		m += x
	}
	m /= float64(len(xs))

	var v float64
	for _, x := range xs {
		d := x - m
		v += d * d
	}
	v /= float64(len(xs) - 1)
	return math.Sqrt(v)
}

func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	var m float64
	for _, x := range xs {
		m += x
	}
	return m / float64(len(xs))
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
