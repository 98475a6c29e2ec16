package insights

import (
	"math"
	"testing"
)

func TestLinSlope_AllEqualIsZero(t *testing.T) {
	xs := []float64{50, 50, 50, 50}
	if got := linSlope(xs); got != 0 {
		t.Fatalf("slope = %v, want 0", got)
	}
	if trend := classifyTrend(linSlope(xs)); trend != "plateau" {
		t.Fatalf("trend = %q, want plateau", trend)
	}
}

func TestLinSlope_TrendBands(t *testing.T) {
	up := []float64{50, 55, 60}
	if slope := linSlope(up); slope <= 1.2 {
		t.Fatalf("slope = %v, want > 1.2", slope)
	}
	if trend := classifyTrend(linSlope(up)); trend != "improving" {
		t.Fatalf("trend = %q, want improving", trend)
	}

	down := []float64{60, 55, 50}
	if trend := classifyTrend(linSlope(down)); trend != "declining" {
		t.Fatalf("trend = %q, want declining", trend)
	}
}

func TestLinSlope_ShortSeries(t *testing.T) {
	if got := linSlope(nil); got != 0 {
		t.Fatalf("slope(nil) = %v, want 0", got)
	}
	if got := linSlope([]float64{42}); got != 0 {
		t.Fatalf("slope([x]) = %v, want 0", got)
	}
}

func TestStddev_Degenerate(t *testing.T) {
	if got := stddev([]float64{77}); got != 0 {
		t.Fatalf("std([x]) = %v, want 0", got)
	}
	if got := stddev(nil); got != 0 {
		t.Fatalf("std([]) = %v, want 0", got)
	}
}

func TestStddev_SampleDivisor(t *testing.T) {
	// sample std of {2,4,4,4,5,5,7,9} with n-1 divisor is ~2.138
	got := stddev([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	if math.Abs(got-2.138) > 0.01 {
		t.Fatalf("std = %v, want ~2.138", got)
	}
}

func TestVolatilityScore_Bounds(t *testing.T) {
	for _, std := range []float64{0, 1, 5.5, 12, 50, 1000} {
		v := volatilityScore(std)
		if v < 0 || v > 100 {
			t.Fatalf("volatility(%v) = %d, out of [0,100]", std, v)
		}
	}
	if v := volatilityScore(10); v != 60 {
		t.Fatalf("volatility(10) = %d, want 60", v)
	}
}

func TestSafeNum(t *testing.T) {
	if got := safeNum("12.5", 0); got != 12.5 {
		t.Fatalf("safeNum(\"12.5\") = %v", got)
	}
	if got := safeNum(nil, 7); got != 7 {
		t.Fatalf("safeNum(nil) = %v, want default", got)
	}
	if got := safeNum("not a number", 3); got != 3 {
		t.Fatalf("safeNum(garbage) = %v, want default", got)
	}
}

func TestClassifyConsistency(t *testing.T) {
	cases := []struct {
		std  float64
		want string
	}{
		{0, "high"},
		{5.9, "high"},
		{6, "medium"},
		{11.9, "medium"},
		{12, "low"},
		{40, "low"},
	}
	for _, tc := range cases {
		if got := classifyConsistency(tc.std); got != tc.want {
			t.Fatalf("consistency(%v) = %q, want %q", tc.std, got, tc.want)
		}
	}
}
