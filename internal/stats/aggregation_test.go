package stats

import (
	"math"
	"testing"
)

func TestMean(t *testing.T) {
	if got := Mean([]float64{80, 90, 100}); got != 90 {
		t.Fatalf("expected 90, got %g", got)
	}
	if got := Mean(nil); got != 0 {
		t.Fatalf("mean of empty slice should be 0, got %g", got)
	}
}

func TestVariance(t *testing.T) {
	if got := Variance([]float64{2, 4, 4, 4, 5, 5, 7, 9}); math.Abs(got-4.571428571428571) > 1e-9 {
		t.Fatalf("unexpected sample variance: %g", got)
	}
	if got := Variance([]float64{5}); got != 0 {
		t.Fatalf("variance of a single value should be 0, got %g", got)
	}
}

func TestStdDevOfConstantSeries(t *testing.T) {
	if got := StdDev([]float64{3, 3, 3, 3}); got != 0 {
		t.Fatalf("expected 0, got %g", got)
	}
}

func TestMax(t *testing.T) {
	if got := Max([]float64{1.5, 9.25, 3}); got != 9.25 {
		t.Fatalf("expected 9.25, got %g", got)
	}
	if got := Max(nil); got != 0 {
		t.Fatalf("max of empty slice should be 0, got %g", got)
	}
}

func TestRatio(t *testing.T) {
	if got := Ratio(6, 10); got != 0.6 {
		t.Fatalf("expected 0.6, got %g", got)
	}
	got := Ratio(0, 0)
	if got != 0 {
		t.Fatalf("zero attempts must yield exactly 0, got %g", got)
	}
	if math.IsNaN(got) {
		t.Fatal("zero attempts must not yield NaN")
	}
}
