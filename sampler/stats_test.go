package sampler

import (
	"math"
	"testing"
	"time"
)

// TestBinomialStdErr checks the closed form and degenerate fractions
func TestBinomialStdErr(t *testing.T) {
	// p = 0.5, n = 10000: 500 * sqrt(0.25/10000) = 2.5
	if got := binomialStdErr(500, 5000, 10000); math.Abs(got-2.5) > 1e-12 {
		t.Errorf("Expected 2.5, got %f", got)
	}
	if binomialStdErr(500, 0, 100) != 0 || binomialStdErr(500, 100, 100) != 0 {
		t.Error("Expected zero stderr for p in {0, 1}")
	}
	if binomialStdErr(500, 0, 0) != 0 {
		t.Error("Expected zero stderr for empty sample")
	}
}

// TestInterval checks the 95% normal quantile and clamping
func TestInterval(t *testing.T) {
	lo, hi := interval(100, 1, 0.95, 500)
	if math.Abs(lo-(100-1.959964)) > 1e-5 || math.Abs(hi-(100+1.959964)) > 1e-5 {
		t.Errorf("Expected [98.040036, 101.959964], got [%f, %f]", lo, hi)
	}

	lo, hi = interval(1, 5, 0.95, 10)
	if lo != 0 || hi != 10 {
		t.Errorf("Expected clamped [0, 10], got [%f, %f]", lo, hi)
	}
}

// TestBatchSpreadUniform verifies identical batches give zero spread
func TestBatchSpreadUniform(t *testing.T) {
	p := newPlan(50, 10, 2)
	mean, stderr := batchSpread([]int64{5, 5, 5, 5, 5}, p, 500)
	if math.Abs(mean-250) > 1e-9 {
		t.Errorf("Expected mean 250, got %f", mean)
	}
	if math.Abs(stderr) > 1e-9 {
		t.Errorf("Expected zero stderr, got %f", stderr)
	}
}

// TestBatchSpreadWeighted verifies the short batch is weighted by its size
func TestBatchSpreadWeighted(t *testing.T) {
	// Batches of 10, 10, 5 with safe fractions 1, 0, 1
	p := newPlan(25, 10, 1)
	mean, stderr := batchSpread([]int64{10, 0, 5}, p, 100)
	want := (100*10 + 0*10 + 100*5) / 25.0
	if math.Abs(mean-want) > 1e-9 {
		t.Errorf("Expected weighted mean %f, got %f", want, mean)
	}
	if stderr <= 0 {
		t.Errorf("Expected positive stderr, got %f", stderr)
	}

	single := newPlan(5, 10, 1)
	if _, se := batchSpread([]int64{3}, single, 100); se != 0 {
		t.Errorf("Expected zero stderr for one batch, got %f", se)
	}
}

// TestResultDerived checks derived accessors
func TestResultDerived(t *testing.T) {
	r := Result{Samples: 1000, Safe: 250, RectangleArea: 400, Area: 100, Elapsed: 2 * time.Second}
	if r.CoveredArea() != 300 {
		t.Errorf("Expected covered area 300, got %f", r.CoveredArea())
	}
	if r.SafeFraction() != 0.25 {
		t.Errorf("Expected safe fraction 0.25, got %f", r.SafeFraction())
	}
	if r.Throughput() != 500 {
		t.Errorf("Expected 500 samples/s, got %f", r.Throughput())
	}
	if (Result{}).SafeFraction() != 0 || (Result{}).Throughput() != 0 {
		t.Error("Expected zero derived values for empty result")
	}
}
