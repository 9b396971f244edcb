package sampler

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"go-hep.org/x/hep/hbook"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/lixenwraith/mcarea/parameter"
)

// Result is the reduced outcome of one Estimate call
type Result struct {
	RunID uuid.UUID

	Samples int64
	Safe    int64

	RectangleArea float64
	// Area is RectangleArea * Safe / Samples, always within [0, RectangleArea]
	Area float64

	// StdErr is the binomial standard error of Area
	StdErr float64
	// Low and High bound the normal-approximation interval at Confidence, clamped to the rectangle
	Confidence float64
	Low, High  float64

	// BatchMean and BatchStdErr summarize per-batch estimates weighted by batch size
	// BatchStdErr is zero for single-batch runs
	Batches     int
	BatchSize   int
	BatchMean   float64
	BatchStdErr float64

	Workers int
	Seed    uint64
	Elapsed time.Duration
}

// CoveredArea returns the estimated area of the union of shapes inside the rectangle
func (r Result) CoveredArea() float64 {
	return r.RectangleArea - r.Area
}

// SafeFraction returns Safe / Samples
func (r Result) SafeFraction() float64 {
	if r.Samples == 0 {
		return 0
	}
	return float64(r.Safe) / float64(r.Samples)
}

// Throughput returns samples per second
func (r Result) Throughput() float64 {
	if r.Elapsed <= 0 {
		return 0
	}
	return float64(r.Samples) / r.Elapsed.Seconds()
}

func (r Result) String() string {
	return fmt.Sprintf("{Samples: %d Safe: %d Area: %.6f StdErr: %.6f CI%.0f: [%.6f, %.6f] Batches: %d Workers: %d Seed: %d}",
		r.Samples, r.Safe, r.Area, r.StdErr, r.Confidence*100, r.Low, r.High, r.Batches, r.Workers, r.Seed)
}

// binomialStdErr is A * sqrt(p(1-p)/n) with p the safe fraction
func binomialStdErr(rectArea float64, safe, n int64) float64 {
	if n <= 0 {
		return 0
	}
	p := float64(safe) / float64(n)
	return rectArea * math.Sqrt(p*(1-p)/float64(n))
}

// interval returns est -/+ z*se with z the two-sided normal quantile, clamped to [0, rectArea]
func interval(est, se, confidence, rectArea float64) (lo, hi float64) {
	z := distuv.UnitNormal.Quantile(0.5 + confidence/2)
	lo = math.Max(0, est-z*se)
	hi = math.Min(rectArea, est+z*se)
	return lo, hi
}

// batchSpread fills a weighted histogram of per-batch estimates and returns its mean and standard error
func batchSpread(counts []int64, p plan, rectArea float64) (mean, stderr float64) {
	// Upper edge nudged past rectArea so all-safe batches land in the last bin
	h := hbook.NewH1D(parameter.BatchHistogramBins, 0, math.Nextafter(rectArea, math.Inf(1)))
	for b, c := range counts {
		n := float64(p.size(b))
		h.Fill(rectArea*float64(c)/n, n)
	}
	mean = h.XMean()
	if len(counts) < 2 {
		return mean, 0
	}
	stderr = h.XStdErr()
	if math.IsNaN(stderr) {
		stderr = 0
	}
	return mean, stderr
}
