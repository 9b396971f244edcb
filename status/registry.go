package status

import "sync/atomic"

// Metric keys published by the sampler
const (
	KeySamplesTotal = "sampler.samples_total"
	KeySamplesDone  = "sampler.samples_done"
	KeySafe         = "sampler.safe"
	KeyBatchesDone  = "sampler.batches_done"
	KeyWorkers      = "sampler.workers"
	KeyEstimate     = "sampler.estimate"
	KeyRectArea     = "sampler.rectangle_area"
	KeyRunID        = "sampler.run_id"
	KeyRuns         = "sampler.runs"
	KeySeconds      = "sampler.seconds_total"
)

// Registry is the central metrics facade
// Producers cache pointers once per run; hot paths write directly to atomics
type Registry struct {
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Ints.Count() + r.Floats.Count() + r.Strings.Count()
}

// Fields flattens every metric into one map keyed by metric name, for structured logging
func (r *Registry) Fields() map[string]any {
	fields := make(map[string]any, r.TotalCount())
	r.Ints.Range(func(key string, ptr *atomic.Int64) {
		fields[key] = ptr.Load()
	})
	r.Floats.Range(func(key string, ptr *AtomicFloat) {
		fields[key] = ptr.Get()
	})
	r.Strings.Range(func(key string, ptr *AtomicString) {
		fields[key] = ptr.Load()
	})
	return fields
}

// Progress is a point-in-time view of the sampler counters
type Progress struct {
	RunID    string
	Total    int64
	Done     int64
	Safe     int64
	Batches  int64
	Workers  int64
	Estimate float64
	RectArea float64
	Runs     int64
	// Seconds is the wall time of every finished run added together
	Seconds float64
}

// Fraction returns Done/Total clamped to [0, 1]
func (p Progress) Fraction() float64 {
	if p.Total <= 0 {
		return 0
	}
	f := float64(p.Done) / float64(p.Total)
	if f > 1 {
		return 1
	}
	return f
}

// Running returns the estimate implied by the counters so far
func (p Progress) Running() float64 {
	if p.Done <= 0 {
		return 0
	}
	return p.RectArea * (float64(p.Safe) / float64(p.Done))
}

// Snapshot reads the sampler counters; individual loads are atomic, the set is not
func (r *Registry) Snapshot() Progress {
	return Progress{
		RunID:    r.Strings.Get(KeyRunID).Load(),
		Total:    r.Ints.Get(KeySamplesTotal).Load(),
		Done:     r.Ints.Get(KeySamplesDone).Load(),
		Safe:     r.Ints.Get(KeySafe).Load(),
		Batches:  r.Ints.Get(KeyBatchesDone).Load(),
		Workers:  r.Ints.Get(KeyWorkers).Load(),
		Estimate: r.Floats.Get(KeyEstimate).Get(),
		RectArea: r.Floats.Get(KeyRectArea).Get(),
		Runs:     r.Ints.Get(KeyRuns).Load(),
		Seconds:  r.Floats.Get(KeySeconds).Get(),
	}
}
