package sampler

import (
	"io"
	"runtime"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/mcarea/parameter"
	"github.com/lixenwraith/mcarea/status"
)

// Tracker receives progress as batches complete
// Advance is called concurrently from worker goroutines
type Tracker interface {
	Advance(samples int64)
}

// Options configures an Estimator
type Options struct {
	// Workers is the pool size; <= 0 means GOMAXPROCS
	Workers int
	// Seed is the base of every per-batch generator seed
	Seed uint64
	// BatchSize is the number of samples per dispatched batch; <= 0 means the default
	BatchSize int
	// Confidence is the two-sided interval level in (0, 1); other values mean the default
	Confidence float64

	Logger  *logrus.Logger
	Metrics *status.Registry
	Tracker Tracker
}

// DefaultOptions returns GOMAXPROCS workers with the fixed default seed
func DefaultOptions() Options {
	return Options{
		Workers:    runtime.GOMAXPROCS(0),
		Seed:       parameter.DefaultSeed,
		BatchSize:  parameter.DefaultBatchSize,
		Confidence: parameter.DefaultConfidence,
	}
}

func (o Options) normalized() Options {
	if o.Workers <= 0 {
		o.Workers = runtime.GOMAXPROCS(0)
	}
	if o.BatchSize <= 0 {
		o.BatchSize = parameter.DefaultBatchSize
	}
	if !(o.Confidence > 0 && o.Confidence < 1) {
		o.Confidence = parameter.DefaultConfidence
	}
	if o.Logger == nil {
		o.Logger = logrus.New()
		o.Logger.SetOutput(io.Discard)
	}
	return o
}
