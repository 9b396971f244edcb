// Package sampler estimates the part of a rectangle not covered by a shape set using Monte Carlo sampling.
//
// Samples are split into fixed-size batches that a pool of workers pulls from a channel.
// A worker owns one generator and reseeds it from (seed, batch index) at the start of each batch,
// so the estimate depends only on the seed, batch size and sample count, never on worker count
// or scheduling. Every batch writes its safe count into a private slot; the slots are summed once
// all workers have returned.
package sampler

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/mcarea/core"
	"github.com/lixenwraith/mcarea/parameter"
	"github.com/lixenwraith/mcarea/status"
	"github.com/lixenwraith/mcarea/vmath"
)

// Request is one estimation: a domain, the excluded shapes and a sample count
type Request struct {
	Rectangle core.Rectangle
	Shapes    core.ShapeSet
	Samples   int
}

// Estimator runs requests with a fixed configuration
// Safe for concurrent use; each Estimate call has its own pool
type Estimator struct {
	opts Options
}

// New creates an Estimator, filling unset options with defaults
func New(opts Options) *Estimator {
	return &Estimator{opts: opts.normalized()}
}

// Options returns the effective configuration
func (e *Estimator) Options() Options {
	return e.opts
}

// CalculateArea estimates the uncovered area with default options
func CalculateArea(rect core.Rectangle, circles []core.Circle, triangles []core.Triangle, samples int) (float64, error) {
	res, err := New(DefaultOptions()).Estimate(context.Background(), Request{
		Rectangle: rect,
		Shapes:    core.ShapeSet{Circles: circles, Triangles: triangles},
		Samples:   samples,
	})
	if err != nil {
		return 0, err
	}
	return res.Area, nil
}

// Estimate validates the request, samples it in parallel and returns the reduced result
// Cancellation stops dispatch; a cancelled run returns the context error and no result
func (e *Estimator) Estimate(ctx context.Context, req Request) (Result, error) {
	if req.Samples <= 0 {
		return Result{}, errors.Wrapf(ErrInvalidSampleCount, "samples %d", req.Samples)
	}
	if err := req.Rectangle.Validate(); err != nil {
		return Result{}, err
	}
	if err := req.Shapes.Validate(); err != nil {
		return Result{}, err
	}

	if err := ctx.Err(); err != nil {
		return Result{}, errors.Wrap(err, "estimate aborted")
	}

	p := newPlan(req.Samples, e.opts.BatchSize, e.opts.Workers)
	runID := uuid.New()
	rectArea := req.Rectangle.Area()
	shapes := req.Shapes.Flatten()
	seed := e.opts.Seed

	log := e.opts.Logger.WithFields(logrus.Fields{
		"run_id":  runID.String(),
		"samples": req.Samples,
		"workers": p.workers,
		"batches": p.batches,
		"seed":    seed,
	})
	log.Debug("estimate started")

	prog := e.startProgress(runID, int64(req.Samples), p.workers, rectArea)
	counts := make([]int64, p.batches)
	start := time.Now()

	g, gctx := errgroup.WithContext(ctx)
	jobs := make(chan int)

	g.Go(func() error {
		defer close(jobs)
		for b := 0; b < p.batches; b++ {
			if err := gctx.Err(); err != nil {
				return err
			}
			select {
			case jobs <- b:
			case <-gctx.Done():
				return gctx.Err()
			}
		}
		return nil
	})

	for w := 0; w < p.workers; w++ {
		g.Go(func() error {
			var rng vmath.FastRand
			for b := range jobs {
				n := p.size(b)
				rng.Seed(vmath.SeedFor(seed, b))
				safe, err := countSafe(gctx, req.Rectangle, shapes, n, &rng)
				if err != nil {
					return err
				}
				counts[b] = safe
				prog.advance(int64(n), safe)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		log.WithError(err).Warn("estimate aborted")
		return Result{}, errors.Wrap(err, "estimate aborted")
	}

	var safe int64
	for _, c := range counts {
		safe += c
	}

	res := Result{
		RunID:         runID,
		Samples:       int64(req.Samples),
		Safe:          safe,
		RectangleArea: rectArea,
		Area:          rectArea * (float64(safe) / float64(req.Samples)),
		Confidence:    e.opts.Confidence,
		Batches:       p.batches,
		BatchSize:     p.batchSize,
		Workers:       p.workers,
		Seed:          seed,
		Elapsed:       time.Since(start),
	}
	res.StdErr = binomialStdErr(rectArea, safe, res.Samples)
	res.Low, res.High = interval(res.Area, res.StdErr, res.Confidence, rectArea)
	res.BatchMean, res.BatchStdErr = batchSpread(counts, p, rectArea)

	prog.finish(res.Area, res.Elapsed)
	log.WithFields(logrus.Fields{
		"area":    res.Area,
		"stderr":  res.StdErr,
		"elapsed": res.Elapsed,
	}).Info("estimate finished")

	return res, nil
}

// countSafe draws n points and counts those outside every shape
// ctx is polled every CancelCheckInterval samples
func countSafe(ctx context.Context, rect core.Rectangle, shapes []core.Shape, n int, rng *vmath.FastRand) (int64, error) {
	var safe int64
	for i := 0; i < n; i++ {
		if i > 0 && i%parameter.CancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return safe, err
			}
		}
		p := vmath.RectRandomPoint(rect, rng)
		if !vmath.InsideAny(p, shapes) {
			safe++
		}
	}
	return safe, nil
}

// plan partitions samples into batches and caps the pool at the batch count
// The batch size grows when the requested one would exceed MaxBatches
type plan struct {
	samples   int
	batchSize int
	batches   int
	workers   int
}

func newPlan(samples, batchSize, workers int) plan {
	batches := (samples-1)/batchSize + 1
	if batches > parameter.MaxBatches {
		batchSize = (samples-1)/parameter.MaxBatches + 1
		batches = (samples-1)/batchSize + 1
	}
	if workers > batches {
		workers = batches
	}
	return plan{samples: samples, batchSize: batchSize, batches: batches, workers: workers}
}

// size returns the sample count of batch b; only the last batch may be short
func (p plan) size(b int) int {
	if b == p.batches-1 {
		return p.samples - b*p.batchSize
	}
	return p.batchSize
}

// progress fans batch completions out to the metrics registry and the tracker
type progress struct {
	tracker Tracker
	metrics *status.Registry
	done    *atomic.Int64
	safe    *atomic.Int64
	batches *atomic.Int64
}

func (e *Estimator) startProgress(runID uuid.UUID, total int64, workers int, rectArea float64) *progress {
	p := &progress{tracker: e.opts.Tracker, metrics: e.opts.Metrics}
	m := e.opts.Metrics
	if m == nil {
		return p
	}

	m.Strings.Get(status.KeyRunID).Store(runID.String())
	m.Ints.Get(status.KeySamplesTotal).Store(total)
	m.Ints.Get(status.KeyWorkers).Store(int64(workers))
	m.Floats.Get(status.KeyRectArea).Set(rectArea)
	m.Floats.Get(status.KeyEstimate).Set(0)

	p.done = m.Ints.Get(status.KeySamplesDone)
	p.safe = m.Ints.Get(status.KeySafe)
	p.batches = m.Ints.Get(status.KeyBatchesDone)
	p.done.Store(0)
	p.safe.Store(0)
	p.batches.Store(0)
	return p
}

func (p *progress) advance(n, safe int64) {
	if p.metrics != nil {
		p.done.Add(n)
		p.safe.Add(safe)
		p.batches.Add(1)
	}
	if p.tracker != nil {
		p.tracker.Advance(n)
	}
}

func (p *progress) finish(area float64, elapsed time.Duration) {
	if p.metrics == nil {
		return
	}
	p.metrics.Floats.Get(status.KeyEstimate).Set(area)
	p.metrics.Floats.Get(status.KeySeconds).Add(elapsed.Seconds())
	p.metrics.Ints.Get(status.KeyRuns).Add(1)
}
