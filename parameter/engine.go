package parameter

// Sampler defaults
const (
	// DefaultBatchSize is the number of samples a worker draws per dispatched batch
	// Each batch reseeds the worker generator from (seed, batch index)
	DefaultBatchSize = 1 << 16

	// DefaultSeed is used when no seed is supplied to the library entry points
	DefaultSeed uint64 = 1

	// DefaultConfidence is the two-sided level of the reported interval
	DefaultConfidence = 0.95

	// MaxBatches caps the batch count of one estimate; larger runs grow the batch size instead
	MaxBatches = 1 << 20

	// CancelCheckInterval is how many samples a worker draws between context checks
	CancelCheckInterval = 1 << 16

	// BatchHistogramBins is the bin count of the per-batch estimate histogram
	BatchHistogramBins = 64
)

// DefaultTiers are the sample counts estimated in sequence by the run command
var DefaultTiers = []int{100, 10_000, 1_000_000, 10_000_000}
