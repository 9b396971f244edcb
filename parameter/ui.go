package parameter

import "time"

// Dashboard & Reporting
const (
	// DashboardRefreshInterval is the redraw period of the live dashboard
	DashboardRefreshInterval = 100 * time.Millisecond

	// ProgressBarWidth is the cell width of the dashboard progress bars
	ProgressBarWidth = 30

	// ChimeFrequency and ChimeDuration shape the completion tone
	ChimeFrequency = 880
	ChimeDuration  = 150 * time.Millisecond

	// ChimeSampleRate is the speaker sample rate
	ChimeSampleRate = 44100

	// ChimeAttack and ChimeRelease shape the tone envelope
	ChimeAttack  = 5 * time.Millisecond
	ChimeRelease = 60 * time.Millisecond

	// ChimeVolume is the default linear gain, 0 to 1
	ChimeVolume = 0.5
)

// Environment overrides
const (
	EnvWorkers   = "MCAREA_WORKERS"
	EnvSeed      = "MCAREA_SEED"
	EnvBatchSize = "MCAREA_BATCH_SIZE"
	EnvTiers     = "MCAREA_TIERS"

	EnvChimeVolume     = "MCAREA_CHIME_VOLUME"
	EnvChimeSampleRate = "MCAREA_CHIME_SAMPLE_RATE"
)

// Logging
const (
	LogDir      = "logs"
	LogFileName = "mcarea.log"
	MaxLogSize  = 10 * 1024 * 1024
)
