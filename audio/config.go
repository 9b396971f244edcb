package audio

import (
	"os"
	"strconv"
	"time"

	"github.com/lixenwraith/mcarea/parameter"
)

// ChimeConfig shapes the completion tone
type ChimeConfig struct {
	SampleRate int
	Frequency  float64
	Duration   time.Duration
	Attack     time.Duration
	Release    time.Duration
	Volume     float64
}

// DefaultChimeConfig returns the compiled-in tone settings
func DefaultChimeConfig() *ChimeConfig {
	return &ChimeConfig{
		SampleRate: parameter.ChimeSampleRate,
		Frequency:  parameter.ChimeFrequency,
		Duration:   parameter.ChimeDuration,
		Attack:     parameter.ChimeAttack,
		Release:    parameter.ChimeRelease,
		Volume:     parameter.ChimeVolume,
	}
}

// LoadChimeConfig loads tone configuration from environment variables
func LoadChimeConfig() *ChimeConfig {
	cfg := DefaultChimeConfig()

	// Volume is given 0-100 and converted to 0.0-1.0
	if volume := os.Getenv(parameter.EnvChimeVolume); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.Volume = float64(val) / 100.0
			if cfg.Volume < 0 {
				cfg.Volume = 0
			}
			if cfg.Volume > 1 {
				cfg.Volume = 1
			}
		}
	}

	if sampleRate := os.Getenv(parameter.EnvChimeSampleRate); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}

	return cfg
}
