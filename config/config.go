// Package config loads run settings from defaults, an optional TOML file and the environment.
package config

import (
	"bytes"
	"os"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"

	"github.com/lixenwraith/mcarea/core"
	"github.com/lixenwraith/mcarea/parameter"
	"github.com/lixenwraith/mcarea/spawn"
)

// ErrInvalidConfig wraps every validation failure
var ErrInvalidConfig = errors.New("invalid config")

// invalidError matches ErrInvalidConfig and still unwraps to the underlying cause
type invalidError struct {
	err error
}

func invalid(err error) error {
	return &invalidError{err: err}
}

func (e *invalidError) Error() string {
	return ErrInvalidConfig.Error() + ": " + e.err.Error()
}

func (e *invalidError) Unwrap() error { return e.err }

func (e *invalidError) Is(target error) bool { return target == ErrInvalidConfig }

// Config holds the runtime configuration of a run
// Fields are loaded from TOML and may be overridden by environment and flags
type Config struct {
	// Workers is the sampler pool size; 0 means GOMAXPROCS
	Workers int `toml:"workers"`
	// Seed drives scene generation and sampling; 0 means derive from the clock
	Seed      uint64 `toml:"seed"`
	BatchSize int    `toml:"batch_size"`
	Tiers     []int  `toml:"tiers"`

	Rectangle RectangleConfig `toml:"rectangle"`
	Spawn     SpawnConfig     `toml:"spawn"`

	// Explicit shapes; when any are present the scene is not spawned
	Circles   []CircleConfig   `toml:"circle,omitempty"`
	Triangles []TriangleConfig `toml:"triangle,omitempty"`
}

type RectangleConfig struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

type SpawnConfig struct {
	MaxCircles      int     `toml:"max_circles"`
	MaxTriangles    int     `toml:"max_triangles"`
	MaxCircleRadius float64 `toml:"max_circle_radius"`
	MaxTriangleSide float64 `toml:"max_triangle_side"`
}

type CircleConfig struct {
	X      float64 `toml:"x"`
	Y      float64 `toml:"y"`
	Radius float64 `toml:"radius"`
}

type TriangleConfig struct {
	X     float64 `toml:"x"`
	Y     float64 `toml:"y"`
	Side  float64 `toml:"side"`
	Angle float64 `toml:"angle"`
}

// DefaultConfig returns a Config populated with the compile-time defaults
func DefaultConfig() *Config {
	return &Config{
		BatchSize: parameter.DefaultBatchSize,
		Tiers:     append([]int(nil), parameter.DefaultTiers...),
		Rectangle: RectangleConfig{
			Width:  parameter.DefaultRectWidth,
			Height: parameter.DefaultRectHeight,
		},
		Spawn: SpawnConfig{
			MaxCircles:      parameter.MaxCircles,
			MaxTriangles:    parameter.MaxTriangles,
			MaxCircleRadius: parameter.MaxCircleRadius,
			MaxTriangleSide: parameter.MaxTriangleSide,
		},
	}
}

// Load reads defaults overlaid with the TOML file at path, then the environment
// Empty path skips the file; unknown keys are rejected
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrap(err, "read config")
		}
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(cfg); err != nil {
			return nil, errors.Wrapf(err, "decode %s", path)
		}
	}
	cfg.ApplyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv overrides fields from MCAREA_* variables; unparsable values are ignored
func (c *Config) ApplyEnv() {
	if v := os.Getenv(parameter.EnvWorkers); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Workers = n
		}
	}
	if v := os.Getenv(parameter.EnvSeed); v != "" {
		if n, err := strconv.ParseUint(v, 10, 64); err == nil {
			c.Seed = n
		}
	}
	if v := os.Getenv(parameter.EnvBatchSize); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.BatchSize = n
		}
	}
	if v := os.Getenv(parameter.EnvTiers); v != "" {
		if tiers, err := ParseTiers(v); err == nil {
			c.Tiers = tiers
		}
	}
}

// ParseTiers parses a comma separated list of sample counts; underscores are allowed as digit separators
func ParseTiers(s string) ([]int, error) {
	var tiers []int
	for _, f := range strings.Split(s, ",") {
		f = strings.ReplaceAll(strings.TrimSpace(f), "_", "")
		if f == "" {
			continue
		}
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, errors.Wrapf(ErrInvalidConfig, "tier %q", f)
		}
		tiers = append(tiers, n)
	}
	if len(tiers) == 0 {
		return nil, errors.Wrap(ErrInvalidConfig, "empty tier list")
	}
	return tiers, nil
}

// Validate reports the first invalid field
func (c *Config) Validate() error {
	if c.Workers < 0 {
		return errors.Wrapf(ErrInvalidConfig, "workers %d", c.Workers)
	}
	if c.BatchSize <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "batch_size %d", c.BatchSize)
	}
	if len(c.Tiers) == 0 {
		return errors.Wrap(ErrInvalidConfig, "no tiers")
	}
	for _, n := range c.Tiers {
		if n <= 0 {
			return errors.Wrapf(ErrInvalidConfig, "tier %d", n)
		}
	}
	if err := c.Rect().Validate(); err != nil {
		return invalid(err)
	}
	if err := c.Bounds().Validate(); err != nil {
		return invalid(err)
	}
	if err := c.Shapes().Validate(); err != nil {
		return invalid(err)
	}
	return nil
}

// Rect returns the configured sampling domain
func (c *Config) Rect() core.Rectangle {
	return core.Rectangle{Width: c.Rectangle.Width, Height: c.Rectangle.Height}
}

// Bounds returns the spawn maxima
func (c *Config) Bounds() spawn.Bounds {
	return spawn.Bounds{
		MaxCircles:      c.Spawn.MaxCircles,
		MaxTriangles:    c.Spawn.MaxTriangles,
		MaxCircleRadius: c.Spawn.MaxCircleRadius,
		MaxTriangleSide: c.Spawn.MaxTriangleSide,
	}
}

// HasShapes reports whether the file lists an explicit scene
func (c *Config) HasShapes() bool {
	return len(c.Circles)+len(c.Triangles) > 0
}

// Shapes converts the explicit scene
func (c *Config) Shapes() core.ShapeSet {
	var set core.ShapeSet
	for _, cc := range c.Circles {
		set.Circles = append(set.Circles, core.Circle{Center: core.Point{X: cc.X, Y: cc.Y}, Radius: cc.Radius})
	}
	for _, tc := range c.Triangles {
		set.Triangles = append(set.Triangles, core.Triangle{Center: core.Point{X: tc.X, Y: tc.Y}, Side: tc.Side, Angle: tc.Angle})
	}
	return set
}

// SetShapes replaces the explicit scene, used to save a spawned scene for replay
func (c *Config) SetShapes(set core.ShapeSet) {
	c.Circles = c.Circles[:0]
	c.Triangles = c.Triangles[:0]
	for _, cc := range set.Circles {
		c.Circles = append(c.Circles, CircleConfig{X: cc.Center.X, Y: cc.Center.Y, Radius: cc.Radius})
	}
	for _, tc := range set.Triangles {
		c.Triangles = append(c.Triangles, TriangleConfig{X: tc.Center.X, Y: tc.Center.Y, Side: tc.Side, Angle: tc.Angle})
	}
}

// Save writes the configuration as TOML
func (c *Config) Save(path string) error {
	data, err := toml.Marshal(c)
	if err != nil {
		return errors.Wrap(err, "encode config")
	}
	return errors.Wrap(os.WriteFile(path, data, 0o644), "write config")
}
