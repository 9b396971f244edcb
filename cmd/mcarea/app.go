package main

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"

	"github.com/lixenwraith/mcarea/audio"
	"github.com/lixenwraith/mcarea/config"
	"github.com/lixenwraith/mcarea/core"
	"github.com/lixenwraith/mcarea/report"
	"github.com/lixenwraith/mcarea/sampler"
	"github.com/lixenwraith/mcarea/spawn"
)

// newApp builds the command tree; the root action is the run command
func newApp() *cli.Command {
	run := &cli.Command{
		Name:   "run",
		Usage:  "spawn or load a scene and estimate its uncovered area at every tier",
		Action: runAction,
	}
	return &cli.Command{
		Name:  "mcarea",
		Usage: "Monte Carlo estimate of the area of a rectangle left uncovered by circles and triangles",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "TOML configuration file",
			},
			&cli.Uint64Flag{
				Name:  "seed",
				Usage: "scene and sampling seed, 0 derives one from the clock",
			},
			&cli.IntFlag{
				Name:  "workers",
				Usage: "sampler pool size, 0 uses GOMAXPROCS",
			},
			&cli.IntFlag{
				Name:  "batch-size",
				Usage: "samples per dispatched batch",
			},
			&cli.StringFlag{
				Name:  "tiers",
				Usage: "comma separated sample counts, e.g. 100,10_000,1_000_000",
			},
			&cli.BoolFlag{
				Name:  "tui",
				Usage: "show the live dashboard",
			},
			&cli.BoolFlag{
				Name:  "chime",
				Usage: "play a tone when all tiers are done",
			},
			&cli.BoolFlag{
				Name:  "progress",
				Usage: "show a progress bar per tier on stderr",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "write debug logs to " + logDir + "/" + logFileName,
			},
		},
		Action: runAction,
		Commands: []*cli.Command{
			run,
			{
				Name:  "scene",
				Usage: "print the scene without sampling",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "save",
						Usage: "write the resolved seed and scene to a TOML file for replay",
					},
				},
				Action: sceneAction,
			},
			{
				Name:  "estimate",
				Usage: "estimate one explicit scene given by flags",
				Flags: []cli.Flag{
					&cli.FloatFlag{
						Name:  "width",
						Value: 20,
					},
					&cli.FloatFlag{
						Name:  "height",
						Value: 25,
					},
					&cli.StringSliceFlag{
						Name:  "circle",
						Usage: "x,y,radius (repeatable)",
					},
					&cli.StringSliceFlag{
						Name:  "triangle",
						Usage: "x,y,side,angle (repeatable)",
					},
					&cli.IntFlag{
						Name:  "samples",
						Value: 1_000_000,
					},
				},
				Action: estimateAction,
			},
		},
	}
}

// loadConfig layers flags over the file and environment
func loadConfig(cmd *cli.Command) (*config.Config, error) {
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return nil, err
	}
	if cmd.IsSet("seed") {
		cfg.Seed = cmd.Uint64("seed")
	}
	if cmd.IsSet("workers") {
		cfg.Workers = cmd.Int("workers")
	}
	if cmd.IsSet("batch-size") {
		cfg.BatchSize = cmd.Int("batch-size")
	}
	if cmd.IsSet("tiers") {
		tiers, err := config.ParseTiers(cmd.String("tiers"))
		if err != nil {
			return nil, err
		}
		cfg.Tiers = tiers
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// resolveSeed maps 0 to a clock-derived seed so every run can be replayed
func resolveSeed(seed uint64, now func() time.Time) uint64 {
	if seed != 0 {
		return seed
	}
	if s := uint64(now().UnixNano()); s != 0 {
		return s
	}
	return 1
}

// buildScene returns the explicit scene from config, or spawns one
func buildScene(cfg *config.Config, seed uint64) (core.ShapeSet, error) {
	if cfg.HasShapes() {
		return cfg.Shapes(), nil
	}
	gen, err := spawn.NewGenerator(cfg.Bounds(), seed)
	if err != nil {
		return core.ShapeSet{}, err
	}
	return gen.Scene(cfg.Rect()), nil
}

func samplerOptions(cfg *config.Config, seed uint64, logger *logrus.Logger) sampler.Options {
	opts := sampler.DefaultOptions()
	if cfg.Workers > 0 {
		opts.Workers = cfg.Workers
	}
	opts.Seed = seed
	opts.BatchSize = cfg.BatchSize
	opts.Logger = logger
	return opts
}

func runAction(ctx context.Context, cmd *cli.Command) error {
	logger, logFile := setupLogging(cmd.Bool("debug"))
	if logFile != nil {
		defer logFile.Close()
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	seed := resolveSeed(cfg.Seed, time.Now)
	set, err := buildScene(cfg, seed)
	if err != nil {
		return err
	}
	logger.WithFields(logrus.Fields{
		"seed":      seed,
		"circles":   len(set.Circles),
		"triangles": len(set.Triangles),
		"tiers":     cfg.Tiers,
	}).Info("run started")

	tr := &tierRun{
		out:      cmd.Root().Writer,
		errOut:   cmd.Root().ErrWriter,
		logger:   logger,
		rect:     cfg.Rect(),
		set:      set,
		tiers:    cfg.Tiers,
		seed:     seed,
		opts:     samplerOptions(cfg, seed, logger),
		progress: cmd.Bool("progress"),
	}

	var results []sampler.Result
	if cmd.Bool("tui") {
		results, err = tr.executeDashboard(ctx)
	} else {
		report.Scene(tr.out, tr.rect, tr.set)
		report.Header(tr.out, seed)
		results, err = tr.execute(ctx, nil)
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(tr.out)
	if err := report.Summary(tr.out, results); err != nil {
		return errors.Wrap(err, "write summary")
	}

	if cmd.Bool("chime") {
		if err := audio.Play(ctx, audio.LoadChimeConfig()); err != nil {
			// Non-fatal, the estimates are already printed
			logger.WithError(err).Warn("chime failed")
		}
	}
	return nil
}

func sceneAction(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	seed := resolveSeed(cfg.Seed, time.Now)
	set, err := buildScene(cfg, seed)
	if err != nil {
		return err
	}

	out := cmd.Root().Writer
	fmt.Fprintf(out, "Seed: %d\n", seed)
	report.Scene(out, cfg.Rect(), set)

	if path := cmd.String("save"); path != "" {
		cfg.Seed = seed
		cfg.SetShapes(set)
		if err := cfg.Save(path); err != nil {
			return err
		}
		fmt.Fprintf(out, "Saved to %s\n", path)
	}
	return nil
}

func estimateAction(ctx context.Context, cmd *cli.Command) error {
	logger, logFile := setupLogging(cmd.Bool("debug"))
	if logFile != nil {
		defer logFile.Close()
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	rect, err := core.NewRectangle(cmd.Float("width"), cmd.Float("height"))
	if err != nil {
		return err
	}
	set, err := parseShapes(cmd.StringSlice("circle"), cmd.StringSlice("triangle"))
	if err != nil {
		return err
	}

	seed := resolveSeed(cfg.Seed, time.Now)
	est := sampler.New(samplerOptions(cfg, seed, logger))
	res, err := est.Estimate(ctx, sampler.Request{
		Rectangle: rect,
		Shapes:    set,
		Samples:   cmd.Int("samples"),
	})
	if err != nil {
		return err
	}

	out := cmd.Root().Writer
	report.Scene(out, rect, set)
	report.Header(out, seed)
	report.Tier(out, res)
	return nil
}
