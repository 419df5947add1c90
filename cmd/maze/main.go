//go:build ebiten

package main

import (
	"errors"
	"flag"
	"os"

	"mazegen/internal/app"
	"mazegen/internal/core"
	_ "mazegen/internal/maze"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg, err := app.Load(flag.CommandLine, os.Args[1:])
	if err != nil {
		app.NewLogger(os.Stderr, false).Error("load config", "err", err)
		os.Exit(2)
	}
	logger := app.NewLogger(os.Stderr, cfg.Verbose)
	if err := cfg.ValidateViewer(); err != nil {
		logger.Error("invalid configuration", "err", err)
		os.Exit(2)
	}

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		logger.Error("unknown sim", "sim", cfg.Sim, "available", core.SimNames())
		os.Exit(2)
	}

	sim := factory(cfg.SimOptions())
	sim.Reset(cfg.Seed)

	game := app.New(sim, cfg, logger)
	size := sim.Size()

	ebiten.SetWindowTitle("mazegen - " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale+max(cfg.HUDWidth, 0), size.H*cfg.Scale)
	logger.Info("starting", "sim", sim.Name(), "seed", cfg.Seed, "raster", size.W, "tps", cfg.TPS)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Error("run", "err", err)
		os.Exit(1)
	}
}
