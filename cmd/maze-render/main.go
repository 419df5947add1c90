package main

import (
	"bufio"
	"context"
	"flag"
	"os"
	"os/signal"

	"mazegen/internal/app"
	"mazegen/internal/core"
	"mazegen/internal/maze"
	"mazegen/internal/render"

	"github.com/muesli/termenv"
)

func main() {
	steps := flag.Int("steps", 0, "generator steps to run (0 runs to completion)")
	pngPath := flag.String("png", "", "also write the maze to this PNG file")
	cellPx := flag.Int("cell-px", render.DefaultImageOptions().CellPx, "PNG pixels per cell")
	useColor := flag.Bool("color", true, "colorize terminal output")
	animate := flag.Bool("animate", false, "redraw the maze every tick while it grows")
	quiet := flag.Bool("quiet", false, "do not print the maze")

	cfg, err := app.Load(flag.CommandLine, os.Args[1:])
	if err != nil {
		app.NewLogger(os.Stderr, false).Error("load config", "err", err)
		os.Exit(2)
	}
	logger := app.NewLogger(os.Stderr, cfg.Verbose)
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "err", err)
		os.Exit(2)
	}

	m, err := maze.New(cfg.MazeConfig())
	if err != nil {
		logger.Error("build maze", "err", err)
		os.Exit(2)
	}

	out := termenv.NewOutput(os.Stdout)
	profile := out.EnvColorProfile()
	if !*useColor {
		profile = termenv.Ascii
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if *animate && !*quiet {
		runAnimated(ctx, out, profile, m, cfg.TPS, *steps)
	} else {
		maze.RunToCompletion(m.Generator(), *steps)
	}

	gen := m.Generator()
	stats := maze.Analyze(m.Grid())
	logger.Info("generated",
		"algorithm", cfg.Sim,
		"seed", cfg.Seed,
		"cols", m.Grid().Cols(),
		"steps", gen.Steps(),
		"done", gen.Done(),
		"dead_ends", stats.DeadEnds,
		"diameter", stats.Diameter,
	)

	if !*quiet && !*animate {
		w := bufio.NewWriter(os.Stdout)
		if err := render.ASCII(w, m.Grid(), gen, profile); err != nil {
			logger.Error("print maze", "err", err)
			os.Exit(1)
		}
		if err := w.Flush(); err != nil {
			logger.Error("print maze", "err", err)
			os.Exit(1)
		}
	}

	if *pngPath != "" {
		opts := render.DefaultImageOptions()
		opts.CellPx = *cellPx
		if err := render.WritePNG(*pngPath, m.Grid(), gen, opts); err != nil {
			logger.Error("write png", "err", err)
			os.Exit(1)
		}
		logger.Info("wrote png", "path", *pngPath)
	}
}

// runAnimated steps the maze at tps and redraws it in place until it is done,
// the step budget is spent or ctx is cancelled.
func runAnimated(ctx context.Context, out *termenv.Output, profile termenv.Profile, m *maze.Maze, tps, budget int) {
	timer := core.NewFixedStep(tps)
	out.HideCursor()
	defer out.ShowCursor()
	out.ClearScreen()

	draw := func() {
		out.MoveCursor(1, 1)
		_ = render.ASCII(out, m.Grid(), m.Generator(), profile)
	}
	draw()
	for !m.Done() && (budget <= 0 || m.Generator().Steps() < budget) {
		if ctx.Err() != nil {
			return
		}
		timer.Wait()
		if budget > 0 {
			m.StepWithin(budget - m.Generator().Steps())
		} else {
			m.Step()
		}
		draw()
	}
}
