package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"strconv"
	"strings"
	"time"

	"mazegen/internal/app"
	"mazegen/internal/maze"
	"mazegen/internal/sweep"

	"github.com/muesli/termenv"
)

// intList is a comma separated flag value.
type intList []int

func (l *intList) String() string {
	parts := make([]string, len(*l))
	for i, v := range *l {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}

func (l *intList) Set(value string) error {
	*l = (*l)[:0]
	for _, part := range strings.Split(value, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return fmt.Errorf("bad size %q: %w", part, err)
		}
		*l = append(*l, n)
	}
	return nil
}

func main() {
	sizes := intList{4, 8, 16, 32, 64}
	flag.Var(&sizes, "sizes", "comma separated cells per side")
	seeds := flag.Int("seeds", 20, "number of seeds per size")
	firstSeed := flag.Int64("seed", 1, "first seed")
	algos := flag.String("algorithms", strings.Join(maze.Algorithms(), ","), "comma separated algorithms")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	verbose := flag.Bool("v", false, "verbose logging")
	flag.Parse()

	logger := app.NewLogger(os.Stderr, *verbose)

	opts := sweep.Options{
		Sizes:      sizes,
		Algorithms: strings.Split(*algos, ","),
		Workers:    *workers,
	}
	for i := 0; i < *seeds; i++ {
		opts.Seeds = append(opts.Seeds, *firstSeed+int64(i))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger.Info("sweeping", "scenarios", len(opts.Scenarios()), "workers", *workers)
	start := time.Now()
	results, err := sweep.Run(ctx, opts)
	if err != nil {
		logger.Error("sweep", "err", err)
		os.Exit(2)
	}

	out := termenv.NewOutput(os.Stdout)
	failures := 0
	for _, r := range results {
		if r.OK() {
			logger.Debug("ok", "scenario", r.Scenario.String(), "steps", r.Steps, "elapsed", r.Elapsed)
			continue
		}
		failures++
		logger.Error("violation", "scenario", r.Scenario.String(), "problems", strings.Join(r.Violations, "; "))
	}

	fmt.Fprintf(out, "%-12s %6s %5s %5s %10s %9s %9s %10s\n", "algorithm", "size", "runs", "fail", "steps", "deadends", "diameter", "time")
	for _, s := range sweep.Summarize(results) {
		status := out.String(fmt.Sprintf("%5d", s.Failures)).Foreground(out.Color("#5fd787"))
		if s.Failures > 0 {
			status = out.String(fmt.Sprintf("%5d", s.Failures)).Foreground(out.Color("#ff3030")).Bold()
		}
		fmt.Fprintf(out, "%-12s %6d %5d %s %10.1f %8.1f%% %9.1f %10s\n",
			s.Algorithm, s.Size, s.Runs, status, s.MeanSteps, 100*s.DeadEnds, s.Diameter,
			(s.Elapsed / time.Duration(s.Runs)).Round(time.Microsecond))
	}
	logger.Info("finished", "elapsed", time.Since(start).Round(time.Millisecond), "failures", failures)

	if failures > 0 {
		os.Exit(1)
	}
}
