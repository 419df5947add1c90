// Package sweep generates many mazes in parallel and checks that every
// finished maze is a spanning tree of its grid.
package sweep

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sort"
	"time"

	"mazegen/internal/core"
	"mazegen/internal/maze"

	"golang.org/x/sync/errgroup"
)

// Options selects the scenarios of a sweep: every size is paired with every
// seed and every algorithm.
type Options struct {
	Sizes      []int
	Seeds      []int64
	Algorithms []string
	Workers    int
}

// Scenario is one maze to generate.
type Scenario struct {
	Algorithm string
	Size      int
	Seed      int64
}

func (s Scenario) String() string {
	return fmt.Sprintf("%s %dx%d seed=%d", s.Algorithm, s.Size, s.Size, s.Seed)
}

// Result reports one finished scenario.
type Result struct {
	Scenario
	Steps   int
	Stats   maze.Stats
	Elapsed time.Duration
	// Violations lists every property the maze failed.
	Violations []string
}

// OK reports whether the maze satisfied every property.
func (r Result) OK() bool { return len(r.Violations) == 0 }

// Scenarios expands opts into the ordered list of scenarios.
func (o Options) Scenarios() []Scenario {
	var out []Scenario
	for _, algo := range o.Algorithms {
		for _, size := range o.Sizes {
			for _, seed := range o.Seeds {
				out = append(out, Scenario{Algorithm: algo, Size: size, Seed: seed})
			}
		}
	}
	return out
}

func (o Options) validate() error {
	if len(o.Sizes) == 0 || len(o.Seeds) == 0 || len(o.Algorithms) == 0 {
		return errors.New("sweep: sizes, seeds and algorithms must be non-empty")
	}
	for _, size := range o.Sizes {
		if size < 1 {
			return fmt.Errorf("%w: size %d", maze.ErrInvalidSize, size)
		}
	}
	known := map[string]bool{}
	for _, name := range maze.Algorithms() {
		known[name] = true
	}
	for _, name := range o.Algorithms {
		if !known[name] {
			return fmt.Errorf("%w: %q", maze.ErrUnknownAlgorithm, name)
		}
	}
	return nil
}

// Run generates every scenario with up to opts.Workers goroutines. Results
// come back in scenario order. Cancelling ctx stops the sweep between steps
// and returns the context error.
func Run(ctx context.Context, opts Options) ([]Result, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	scenarios := opts.Scenarios()
	results := make([]Result, len(scenarios))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, sc := range scenarios {
		g.Go(func() error {
			res, err := runScenario(ctx, sc)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// ctxCheckInterval is how many generator steps run between context checks.
const ctxCheckInterval = 1024

func runScenario(ctx context.Context, sc Scenario) (Result, error) {
	start := time.Now()
	grid := maze.NewGrid(sc.Size, sc.Size)
	gen, err := maze.NewGenerator(sc.Algorithm, grid, 0, core.NewRNG(sc.Seed))
	if err != nil {
		return Result{}, err
	}

	res := Result{Scenario: sc}
	limit := stepLimit(sc.Algorithm, grid.Len())
	for !gen.Done() {
		if res.Steps%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return Result{}, err
			}
		}
		if limit > 0 && res.Steps >= limit {
			res.Violations = append(res.Violations, fmt.Sprintf("not done after %d steps", limit))
			break
		}
		gen.Step()
		res.Steps++
	}

	res.Stats = maze.Analyze(grid)
	res.Violations = append(res.Violations, check(res.Stats, gen)...)
	res.Elapsed = time.Since(start)
	return res, nil
}

// stepLimit bounds the steps a generator may take. The backtracker visits
// each cell once forward and once back; random walks have no fixed bound.
func stepLimit(algorithm string, cells int) int {
	if algorithm == maze.AlgorithmBacktracker {
		return 2 * cells
	}
	return 0
}

func check(s maze.Stats, gen maze.Generator) []string {
	var out []string
	if s.Visited != s.Cells {
		out = append(out, fmt.Sprintf("%d of %d cells visited", s.Visited, s.Cells))
	}
	if s.Passages != s.Cells-1 {
		out = append(out, fmt.Sprintf("%d passages, want %d", s.Passages, s.Cells-1))
	}
	if gen.Carved() != s.Passages {
		out = append(out, fmt.Sprintf("generator carved %d, grid has %d passages", gen.Carved(), s.Passages))
	}
	if !s.Connected {
		out = append(out, "not connected")
	}
	if !s.Acyclic {
		out = append(out, "has cycles")
	}
	if s.SymmetryViolations > 0 {
		out = append(out, fmt.Sprintf("%d asymmetric walls", s.SymmetryViolations))
	}
	return out
}

// Summary aggregates results per algorithm and size.
type Summary struct {
	Algorithm string
	Size      int
	Runs      int
	Failures  int
	MeanSteps float64
	DeadEnds  float64 // mean fraction of cells that are dead ends
	Diameter  float64 // mean longest path
	Elapsed   time.Duration
}

// Summarize groups results by algorithm and size, sorted by both.
func Summarize(results []Result) []Summary {
	type key struct {
		algo string
		size int
	}
	acc := map[key]*Summary{}
	for _, r := range results {
		k := key{r.Algorithm, r.Size}
		s, ok := acc[k]
		if !ok {
			s = &Summary{Algorithm: r.Algorithm, Size: r.Size}
			acc[k] = s
		}
		s.Runs++
		if !r.OK() {
			s.Failures++
		}
		s.MeanSteps += float64(r.Steps)
		if r.Stats.Cells > 0 {
			s.DeadEnds += float64(r.Stats.DeadEnds) / float64(r.Stats.Cells)
		}
		s.Diameter += float64(r.Stats.Diameter)
		s.Elapsed += r.Elapsed
	}

	out := make([]Summary, 0, len(acc))
	for _, s := range acc {
		n := float64(s.Runs)
		s.MeanSteps /= n
		s.DeadEnds /= n
		s.Diameter /= n
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Algorithm != out[j].Algorithm {
			return out[i].Algorithm < out[j].Algorithm
		}
		return out[i].Size < out[j].Size
	})
	return out
}
