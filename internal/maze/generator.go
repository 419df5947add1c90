package maze

import (
	"fmt"
	"sort"

	"mazegen/internal/core"
)

// Generator carves passages into a Grid one step at a time. Callers drive it
// from their tick loop; once Done reports true further Step calls are no-ops.
type Generator interface {
	// Step advances the algorithm by one logical move.
	Step()
	// Done reports whether the algorithm reached its terminal state.
	Done() bool
	// Current returns the active cell, if any.
	Current() (int, bool)
	// Trail returns the cells the algorithm is currently holding on to: the
	// backtracking stack or the pending random walk. Callers must not modify it.
	Trail() []int
	// Carved returns how many wall pairs have been removed.
	Carved() int
	// Steps returns how many Step calls changed state.
	Steps() int
}

// Algorithm constructs a Generator over g that starts at cell index start.
type Algorithm func(g *Grid, start int, rng *core.RNG) Generator

var algorithms = map[string]Algorithm{
	AlgorithmBacktracker: func(g *Grid, start int, rng *core.RNG) Generator {
		return NewBacktracker(g, start, rng)
	},
	AlgorithmWilson: func(g *Grid, start int, rng *core.RNG) Generator {
		return NewWilson(g, start, rng)
	},
}

const (
	AlgorithmBacktracker = "backtracker"
	AlgorithmWilson      = "wilson"
)

// Algorithms returns the names of the available generators in sorted order.
func Algorithms() []string {
	names := make([]string, 0, len(algorithms))
	for name := range algorithms {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewGenerator looks up the named algorithm and builds it over g.
func NewGenerator(name string, g *Grid, start int, rng *core.RNG) (Generator, error) {
	algo, ok := algorithms[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
	return algo(g, start, rng), nil
}

// RunToCompletion steps gen until it is done or limit steps were taken. A
// non-positive limit means no limit. It returns the number of Step calls.
func RunToCompletion(gen Generator, limit int) int {
	n := 0
	for !gen.Done() {
		if limit > 0 && n >= limit {
			break
		}
		gen.Step()
		n++
	}
	return n
}
