package maze

import (
	"fmt"

	"mazegen/internal/core"
)

// Backtracker is the recursive-backtracker maze algorithm: a depth-first walk
// over the grid that keeps an explicit stack for backtracking.
type Backtracker struct {
	grid    *Grid
	rng     *core.RNG
	current int
	stack   []int
	done    bool

	carved int
	steps  int

	scratch [4]int
}

// NewBacktracker prepares a generator over g starting at cell start, which is
// marked visited immediately.
func NewBacktracker(g *Grid, start int, rng *core.RNG) *Backtracker {
	if start < 0 || start >= g.Len() {
		panic(fmt.Sprintf("maze: start index %d outside grid of %d cells", start, g.Len()))
	}
	g.Cell(start).Visited = true
	return &Backtracker{
		grid:    g,
		rng:     rng,
		current: start,
		stack:   make([]int, 0, g.Len()),
	}
}

// Step advances the walk by exactly one move: carve into a random unvisited
// neighbor, or backtrack one cell, or finish.
func (b *Backtracker) Step() {
	if b.done {
		return
	}
	b.grid.Cell(b.current).Visited = true

	if next, ok := b.ChooseNeighbor(b.current); ok {
		b.grid.Cell(next).Visited = true
		b.stack = append(b.stack, b.current)
		b.Carve(b.current, next)
		b.current = next
		b.steps++
		return
	}

	if n := len(b.stack); n > 0 {
		prev := b.stack[n-1]
		b.stack = b.stack[:n-1]
		if !b.grid.Cell(prev).Visited {
			panic(fmt.Sprintf("maze: popped unvisited cell %d", prev))
		}
		b.current = prev
		b.steps++
		return
	}

	b.done = true
}

// ChooseNeighbor returns one unvisited in-bounds neighbor of cell i chosen
// uniformly at random. The candidate set is recomputed on every call.
func (b *Backtracker) ChooseNeighbor(i int) (int, bool) {
	return b.rng.Pick(b.candidates(i))
}

func (b *Backtracker) candidates(i int) []int {
	out := b.scratch[:0]
	for _, d := range Directions {
		n, ok := b.grid.Neighbor(i, d)
		if ok && !b.grid.Cell(n).Visited {
			out = append(out, n)
		}
	}
	return out
}

// Carve removes the wall pair between the adjacent cells from and to.
func (b *Backtracker) Carve(from, to int) {
	b.grid.Carve(from, to)
	b.carved++
}

// Done reports whether the stack is empty and the current cell has no
// unvisited neighbor. It never consumes randomness.
func (b *Backtracker) Done() bool {
	if b.done {
		return true
	}
	return len(b.stack) == 0 && len(b.candidates(b.current)) == 0
}

// Current returns the active cell. It is always valid.
func (b *Backtracker) Current() (int, bool) { return b.current, true }

// Trail returns the backtracking stack, bottom first.
func (b *Backtracker) Trail() []int { return b.stack }

// Carved returns the number of wall pairs removed so far.
func (b *Backtracker) Carved() int { return b.carved }

// Steps returns the number of advance and backtrack moves taken.
func (b *Backtracker) Steps() int { return b.steps }
