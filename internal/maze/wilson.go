package maze

import (
	"fmt"

	"mazegen/internal/core"
)

// Wilson generates a uniform spanning tree with loop-erased random walks.
// Each Step moves the pending walk by one cell; when the walk touches the
// tree the whole path is carved at once.
type Wilson struct {
	grid *Grid
	rng  *core.RNG

	path      []int
	pathPos   []int // position+1 of a cell on path, 0 when absent
	remaining int
	done      bool

	carved int
	steps  int

	scratch [4]int
}

// NewWilson prepares a generator over g whose tree is rooted at start.
func NewWilson(g *Grid, start int, rng *core.RNG) *Wilson {
	if start < 0 || start >= g.Len() {
		panic(fmt.Sprintf("maze: start index %d outside grid of %d cells", start, g.Len()))
	}
	g.Cell(start).Visited = true
	w := &Wilson{
		grid:    g,
		rng:     rng,
		pathPos: make([]int, g.Len()),
	}
	for i := range g.Cells() {
		if !g.Cell(i).Visited {
			w.remaining++
		}
	}
	return w
}

// Step performs one random-walk move, starting a new walk when none is
// pending.
func (w *Wilson) Step() {
	if w.Done() {
		w.done = true
		return
	}
	w.steps++

	if len(w.path) == 0 {
		w.push(w.randomUnvisited())
		return
	}

	head := w.path[len(w.path)-1]
	next, ok := w.rng.Pick(w.neighbors(head))
	if !ok {
		panic(fmt.Sprintf("maze: cell %d has no neighbors", head))
	}

	switch {
	case w.grid.Cell(next).Visited:
		w.join(next)
	case w.pathPos[next] > 0:
		keep := w.pathPos[next]
		for _, p := range w.path[keep:] {
			w.pathPos[p] = 0
		}
		w.path = w.path[:keep]
	default:
		w.push(next)
	}
}

func (w *Wilson) push(i int) {
	w.path = append(w.path, i)
	w.pathPos[i] = len(w.path)
}

// join carves the pending walk into the tree at cell target.
func (w *Wilson) join(target int) {
	for i := 0; i < len(w.path); i++ {
		to := target
		if i+1 < len(w.path) {
			to = w.path[i+1]
		}
		w.grid.Carve(w.path[i], to)
		w.carved++
	}
	for _, p := range w.path {
		w.grid.Cell(p).Visited = true
		w.pathPos[p] = 0
		w.remaining--
	}
	w.path = w.path[:0]
}

func (w *Wilson) neighbors(i int) []int {
	out := w.scratch[:0]
	for _, d := range Directions {
		if n, ok := w.grid.Neighbor(i, d); ok {
			out = append(out, n)
		}
	}
	return out
}

func (w *Wilson) randomUnvisited() int {
	k := w.rng.IntN(w.remaining)
	for i := range w.grid.Cells() {
		if w.grid.Cell(i).Visited {
			continue
		}
		if k == 0 {
			return i
		}
		k--
	}
	panic("maze: unvisited cell count out of sync")
}

// Done reports whether every cell joined the tree.
func (w *Wilson) Done() bool { return w.done || w.remaining == 0 }

// Current returns the head of the pending walk.
func (w *Wilson) Current() (int, bool) {
	if len(w.path) == 0 {
		return 0, false
	}
	return w.path[len(w.path)-1], true
}

// Trail returns the pending walk, oldest cell first.
func (w *Wilson) Trail() []int { return w.path }

// Carved returns the number of wall pairs removed so far.
func (w *Wilson) Carved() int { return w.carved }

// Steps returns the number of walk moves taken.
func (w *Wilson) Steps() int { return w.steps }
