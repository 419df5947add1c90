package maze

import (
	"slices"
	"testing"

	"mazegen/internal/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBacktracker(cols, rows int, seed int64) (*Grid, *Backtracker) {
	g := NewGrid(cols, rows)
	return g, NewBacktracker(g, 0, core.NewRNG(seed))
}

func TestBacktrackerSingleCellIsDone(t *testing.T) {
	g, b := newBacktracker(1, 1, 1)
	assert.True(t, g.Cell(0).Visited)
	assert.True(t, b.Done())

	b.Step()
	assert.True(t, b.Done())
	assert.Equal(t, 4, g.Cell(0).WallCount())
	assert.Zero(t, b.Carved())
	assert.Zero(t, b.Steps())
}

func TestBacktrackerTwoCells(t *testing.T) {
	g, b := newBacktracker(2, 1, 7)
	left, right := g.Index(0, 0), g.Index(1, 0)
	require.False(t, b.Done())

	b.Step()
	cur, ok := b.Current()
	require.True(t, ok)
	assert.Equal(t, right, cur)
	assert.Equal(t, []int{left}, b.Trail())
	assert.False(t, g.Cell(left).Walls[Right])
	assert.False(t, g.Cell(right).Walls[Left])
	assert.True(t, g.Cell(right).Visited)
	assert.Equal(t, 1, b.Carved())

	b.Step()
	cur, _ = b.Current()
	assert.Equal(t, left, cur)
	assert.Empty(t, b.Trail())
	assert.True(t, b.Done())

	b.Step()
	cur, _ = b.Current()
	assert.Equal(t, left, cur)
	assert.True(t, b.Done())
	assert.Equal(t, 1, b.Carved())
	assert.Equal(t, 2, b.Steps())
}

func TestBacktrackerThreeByThree(t *testing.T) {
	g, b := newBacktracker(3, 3, 99)
	RunToCompletion(b, 0)

	require.True(t, b.Done())
	assert.Equal(t, 8, b.Carved())
	for i := range g.Cells() {
		assert.True(t, g.Cell(i).Visited, "cell %d", i)
	}
	stats := Analyze(g)
	assert.Equal(t, 8, stats.Passages)
	assert.True(t, stats.SpanningTree())
}

func TestBacktrackerProducesSpanningTree(t *testing.T) {
	for _, dims := range [][2]int{{1, 5}, {5, 1}, {4, 4}, {7, 3}, {16, 16}} {
		for seed := int64(1); seed <= 5; seed++ {
			g, b := newBacktracker(dims[0], dims[1], seed)
			steps := RunToCompletion(b, 0)

			n := g.Len()
			assert.LessOrEqual(t, steps, 2*n, "%dx%d seed %d", dims[0], dims[1], seed)
			assert.Equal(t, n-1, b.Carved())

			stats := Analyze(g)
			assert.True(t, stats.Connected, "%dx%d seed %d not connected", dims[0], dims[1], seed)
			assert.True(t, stats.Acyclic, "%dx%d seed %d has a cycle", dims[0], dims[1], seed)
			assert.Equal(t, n, stats.Visited)
		}
	}
}

func TestBacktrackerWallSymmetryAndStackInvariant(t *testing.T) {
	g, b := newBacktracker(6, 5, 3)
	for !b.Done() {
		b.Step()
		require.Zero(t, Analyze(g).SymmetryViolations)
		for _, i := range b.Trail() {
			require.True(t, g.Cell(i).Visited, "stacked cell %d not visited", i)
		}
		cur, _ := b.Current()
		require.True(t, g.Cell(cur).Visited)
	}
}

func TestBacktrackerDoneIsIdempotent(t *testing.T) {
	g, b := newBacktracker(5, 5, 11)
	RunToCompletion(b, 0)
	require.True(t, b.Done())

	cells := slices.Clone(g.Cells())
	trail := slices.Clone(b.Trail())
	cur, _ := b.Current()
	for i := 0; i < 10; i++ {
		b.Step()
	}
	assert.Equal(t, cells, g.Cells())
	assert.Equal(t, trail, b.Trail())
	after, _ := b.Current()
	assert.Equal(t, cur, after)
}

func TestBacktrackerDeterministicForSeed(t *testing.T) {
	g1, b1 := newBacktracker(12, 12, 2024)
	g2, b2 := newBacktracker(12, 12, 2024)
	RunToCompletion(b1, 0)
	RunToCompletion(b2, 0)
	assert.Equal(t, g1.String(), g2.String())

	g3, b3 := newBacktracker(12, 12, 2025)
	RunToCompletion(b3, 0)
	assert.NotEqual(t, g1.String(), g3.String())
}

func TestChooseNeighborIsUniform(t *testing.T) {
	g := NewGrid(3, 3)
	center := g.Index(1, 1)
	b := NewBacktracker(g, center, core.NewRNG(5))

	counts := map[int]int{}
	const draws = 4000
	for i := 0; i < draws; i++ {
		n, ok := b.ChooseNeighbor(center)
		require.True(t, ok)
		counts[n]++
	}
	require.Len(t, counts, 4)
	for n, c := range counts {
		assert.InDelta(t, draws/4, c, draws/20, "neighbor %d", n)
	}
}

func TestChooseNeighborSkipsVisited(t *testing.T) {
	g := NewGrid(3, 3)
	center := g.Index(1, 1)
	b := NewBacktracker(g, center, core.NewRNG(5))

	for _, d := range []Direction{Top, Right, Bottom} {
		n, _ := g.Neighbor(center, d)
		g.Cell(n).Visited = true
	}
	only, _ := g.Neighbor(center, Left)
	for i := 0; i < 20; i++ {
		n, ok := b.ChooseNeighbor(center)
		require.True(t, ok)
		assert.Equal(t, only, n)
	}

	g.Cell(only).Visited = true
	_, ok := b.ChooseNeighbor(center)
	assert.False(t, ok)
}

func TestNewBacktrackerRejectsBadStart(t *testing.T) {
	g := NewGrid(2, 2)
	assert.Panics(t, func() { NewBacktracker(g, 4, core.NewRNG(1)) })
	assert.Panics(t, func() { NewBacktracker(g, -1, core.NewRNG(1)) })
}
