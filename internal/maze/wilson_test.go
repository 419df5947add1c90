package maze

import (
	"testing"

	"mazegen/internal/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWilsonSingleCellIsDone(t *testing.T) {
	g := NewGrid(1, 1)
	w := NewWilson(g, 0, core.NewRNG(1))
	assert.True(t, w.Done())
	_, ok := w.Current()
	assert.False(t, ok)

	w.Step()
	assert.Equal(t, 4, g.Cell(0).WallCount())
	assert.Zero(t, w.Steps())
}

func TestWilsonProducesSpanningTree(t *testing.T) {
	for _, dims := range [][2]int{{2, 1}, {1, 6}, {5, 5}, {9, 4}, {12, 12}} {
		for seed := int64(1); seed <= 4; seed++ {
			g := NewGrid(dims[0], dims[1])
			w := NewWilson(g, g.Index(dims[0]-1, dims[1]-1), core.NewRNG(seed))
			RunToCompletion(w, 0)

			require.True(t, w.Done())
			assert.Equal(t, g.Len()-1, w.Carved())
			assert.Empty(t, w.Trail())
			assert.True(t, Analyze(g).SpanningTree(), "%dx%d seed %d", dims[0], dims[1], seed)
		}
	}
}

func TestWilsonWalkStaysSimple(t *testing.T) {
	g := NewGrid(8, 8)
	w := NewWilson(g, 0, core.NewRNG(17))
	for !w.Done() {
		w.Step()
		seen := map[int]bool{}
		trail := w.Trail()
		for k, i := range trail {
			require.False(t, seen[i], "walk revisits cell %d", i)
			seen[i] = true
			require.False(t, g.Cell(i).Visited, "walk cell %d already in tree", i)
			if k > 0 {
				prev := g.Cell(trail[k-1])
				cur := g.Cell(i)
				dist := abs(prev.Col-cur.Col) + abs(prev.Row-cur.Row)
				require.Equal(t, 1, dist)
			}
		}
		require.Zero(t, Analyze(g).SymmetryViolations)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
