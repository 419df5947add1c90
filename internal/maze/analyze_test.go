package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyzeFreshGrid(t *testing.T) {
	s := Analyze(NewGrid(3, 3))
	assert.Equal(t, 9, s.Cells)
	assert.Zero(t, s.Passages)
	assert.False(t, s.Connected)
	assert.True(t, s.Acyclic)
	assert.False(t, s.SpanningTree())
}

func TestAnalyzeSingleCellIsTree(t *testing.T) {
	s := Analyze(NewGrid(1, 1))
	assert.True(t, s.SpanningTree())
	assert.Zero(t, s.Diameter)
}

func TestAnalyzeCorridor(t *testing.T) {
	g := NewGrid(4, 1)
	for col := 0; col < 3; col++ {
		g.Carve(g.Index(col, 0), g.Index(col+1, 0))
	}
	s := Analyze(g)
	assert.True(t, s.SpanningTree())
	assert.Equal(t, 3, s.Passages)
	assert.Equal(t, 2, s.DeadEnds)
	assert.Equal(t, 3, s.Diameter)
}

func TestAnalyzeDetectsCycle(t *testing.T) {
	g := NewGrid(2, 2)
	g.Carve(g.Index(0, 0), g.Index(1, 0))
	g.Carve(g.Index(1, 0), g.Index(1, 1))
	g.Carve(g.Index(1, 1), g.Index(0, 1))
	g.Carve(g.Index(0, 1), g.Index(0, 0))

	s := Analyze(g)
	assert.True(t, s.Connected)
	assert.False(t, s.Acyclic)
	assert.Equal(t, 4, s.Passages)
	assert.Zero(t, s.Diameter)
}

func TestAnalyzeCountsAsymmetricWalls(t *testing.T) {
	g := NewGrid(2, 1)
	g.Cell(g.Index(0, 0)).Walls[Right] = false
	s := Analyze(g)
	assert.Equal(t, 1, s.SymmetryViolations)
	assert.Zero(t, s.Passages)
}
