package render

import (
	"bytes"
	"strings"
	"testing"

	"mazegen/internal/core"
	"mazegen/internal/maze"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestASCIIMarksCurrentAndUnvisited(t *testing.T) {
	g := maze.NewGrid(2, 1)
	gen := maze.NewBacktracker(g, 0, core.NewRNG(1))

	var buf bytes.Buffer
	require.NoError(t, ASCII(&buf, g, gen, termenv.Ascii))
	assert.Equal(t, "+---+---+\n| @ | : |\n+---+---+\n", buf.String())

	gen.Step()
	buf.Reset()
	require.NoError(t, ASCII(&buf, g, gen, termenv.Ascii))
	assert.Equal(t, "+---+---+\n| .   @ |\n+---+---+\n", buf.String())
}

func TestASCIIMatchesGridStringWhenComplete(t *testing.T) {
	g := maze.NewGrid(6, 4)
	maze.RunToCompletion(maze.NewBacktracker(g, 0, core.NewRNG(3)), 0)

	var buf bytes.Buffer
	require.NoError(t, ASCII(&buf, g, nil, termenv.Ascii))
	assert.Equal(t, g.String(), buf.String())
}

func TestASCIIColorProfileEmitsEscapes(t *testing.T) {
	g := maze.NewGrid(2, 2)
	gen := maze.NewBacktracker(g, 0, core.NewRNG(1))
	out := asciiString(g, gen, termenv.TrueColor)
	assert.True(t, strings.Contains(out, "\x1b["), "expected ANSI sequences")
}
