package render

import (
	"io"
	"strings"

	"mazegen/internal/maze"

	"github.com/muesli/termenv"
)

// ASCII writes g using box characters, coloring the generator's current cell
// and trail. With the termenv.Ascii profile no escape sequences are emitted
// and the cells are marked with plain glyphs instead.
func ASCII(w io.Writer, g *maze.Grid, gen maze.Generator, profile termenv.Profile) error {
	_, err := io.WriteString(w, asciiString(g, gen, profile))
	return err
}

type asciiStyles struct {
	current, trail, unvisited, wall func(string) string
}

func newASCIIStyles(profile termenv.Profile) asciiStyles {
	style := func(hex string) func(string) string {
		s := profile.String().Foreground(profile.Color(hex)).Bold()
		return s.Styled
	}
	faint := profile.String().Foreground(profile.Color("#555566")).Styled
	return asciiStyles{
		current:   style("#ff3030"),
		trail:     style("#6e8cf1"),
		unvisited: faint,
		wall:      profile.String().Foreground(profile.Color("#d135fe")).Styled,
	}
}

func asciiString(g *maze.Grid, gen maze.Generator, profile termenv.Profile) string {
	st := newASCIIStyles(profile)

	onTrail := make(map[int]bool)
	cur, hasCur := -1, false
	if gen != nil {
		for _, i := range gen.Trail() {
			onTrail[i] = true
		}
		cur, hasCur = gen.Current()
	}

	interior := func(i int) string {
		c := g.Cell(i)
		switch {
		case hasCur && i == cur:
			return st.current(" @ ")
		case onTrail[i]:
			return st.trail(" . ")
		case !c.Visited:
			return st.unvisited(" : ")
		}
		return "   "
	}

	var b strings.Builder
	b.WriteString(st.wall("+" + strings.Repeat("---+", g.Cols())))
	b.WriteString("\n")
	for row := 0; row < g.Rows(); row++ {
		b.WriteString(st.wall("|"))
		for col := 0; col < g.Cols(); col++ {
			i := g.Index(col, row)
			b.WriteString(interior(i))
			if g.Cell(i).HasWall(maze.Right) {
				b.WriteString(st.wall("|"))
			} else {
				b.WriteString(" ")
			}
		}
		b.WriteString("\n")
		b.WriteString(st.wall("+"))
		for col := 0; col < g.Cols(); col++ {
			if g.CellAt(col, row).HasWall(maze.Bottom) {
				b.WriteString(st.wall("---+"))
			} else {
				b.WriteString("   " + st.wall("+"))
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}
