package maze

import (
	"fmt"
	"strings"
)

// Grid owns every Cell of a maze and answers coordinate and adjacency
// queries. Its shape is fixed after construction.
//
// Cells are stored column-major: index = row + col*rows. For the square
// grids built from a Config this is the same as row + col*cols.
type Grid struct {
	cols, rows int
	cells      []Cell
}

// NewGrid allocates a cols x rows grid with every wall present and no cell
// visited. Non-positive dimensions are clamped to 1.
func NewGrid(cols, rows int) *Grid {
	if cols <= 0 {
		cols = 1
	}
	if rows <= 0 {
		rows = 1
	}
	g := &Grid{cols: cols, rows: rows, cells: make([]Cell, cols*rows)}
	for col := 0; col < cols; col++ {
		for row := 0; row < rows; row++ {
			c := &g.cells[g.Index(col, row)]
			c.Col, c.Row = col, row
			c.reset()
		}
	}
	return g
}

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Len returns the number of cells.
func (g *Grid) Len() int { return len(g.cells) }

// Cells exposes the backing slice in index order.
func (g *Grid) Cells() []Cell { return g.cells }

// Index maps in-range coordinates to a cell index. The result is meaningless
// for out-of-range coordinates; use Lookup when the input is not trusted.
func (g *Grid) Index(col, row int) int { return row + col*g.rows }

// InBounds reports whether (col, row) addresses a cell.
func (g *Grid) InBounds(col, row int) bool {
	return col >= 0 && row >= 0 && col < g.cols && row < g.rows
}

// Lookup returns the index of (col, row) and whether such a cell exists.
func (g *Grid) Lookup(col, row int) (int, bool) {
	if !g.InBounds(col, row) {
		return 0, false
	}
	return g.Index(col, row), true
}

// CellAt returns the cell at (col, row), or nil when outside the grid.
func (g *Grid) CellAt(col, row int) *Cell {
	i, ok := g.Lookup(col, row)
	if !ok {
		return nil
	}
	return &g.cells[i]
}

// Cell returns the cell with index i.
func (g *Grid) Cell(i int) *Cell { return &g.cells[i] }

// Neighbor returns the index of the cell next to i in direction d.
func (g *Grid) Neighbor(i int, d Direction) (int, bool) {
	c := &g.cells[i]
	dcol, drow := d.Offset()
	return g.Lookup(c.Col+dcol, c.Row+drow)
}

// Open reports whether a passage leads from cell i in direction d.
func (g *Grid) Open(i int, d Direction) bool {
	if _, ok := g.Neighbor(i, d); !ok {
		return false
	}
	return !g.cells[i].HasWall(d)
}

// Carve clears the wall pair between the adjacent cells a and b. It panics
// when the cells are not orthogonal neighbors.
func (g *Grid) Carve(a, b int) {
	ca, cb := &g.cells[a], &g.cells[b]
	dcol, drow := ca.Col-cb.Col, ca.Row-cb.Row
	switch {
	case dcol == 1 && drow == 0:
		ca.Walls[Left], cb.Walls[Right] = false, false
	case dcol == -1 && drow == 0:
		ca.Walls[Right], cb.Walls[Left] = false, false
	case dcol == 0 && drow == 1:
		ca.Walls[Top], cb.Walls[Bottom] = false, false
	case dcol == 0 && drow == -1:
		ca.Walls[Bottom], cb.Walls[Top] = false, false
	default:
		panic(fmt.Sprintf("maze: carve between non-adjacent cells (%d,%d) and (%d,%d)",
			ca.Col, ca.Row, cb.Col, cb.Row))
	}
}

// Reset restores every cell to its freshly constructed state.
func (g *Grid) Reset() {
	for i := range g.cells {
		g.cells[i].reset()
	}
}

// String provides a textual representation of the maze.
func (g *Grid) String() string {
	var b strings.Builder

	b.WriteString("+" + strings.Repeat("---+", g.cols) + "\n")
	for row := 0; row < g.rows; row++ {
		b.WriteString("|")
		for col := 0; col < g.cols; col++ {
			c := g.CellAt(col, row)
			if c.HasWall(Right) {
				b.WriteString("   |")
			} else {
				b.WriteString("    ")
			}
		}
		b.WriteString("\n+")
		for col := 0; col < g.cols; col++ {
			c := g.CellAt(col, row)
			if c.HasWall(Bottom) {
				b.WriteString("---+")
			} else {
				b.WriteString("   +")
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}
