package maze

import "image/color"

// Raster values written by Maze into its display buffer.
const (
	DisplayWall uint8 = iota
	DisplayUnvisited
	DisplayVisited
	DisplayTrail
	DisplayCurrent
)

var mazePalette = []color.RGBA{
	DisplayWall:      {R: 235, G: 235, B: 240, A: 255},
	DisplayUnvisited: {R: 0, G: 0, B: 0, A: 255},
	DisplayVisited:   {R: 209, G: 53, B: 254, A: 255},
	DisplayTrail:     {R: 110, G: 140, B: 241, A: 255},
	DisplayCurrent:   {R: 255, G: 0, B: 0, A: 255},
}

// Palette exposes the colors indexed by the Display* values.
func (m *Maze) Palette() []color.RGBA { return mazePalette }

// RasterPos maps a cell to its raster coordinates.
func RasterPos(c *Cell) (x, y int) { return 2*c.Col + 1, 2*c.Row + 1 }

// redraw paints every cell, passage and wall into the raster. Posts and
// closed walls stay DisplayWall.
func (m *Maze) redraw() {
	m.raster.Fill(DisplayWall)

	for i := range m.onTrail {
		m.onTrail[i] = false
	}
	for _, i := range m.gen.Trail() {
		m.onTrail[i] = true
	}
	cur, hasCur := m.gen.Current()

	cells := m.grid.Cells()
	for i := range cells {
		c := &cells[i]
		x, y := RasterPos(c)
		m.raster.Set(x, y, m.cellValue(i, cur, hasCur))

		for _, d := range [2]Direction{Right, Bottom} {
			n, ok := m.grid.Neighbor(i, d)
			if !ok || c.Walls[d] {
				continue
			}
			v := DisplayVisited
			if m.onTrail[i] && (m.onTrail[n] || (hasCur && n == cur)) ||
				m.onTrail[n] && hasCur && i == cur {
				v = DisplayTrail
			}
			dx, dy := d.Offset()
			m.raster.Set(x+dx, y+dy, v)
		}
	}
}

func (m *Maze) cellValue(i, cur int, hasCur bool) uint8 {
	switch {
	case hasCur && i == cur:
		return DisplayCurrent
	case m.onTrail[i]:
		return DisplayTrail
	case m.grid.Cell(i).Visited:
		return DisplayVisited
	}
	return DisplayUnvisited
}
