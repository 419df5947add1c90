package maze

import "fmt"

// Direction names one side of a cell. The values index Cell.Walls.
type Direction int

const (
	Top Direction = iota
	Right
	Bottom
	Left
)

// Directions lists every side in scan order.
var Directions = [4]Direction{Top, Right, Bottom, Left}

var directionOffsets = [4][2]int{
	Top:    {0, -1},
	Right:  {1, 0},
	Bottom: {0, 1},
	Left:   {-1, 0},
}

// Opposite returns the side facing d on the neighboring cell.
func (d Direction) Opposite() Direction { return (d + 2) % 4 }

// Offset returns the column and row delta of the neighbor in direction d.
func (d Direction) Offset() (dcol, drow int) {
	o := directionOffsets[d]
	return o[0], o[1]
}

func (d Direction) String() string {
	switch d {
	case Top:
		return "top"
	case Right:
		return "right"
	case Bottom:
		return "bottom"
	case Left:
		return "left"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// Cell is a single grid unit. Walls is indexed by Direction and true means
// the wall is present.
type Cell struct {
	Col, Row int
	Visited  bool
	Walls    [4]bool
}

// HasWall reports whether the wall on side d is present.
func (c *Cell) HasWall(d Direction) bool { return c.Walls[d] }

// WallCount returns how many of the four walls are present.
func (c *Cell) WallCount() int {
	n := 0
	for _, w := range c.Walls {
		if w {
			n++
		}
	}
	return n
}

func (c *Cell) reset() {
	c.Visited = false
	c.Walls = [4]bool{true, true, true, true}
}
