package render

import (
	"fmt"
	"io"

	"mazegen/internal/maze"

	"github.com/gogpu/gg"
)

// ImageOptions controls the PNG rendering of a maze.
type ImageOptions struct {
	CellPx    int     // side of one cell in pixels
	Margin    int     // border around the maze in pixels
	WallWidth float64 // stroke width of walls
	ShowTrail bool    // highlight the current cell and trail
}

// DefaultImageOptions matches the viewer's proportions.
func DefaultImageOptions() ImageOptions {
	return ImageOptions{CellPx: 20, Margin: 10, WallWidth: 2, ShowTrail: true}
}

var (
	imageBackground = gg.Hex("#000000")
	imageVisited    = gg.Hex("#d135fe")
	imageTrail      = gg.Hex("#6e8cf1")
	imageCurrent    = gg.Hex("#ff0000")
	imageWall       = gg.Hex("#ebebf0")
)

// Draw renders the grid into a new gg context. The caller owns the context
// and must Close it.
func Draw(g *maze.Grid, gen maze.Generator, opts ImageOptions) (*gg.Context, error) {
	if opts.CellPx <= 0 {
		opts.CellPx = DefaultImageOptions().CellPx
	}
	if opts.Margin < 0 {
		opts.Margin = 0
	}
	if opts.WallWidth <= 0 {
		opts.WallWidth = 1
	}
	cell := float64(opts.CellPx)
	margin := float64(opts.Margin)
	dc := gg.NewContext(g.Cols()*opts.CellPx+2*opts.Margin, g.Rows()*opts.CellPx+2*opts.Margin)
	dc.ClearWithColor(imageBackground)

	origin := func(c *maze.Cell) (float64, float64) {
		return margin + float64(c.Col)*cell, margin + float64(c.Row)*cell
	}

	onTrail := make(map[int]bool)
	cur, hasCur := 0, false
	if gen != nil && opts.ShowTrail {
		for _, i := range gen.Trail() {
			onTrail[i] = true
		}
		cur, hasCur = gen.Current()
	}

	fillCells := func(col gg.RGBA, keep func(i int) bool) error {
		n := 0
		for i := range g.Cells() {
			if !keep(i) {
				continue
			}
			x, y := origin(g.Cell(i))
			dc.DrawRectangle(x, y, cell, cell)
			n++
		}
		if n == 0 {
			return nil
		}
		dc.SetColor(col.Color())
		return dc.Fill()
	}

	layers := []struct {
		color gg.RGBA
		keep  func(i int) bool
	}{
		{imageVisited, func(i int) bool { return g.Cell(i).Visited && !onTrail[i] && !(hasCur && i == cur) }},
		{imageTrail, func(i int) bool { return onTrail[i] && !(hasCur && i == cur) }},
		{imageCurrent, func(i int) bool { return hasCur && i == cur }},
	}
	for _, l := range layers {
		if err := fillCells(l.color, l.keep); err != nil {
			dc.Close()
			return nil, fmt.Errorf("fill cells: %w", err)
		}
	}

	for i := range g.Cells() {
		c := g.Cell(i)
		x, y := origin(c)
		if c.HasWall(maze.Top) {
			dc.DrawLine(x, y, x+cell, y)
		}
		if c.HasWall(maze.Right) {
			dc.DrawLine(x+cell, y, x+cell, y+cell)
		}
		if c.HasWall(maze.Bottom) {
			dc.DrawLine(x, y+cell, x+cell, y+cell)
		}
		if c.HasWall(maze.Left) {
			dc.DrawLine(x, y, x, y+cell)
		}
	}
	dc.SetColor(imageWall.Color())
	dc.SetLineWidth(opts.WallWidth)
	dc.SetLineCap(gg.LineCapSquare)
	if err := dc.Stroke(); err != nil {
		dc.Close()
		return nil, fmt.Errorf("stroke walls: %w", err)
	}
	return dc, nil
}

// EncodePNG renders the grid and writes it to w as PNG.
func EncodePNG(w io.Writer, g *maze.Grid, gen maze.Generator, opts ImageOptions) error {
	dc, err := Draw(g, gen, opts)
	if err != nil {
		return err
	}
	defer dc.Close()
	return dc.EncodePNG(w)
}

// WritePNG renders the grid to a PNG file at path.
func WritePNG(path string, g *maze.Grid, gen maze.Generator, opts ImageOptions) error {
	dc, err := Draw(g, gen, opts)
	if err != nil {
		return err
	}
	defer dc.Close()
	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
