//go:build ebiten

package ui

import (
	"image/color"
	"math"

	"mazegen/internal/core"
	"mazegen/internal/maze"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type generatorProvider interface {
	Grid() *maze.Grid
	Generator() maze.Generator
}

var (
	trailLineColor = color.RGBA{R: 255, G: 220, B: 80, A: 200}
	deadEndColor   = color.RGBA{R: 80, G: 220, B: 200, A: 160}
)

// Overlay draws optional debugging visuals on top of the maze: the
// generator's trail as a polyline (key 1) and dead ends of the finished
// maze (key 2).
type Overlay struct {
	sim       core.Sim
	scale     int
	showTrail bool
	showEnds  bool
	pixel     *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	o := &Overlay{sim: sim, scale: scale}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update handles the overlay toggles.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showTrail = !o.showTrail
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showEnds = !o.showEnds
	}
}

// Draw renders the enabled layers onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	provider, ok := o.sim.(generatorProvider)
	if !ok {
		return
	}
	scale := float64(max(o.scale, 1))
	grid := provider.Grid()

	if o.showEnds {
		for i := 0; i < grid.Len(); i++ {
			c := grid.Cell(i)
			if c.Visited && c.WallCount() == 3 {
				x, y := center(c, scale)
				o.drawPoint(screen, x, y, scale, deadEndColor)
			}
		}
	}

	if !o.showTrail {
		return
	}
	gen := provider.Generator()
	trail := gen.Trail()
	if cur, ok := gen.Current(); ok {
		trail = append(trail[:len(trail):len(trail)], cur)
	}
	thickness := math.Max(1, scale*0.5)
	for i := 1; i < len(trail); i++ {
		x1, y1 := center(grid.Cell(trail[i-1]), scale)
		x2, y2 := center(grid.Cell(trail[i]), scale)
		o.drawLine(screen, x1, y1, x2, y2, thickness, trailLineColor)
	}
}

// center returns the screen position of the middle of c's raster pixel.
func center(c *maze.Cell, scale float64) (float64, float64) {
	x, y := maze.RasterPos(c)
	return (float64(x) + 0.5) * scale, (float64(y) + 0.5) * scale
}

func (o *Overlay) drawPoint(screen *ebiten.Image, x, y, size float64, col color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(size, size)
	op.GeoM.Translate(x-size*0.5, y-size*0.5)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}

func (o *Overlay) drawLine(screen *ebiten.Image, x1, y1, x2, y2, thickness float64, col color.RGBA) {
	dx, dy := x2-x1, y2-y1
	length := math.Hypot(dx, dy)
	if length <= 1e-4 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(length+thickness, thickness)
	op.GeoM.Translate(-thickness/2, -thickness/2)
	op.GeoM.Rotate(math.Atan2(dy, dx))
	op.GeoM.Translate(x1, y1)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}
