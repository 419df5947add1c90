//go:build ebiten

package render

import (
	"image/color"

	"mazegen/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter uploads palette-indexed cell data into a single image and draws
// it scaled onto the screen.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{}
	gp.resize(w, h)
	return gp
}

func (gp *GridPainter) resize(w, h int) {
	if gp.img != nil {
		gp.img.Deallocate()
	}
	gp.w, gp.h = w, h
	gp.buf = make([]byte, 4*w*h)
	gp.img = ebiten.NewImage(w, h)
}

// Blit draws the sim's cells. Sims that provide a palette are drawn with it;
// all others are drawn as on/off.
func (gp *GridPainter) Blit(dst *ebiten.Image, sim core.Sim, on, off color.Color, scale int) {
	size := sim.Size()
	if size.W != gp.w || size.H != gp.h {
		gp.resize(size.W, size.H)
	}
	cells := sim.Cells()
	if len(cells) != gp.w*gp.h {
		return
	}
	palette := binaryPalette(on, off)
	if p, ok := sim.(core.PaletteProvider); ok {
		palette = p.Palette()
	}
	fillPaletteRGBA(gp.buf, cells, palette)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}
