package render

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFillPaletteRGBA(t *testing.T) {
	palette := []color.RGBA{{R: 1, G: 2, B: 3, A: 4}, {R: 5, G: 6, B: 7, A: 8}}
	buf := make([]byte, 12)
	fillPaletteRGBA(buf, []uint8{0, 1, 9}, palette)
	assert.Equal(t, []byte{1, 2, 3, 4, 5, 6, 7, 8, 5, 6, 7, 8}, buf)
}

func TestFillPaletteRGBAEmptyPalette(t *testing.T) {
	buf := []byte{9, 9, 9, 9}
	fillPaletteRGBA(buf, []uint8{3}, nil)
	assert.Equal(t, []byte{0, 0, 0, 0}, buf)
}

func TestBinaryPalette(t *testing.T) {
	p := binaryPalette(color.White, color.Black)
	assert.Equal(t, color.RGBA{A: 255}, p[0])
	assert.Equal(t, color.RGBA{R: 255, G: 255, B: 255, A: 255}, p[1])
}
