package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestByteGridSetAt(t *testing.T) {
	g := NewByteGrid(4, 3)
	g.Set(3, 2, 7)
	assert.Equal(t, uint8(7), g.At(3, 2))
	assert.Equal(t, uint8(7), g.Cells()[g.Index(3, 2)])

	g.Set(4, 0, 9)
	g.Set(-1, 0, 9)
	assert.Equal(t, uint8(0), g.At(4, 0))
	assert.NotContains(t, g.Cells(), uint8(9))
}

func TestByteGridFillClear(t *testing.T) {
	g := NewByteGrid(2, 2)
	g.Fill(3)
	assert.Equal(t, []uint8{3, 3, 3, 3}, g.Cells())
	g.Clear()
	assert.Equal(t, []uint8{0, 0, 0, 0}, g.Cells())
}

func TestNewByteGridClamps(t *testing.T) {
	g := NewByteGrid(0, -1)
	assert.Equal(t, 1, g.W)
	assert.Equal(t, 1, g.H)
}
