package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRNGDeterministic(t *testing.T) {
	a, b := NewRNG(12), NewRNG(12)
	for i := 0; i < 50; i++ {
		assert.Equal(t, a.IntN(1000), b.IntN(1000))
	}
}

func TestRNGPick(t *testing.T) {
	r := NewRNG(1)
	_, ok := r.Pick(nil)
	assert.False(t, ok)

	v, ok := r.Pick([]int{42})
	assert.True(t, ok)
	assert.Equal(t, 42, v)

	assert.Zero(t, r.IntN(0))
}
