package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDimension(t *testing.T) {
	cases := []struct {
		extent, cell float64
		want         int
		wantErr      bool
	}{
		{600, 20, 30, false},
		{50, 20, 2, false},
		{20, 20, 1, false},
		{10, 20, 0, true},
		{0, 20, 0, true},
		{600, 0, 0, true},
		{-5, 1, 0, true},
		{1e9, 1, 0, true},
	}
	for _, tc := range cases {
		cfg := DefaultConfig()
		cfg.Extent, cfg.CellSize = tc.extent, tc.cell
		got, err := cfg.Dimension()
		if tc.wantErr {
			assert.ErrorIs(t, err, ErrInvalidSize, "extent %g cell %g", tc.extent, tc.cell)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tc.want, got)
	}
}

func TestValidateUnknownAlgorithm(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Algorithm = "prim"
	assert.ErrorIs(t, cfg.Validate(), ErrUnknownAlgorithm)
}

func TestFromMap(t *testing.T) {
	cfg := FromMap(map[string]string{
		"extent":         "400",
		"cell_size":      "10",
		"algorithm":      "wilson",
		"seed":           "-3",
		"steps_per_tick": "4",
		"start_col":      "2",
		"start_row":      "bogus",
	})
	assert.Equal(t, 400.0, cfg.Extent)
	assert.Equal(t, 10.0, cfg.CellSize)
	assert.Equal(t, AlgorithmWilson, cfg.Algorithm)
	assert.Equal(t, int64(-3), cfg.Seed)
	assert.Equal(t, 4, cfg.StepsPerTick)
	assert.Equal(t, 2, cfg.StartCol)
	assert.Equal(t, 0, cfg.StartRow)
}

func TestFromMapKeepsDefaultsOnBadValues(t *testing.T) {
	cfg := FromMap(map[string]string{"extent": "-1", "cell_size": "x", "steps_per_tick": "0"})
	assert.Equal(t, DefaultConfig(), cfg)
	assert.Equal(t, DefaultConfig(), FromMap(nil))
}

func TestToMapRoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Extent = 123.5
	cfg.Algorithm = AlgorithmWilson
	cfg.StartRow = 3
	assert.Equal(t, cfg, FromMap(cfg.ToMap()))
}

func TestAlgorithms(t *testing.T) {
	assert.Equal(t, []string{AlgorithmBacktracker, AlgorithmWilson}, Algorithms())
}
