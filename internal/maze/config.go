package maze

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

var (
	// ErrInvalidSize reports an extent or cell size that cannot produce a grid.
	ErrInvalidSize = errors.New("maze: invalid size")
	// ErrUnknownAlgorithm reports an algorithm name with no registered generator.
	ErrUnknownAlgorithm = errors.New("maze: unknown algorithm")
)

// Config controls how a Maze is built. Any change to it requires a full
// rebuild of the grid and generator.
type Config struct {
	// Extent is the total side length of the maze and CellSize the side of a
	// single cell, in the same units. The grid has floor(Extent/CellSize)
	// cells per side.
	Extent   float64
	CellSize float64

	Algorithm string
	Seed      int64

	// StepsPerTick is how many generator steps one Maze.Step performs.
	StepsPerTick int

	StartCol int
	StartRow int
}

// DefaultConfig returns the standard configuration: a 30x30 backtracker maze.
func DefaultConfig() Config {
	return Config{
		Extent:       600,
		CellSize:     20,
		Algorithm:    AlgorithmBacktracker,
		Seed:         42,
		StepsPerTick: 1,
	}
}

// Dimension returns the number of cells per side.
func (c Config) Dimension() (int, error) {
	if !(c.Extent > 0) || !(c.CellSize > 0) || math.IsInf(c.Extent, 0) || math.IsInf(c.CellSize, 0) {
		return 0, fmt.Errorf("%w: extent %g, cell size %g", ErrInvalidSize, c.Extent, c.CellSize)
	}
	n := math.Floor(c.Extent / c.CellSize)
	if n < 1 {
		return 0, fmt.Errorf("%w: extent %g smaller than cell size %g", ErrInvalidSize, c.Extent, c.CellSize)
	}
	if n > maxDimension {
		return 0, fmt.Errorf("%w: %g cells per side exceeds %d", ErrInvalidSize, n, maxDimension)
	}
	return int(n), nil
}

const maxDimension = 1024

// Validate checks that the configuration can build a maze.
func (c Config) Validate() error {
	if _, err := c.Dimension(); err != nil {
		return err
	}
	if _, ok := algorithms[c.Algorithm]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownAlgorithm, c.Algorithm)
	}
	return nil
}

// startIndex clamps the configured start cell into g.
func (c Config) startIndex(g *Grid) int {
	col := clamp(c.StartCol, 0, g.Cols()-1)
	row := clamp(c.StartRow, 0, g.Rows()-1)
	return g.Index(col, row)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Unparseable or out-of-range values keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["extent"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Extent = parsed
		}
	}
	if v, ok := cfg["cell_size"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.CellSize = parsed
		}
	}
	if v, ok := cfg["algorithm"]; ok && v != "" {
		c.Algorithm = v
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["steps_per_tick"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.StepsPerTick = parsed
		}
	}
	if v, ok := cfg["start_col"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.StartCol = parsed
		}
	}
	if v, ok := cfg["start_row"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.StartRow = parsed
		}
	}
	return c
}

// ToMap is the inverse of FromMap.
func (c Config) ToMap() map[string]string {
	return map[string]string{
		"extent":         strconv.FormatFloat(c.Extent, 'f', -1, 64),
		"cell_size":      strconv.FormatFloat(c.CellSize, 'f', -1, 64),
		"algorithm":      c.Algorithm,
		"seed":           strconv.FormatInt(c.Seed, 10),
		"steps_per_tick": strconv.Itoa(c.StepsPerTick),
		"start_col":      strconv.Itoa(c.StartCol),
		"start_row":      strconv.Itoa(c.StartRow),
	}
}
