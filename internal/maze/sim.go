package maze

import (
	"fmt"

	"mazegen/internal/core"
)

// Maze adapts a Grid and Generator to the core.Sim contract. Each Step runs
// Config.StepsPerTick generator steps and refreshes the raster that the
// renderer reads through Cells.
type Maze struct {
	cfg  Config
	seed int64

	grid   *Grid
	gen    Generator
	raster *core.ByteGrid

	onTrail []bool
}

// New builds a maze from cfg.
func New(cfg Config) (*Maze, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	m := &Maze{cfg: cfg, seed: cfg.Seed}
	if err := m.rebuild(); err != nil {
		return nil, err
	}
	return m, nil
}

// rebuild discards the grid and generator and constructs both from scratch.
func (m *Maze) rebuild() error {
	n, err := m.cfg.Dimension()
	if err != nil {
		return err
	}
	grid := NewGrid(n, n)
	gen, err := NewGenerator(m.cfg.Algorithm, grid, m.cfg.startIndex(grid), core.NewRNG(m.seed))
	if err != nil {
		return err
	}
	m.grid, m.gen = grid, gen

	w, h := 2*n+1, 2*n+1
	if m.raster == nil || m.raster.W != w || m.raster.H != h {
		m.raster = core.NewByteGrid(w, h)
	}
	if len(m.onTrail) != grid.Len() {
		m.onTrail = make([]bool, grid.Len())
	}
	m.redraw()
	return nil
}

// Name returns the generator algorithm.
func (m *Maze) Name() string { return m.cfg.Algorithm }

// Size returns the raster dimensions.
func (m *Maze) Size() core.Size { return core.Size{W: m.raster.W, H: m.raster.H} }

// Cells exposes the raster in row-major order. Values are Display* constants.
func (m *Maze) Cells() []uint8 { return m.raster.Cells() }

// Reset rebuilds the maze with the given seed. A zero seed reuses the
// configured one.
func (m *Maze) Reset(seed int64) {
	if seed == 0 {
		seed = m.cfg.Seed
	}
	m.seed = seed
	if err := m.rebuild(); err != nil {
		panic(fmt.Sprintf("maze: rebuild of accepted configuration failed: %v", err))
	}
}

// Step advances the generator by up to StepsPerTick steps.
func (m *Maze) Step() { m.StepWithin(0) }

// StepWithin runs one tick like Step but takes at most limit generator
// steps. A non-positive limit leaves the tick uncapped.
func (m *Maze) StepWithin(limit int) {
	n := max(m.cfg.StepsPerTick, 1)
	if limit > 0 {
		n = min(n, limit)
	}
	for i := 0; i < n && !m.gen.Done(); i++ {
		m.gen.Step()
	}
	m.redraw()
}

// Done reports whether generation finished.
func (m *Maze) Done() bool { return m.gen.Done() }

// Grid exposes the cells for renderers and analysis.
func (m *Maze) Grid() *Grid { return m.grid }

// Generator exposes the active generator.
func (m *Maze) Generator() Generator { return m.gen }

// Config returns the active configuration.
func (m *Maze) Config() Config { return m.cfg }

// Seed returns the seed of the current build.
func (m *Maze) Seed() int64 { return m.seed }

// Reconfigure validates cfg and rebuilds the maze with it, keeping the
// current seed. The previous maze is discarded.
func (m *Maze) Reconfigure(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	m.cfg = cfg
	return m.rebuild()
}

func init() {
	for _, name := range Algorithms() {
		core.Register(name, factory(name))
	}
}

func factory(name string) core.Factory {
	return func(opts map[string]string) core.Sim {
		cfg := FromMap(opts)
		cfg.Algorithm = name
		m, err := New(cfg)
		if err != nil {
			fallback := DefaultConfig()
			fallback.Algorithm = name
			fallback.Seed = cfg.Seed
			m, _ = New(fallback)
		}
		return m
	}
}
