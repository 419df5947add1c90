package app

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"mazegen/internal/maze"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

// Config represents the shared command-line parameters of the mazegen tools.
type Config struct {
	Sim          string  `toml:"sim"`
	Scale        int     `toml:"scale"`
	TPS          int     `toml:"tps"`
	Seed         int64   `toml:"seed"`
	Extent       float64 `toml:"extent"`
	CellSize     float64 `toml:"cell_size"`
	StepsPerTick int     `toml:"steps_per_tick"`
	HUDWidth     int     `toml:"hud_width"`
	Verbose      bool    `toml:"verbose"`

	// File is the optional TOML preset applied below explicit flags.
	File string `toml:"-"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	mc := maze.DefaultConfig()
	return &Config{
		Sim:          mc.Algorithm,
		Scale:        10,
		TPS:          60,
		Seed:         mc.Seed,
		Extent:       mc.Extent,
		CellSize:     mc.CellSize,
		StepsPerTick: mc.StepsPerTick,
		HUDWidth:     240,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "maze algorithm to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for maze generation")
	fs.Float64Var(&c.Extent, "extent", c.Extent, "total maze side length")
	fs.Float64Var(&c.CellSize, "cell", c.CellSize, "side length of one cell")
	fs.IntVar(&c.StepsPerTick, "steps-per-tick", c.StepsPerTick, "generator steps per tick")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "HUD panel width in pixels (0 hides it)")
	fs.BoolVar(&c.Verbose, "v", c.Verbose, "verbose logging")
	fs.StringVar(&c.File, "config", c.File, "TOML preset file")
}

// Load resolves the configuration from, in increasing precedence: defaults,
// a .env file and MAZE_* environment variables, the TOML preset named by
// -config or MAZE_CONFIG, and explicitly set flags. Callers may register
// their own flags on fs before calling Load.
func Load(fs *flag.FlagSet, args []string) (*Config, error) {
	c := NewConfig()
	if err := c.LoadEnv(); err != nil {
		return nil, err
	}
	c.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if c.File == "" {
		return c, nil
	}
	explicit := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { explicit[f.Name] = true })
	if err := c.ApplyFile(c.File, explicit); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadEnv reads the given .env files (default ".env", missing files are
// ignored) and applies any MAZE_* variables.
func (c *Config) LoadEnv(filenames ...string) error {
	if len(filenames) == 0 {
		filenames = []string{".env"}
	}
	for _, name := range filenames {
		if err := godotenv.Load(name); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("load %s: %w", name, err)
		}
	}

	if v, ok := os.LookupEnv("MAZE_SIM"); ok {
		c.Sim = v
	}
	if v, ok := os.LookupEnv("MAZE_CONFIG"); ok {
		c.File = v
	}
	if v, ok := os.LookupEnv("MAZE_VERBOSE"); ok {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("MAZE_VERBOSE must be a boolean: %w", err)
		}
		c.Verbose = parsed
	}
	ints := []struct {
		key string
		dst *int
	}{
		{"MAZE_SCALE", &c.Scale},
		{"MAZE_TPS", &c.TPS},
		{"MAZE_STEPS_PER_TICK", &c.StepsPerTick},
		{"MAZE_HUD_WIDTH", &c.HUDWidth},
	}
	for _, e := range ints {
		if v, ok := os.LookupEnv(e.key); ok {
			parsed, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("%s must be an integer: %w", e.key, err)
			}
			*e.dst = parsed
		}
	}
	floats := []struct {
		key string
		dst *float64
	}{
		{"MAZE_EXTENT", &c.Extent},
		{"MAZE_CELL_SIZE", &c.CellSize},
	}
	for _, e := range floats {
		if v, ok := os.LookupEnv(e.key); ok {
			parsed, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return fmt.Errorf("%s must be a number: %w", e.key, err)
			}
			*e.dst = parsed
		}
	}
	if v, ok := os.LookupEnv("MAZE_SEED"); ok {
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("MAZE_SEED must be an integer: %w", err)
		}
		c.Seed = parsed
	}
	return nil
}

// preset mirrors Config with pointer fields so that keys present in a TOML
// file are distinguishable from absent ones, including zero values.
type preset struct {
	Sim          *string  `toml:"sim"`
	Scale        *int     `toml:"scale"`
	TPS          *int     `toml:"tps"`
	Seed         *int64   `toml:"seed"`
	Extent       *float64 `toml:"extent"`
	CellSize     *float64 `toml:"cell_size"`
	StepsPerTick *int     `toml:"steps_per_tick"`
	HUDWidth     *int     `toml:"hud_width"`
	Verbose      *bool    `toml:"verbose"`
}

// ApplyFile decodes the TOML preset at path and copies every key it sets,
// except those whose flag name appears in explicit.
func (c *Config) ApplyFile(path string, explicit map[string]bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	var file preset
	if err := toml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	setFrom(&c.Sim, file.Sim, explicit["sim"])
	setFrom(&c.Scale, file.Scale, explicit["scale"])
	setFrom(&c.TPS, file.TPS, explicit["tps"])
	setFrom(&c.Seed, file.Seed, explicit["seed"])
	setFrom(&c.Extent, file.Extent, explicit["extent"])
	setFrom(&c.CellSize, file.CellSize, explicit["cell"])
	setFrom(&c.StepsPerTick, file.StepsPerTick, explicit["steps-per-tick"])
	setFrom(&c.HUDWidth, file.HUDWidth, explicit["hud"])
	setFrom(&c.Verbose, file.Verbose, explicit["v"])
	return nil
}

func setFrom[T any](dst *T, src *T, skip bool) {
	if src != nil && !skip {
		*dst = *src
	}
}

// MazeConfig converts the options into a maze configuration.
func (c *Config) MazeConfig() maze.Config {
	mc := maze.DefaultConfig()
	mc.Algorithm = c.Sim
	mc.Seed = c.Seed
	mc.Extent = c.Extent
	mc.CellSize = c.CellSize
	mc.StepsPerTick = c.StepsPerTick
	return mc
}

// SimOptions returns the options map handed to registry factories.
func (c *Config) SimOptions() map[string]string {
	return c.MazeConfig().ToMap()
}

// Validate reports errors in the settings every tool uses.
func (c *Config) Validate() error {
	if c.StepsPerTick <= 0 {
		return fmt.Errorf("steps per tick must be positive, got %d", c.StepsPerTick)
	}
	return c.MazeConfig().Validate()
}

// ValidateViewer additionally checks the window settings. Call it before
// any window is opened.
func (c *Config) ValidateViewer() error {
	if c.Scale <= 0 {
		return fmt.Errorf("scale must be positive, got %d", c.Scale)
	}
	return c.Validate()
}
