package app

import (
	"flag"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"mazegen/internal/maze"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestNewConfigDefaults(t *testing.T) {
	cfg := NewConfig()
	assert.Equal(t, maze.AlgorithmBacktracker, cfg.Sim)
	assert.Equal(t, 10, cfg.Scale)
	assert.Equal(t, 60, cfg.TPS)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.NoError(t, cfg.Validate())
}

func TestLoadFlags(t *testing.T) {
	cfg, err := Load(newFlagSet(), []string{"-sim", "wilson", "-seed", "7", "-cell", "30"})
	require.NoError(t, err)
	assert.Equal(t, "wilson", cfg.Sim)
	assert.Equal(t, int64(7), cfg.Seed)
	assert.Equal(t, 30.0, cfg.CellSize)
	assert.Equal(t, "30", cfg.SimOptions()["cell_size"])
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("MAZE_SIM", "wilson")
	t.Setenv("MAZE_TPS", "30")
	t.Setenv("MAZE_EXTENT", "300")

	cfg, err := Load(newFlagSet(), []string{"-tps", "15"})
	require.NoError(t, err)
	assert.Equal(t, "wilson", cfg.Sim)
	assert.Equal(t, 15, cfg.TPS, "flags override the environment")
	assert.Equal(t, 300.0, cfg.Extent)
}

func TestLoadEnvRejectsBadNumbers(t *testing.T) {
	t.Setenv("MAZE_SCALE", "big")
	_, err := Load(newFlagSet(), nil)
	assert.ErrorContains(t, err, "MAZE_SCALE")
}

func TestLoadEnvFile(t *testing.T) {
	path := writeFile(t, "maze.env", "MAZE_STEPS_PER_TICK=4\n")
	t.Cleanup(func() { os.Unsetenv("MAZE_STEPS_PER_TICK") })

	cfg := NewConfig()
	require.NoError(t, cfg.LoadEnv(path))
	assert.Equal(t, 4, cfg.StepsPerTick)
}

func TestLoadPresetFile(t *testing.T) {
	path := writeFile(t, "preset.toml", `
sim = "wilson"
seed = 99
extent = 200.0
cell_size = 10.0
steps_per_tick = 5
`)

	cfg, err := Load(newFlagSet(), []string{"-config", path, "-seed", "3"})
	require.NoError(t, err)
	assert.Equal(t, "wilson", cfg.Sim)
	assert.Equal(t, int64(3), cfg.Seed, "explicit flags win over the preset")
	assert.Equal(t, 200.0, cfg.Extent)
	assert.Equal(t, 10.0, cfg.CellSize)
	assert.Equal(t, 5, cfg.StepsPerTick)
	assert.Equal(t, 60, cfg.TPS, "keys absent from the preset keep their defaults")
}

func TestLoadPresetZeroValuesOverrideEnv(t *testing.T) {
	t.Setenv("MAZE_HUD_WIDTH", "300")
	t.Setenv("MAZE_VERBOSE", "true")
	t.Setenv("MAZE_SEED", "7")
	path := writeFile(t, "zero.toml", `
hud_width = 0
verbose = false
seed = 0
`)

	cfg, err := Load(newFlagSet(), []string{"-config", path})
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.HUDWidth)
	assert.False(t, cfg.Verbose)
	assert.Equal(t, int64(0), cfg.Seed)
	assert.Equal(t, 10, cfg.Scale, "keys absent from the preset keep their defaults")
}

func TestLoadPresetErrors(t *testing.T) {
	_, err := Load(newFlagSet(), []string{"-config", filepath.Join(t.TempDir(), "missing.toml")})
	assert.ErrorContains(t, err, "read config")

	bad := writeFile(t, "bad.toml", "sim = \n")
	_, err = Load(newFlagSet(), []string{"-config", bad})
	assert.ErrorContains(t, err, "parse config")
}

func TestValidate(t *testing.T) {
	cfg := NewConfig()
	cfg.Sim = "prim"
	assert.ErrorIs(t, cfg.Validate(), maze.ErrUnknownAlgorithm)

	cfg = NewConfig()
	cfg.CellSize = cfg.Extent + 1
	assert.ErrorIs(t, cfg.Validate(), maze.ErrInvalidSize)

	cfg = NewConfig()
	cfg.StepsPerTick = 0
	assert.ErrorContains(t, cfg.Validate(), "steps per tick")
}

func TestValidateViewerChecksWindowSettings(t *testing.T) {
	cfg := NewConfig()
	cfg.Scale = 0
	assert.NoError(t, cfg.Validate(), "headless tools ignore the scale")
	assert.ErrorContains(t, cfg.ValidateViewer(), "scale")

	cfg = NewConfig()
	cfg.Sim = "prim"
	assert.ErrorIs(t, cfg.ValidateViewer(), maze.ErrUnknownAlgorithm)
}

func TestNewLoggerLevel(t *testing.T) {
	var quiet, loud strings.Builder
	NewLogger(&quiet, false).Debug("hidden")
	NewLogger(&loud, true).Debug("shown", "k", 1)

	assert.Empty(t, quiet.String())
	assert.Contains(t, loud.String(), "msg=shown")
	assert.Contains(t, loud.String(), "k=1")
}
