package maze

import (
	"strconv"

	"mazegen/internal/core"
)

// Parameters reports the configuration and generation progress.
func (m *Maze) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Maze",
			Params: []core.Parameter{
				floatParam("extent", "Extent", m.cfg.Extent),
				floatParam("cell_size", "Cell size", m.cfg.CellSize),
				intParam("cols", "Cells per side", m.grid.Cols()),
				stringParam("algorithm", "Algorithm", m.cfg.Algorithm),
				int64Param("seed", "Seed", m.seed),
			},
		},
		{
			Name: "Generation",
			Params: []core.Parameter{
				intParam("steps_per_tick", "Steps per tick", m.cfg.StepsPerTick),
				intParam("steps", "Steps", m.gen.Steps()),
				intParam("carved", "Carved", m.gen.Carved()),
				intParam("trail", "Trail depth", len(m.gen.Trail())),
				boolParam("done", "Done", m.gen.Done()),
			},
		},
	}}
}

// ParameterControls lists the values the HUD may adjust.
func (m *Maze) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "extent", Label: "Extent", Type: core.ParamTypeFloat, Step: 40, Min: 40, HasMin: true, Max: 4000, HasMax: true},
		{Key: "cell_size", Label: "Cell size", Type: core.ParamTypeFloat, Step: 2, Min: 2, HasMin: true, Max: 200, HasMax: true},
		{Key: "steps_per_tick", Label: "Steps per tick", Type: core.ParamTypeInt, Step: 1, Min: 1, HasMin: true, Max: 256, HasMax: true},
	}
}

// SetIntParameter updates integer parameters. Only the generation speed is
// adjustable without a rebuild.
func (m *Maze) SetIntParameter(key string, value int) bool {
	switch key {
	case "steps_per_tick":
		if value < 1 {
			value = 1
		}
		m.cfg.StepsPerTick = value
		return true
	case "start_col", "start_row":
		cfg := m.cfg
		if key == "start_col" {
			cfg.StartCol = value
		} else {
			cfg.StartRow = value
		}
		return m.Reconfigure(cfg) == nil
	}
	return false
}

// SetFloatParameter updates the grid geometry. Any accepted change discards
// the current maze and starts a new one.
func (m *Maze) SetFloatParameter(key string, value float64) bool {
	cfg := m.cfg
	switch key {
	case "extent":
		cfg.Extent = value
	case "cell_size":
		cfg.CellSize = value
	default:
		return false
	}
	return m.Reconfigure(cfg) == nil
}

// SetAlgorithm switches generators, rebuilding the maze.
func (m *Maze) SetAlgorithm(name string) error {
	cfg := m.cfg
	cfg.Algorithm = name
	return m.Reconfigure(cfg)
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}

func boolParam(key, label string, value bool) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeBool,
		Value: strconv.FormatBool(value),
	}
}

func stringParam(key, label, value string) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeString,
		Value: value,
	}
}
