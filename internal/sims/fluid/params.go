package fluid

import (
	"strconv"

	"cellflow/internal/core"
)

const maxSubsteps = 8

// Parameters reports the grid shape, flow policies and live counters.
func (s *Sim) Parameters() core.ParameterSnapshot {
	groups := []core.ParameterGroup{
		{
			Name: "Grid",
			Params: []core.Parameter{
				intParam("cols", "Columns", s.cols),
				intParam("rows", "Rows", s.rows),
				intParam("cell", "Cell size", s.cfg.CellSize),
			},
		},
		{
			Name: "Flow",
			Params: []core.Parameter{
				intParam("substeps", "Ticks per frame", s.cfg.Substeps),
				boolParam("clamp", "Clamp levels", s.cfg.Clamp),
				boolParam("solids_block", "Solids block", s.cfg.SolidsBlock),
			},
		},
		{
			Name: "State",
			Params: []core.Parameter{
				intParam("ticks", "Ticks", s.ticks),
				floatParam("water", "Water", s.TotalWater()),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the values the HUD may adjust.
func (s *Sim) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "substeps", Label: "Ticks per frame", Type: core.ParamTypeInt, Step: 1, Min: 0, Max: maxSubsteps, HasMin: true, HasMax: true},
		{Key: "clamp", Label: "Clamp levels", Type: core.ParamTypeBool},
		{Key: "solids_block", Label: "Solids block", Type: core.ParamTypeBool},
	}
}

// SetIntParameter updates an integer control. Out-of-range values are clamped.
func (s *Sim) SetIntParameter(key string, value int) bool {
	switch key {
	case "substeps":
		if value < 0 {
			value = 0
		}
		if value > maxSubsteps {
			value = maxSubsteps
		}
		s.cfg.Substeps = value
		return true
	}
	return false
}

// SetBoolParameter updates a boolean flow policy.
func (s *Sim) SetBoolParameter(key string, value bool) bool {
	switch key {
	case "clamp":
		s.cfg.Clamp = value
		return true
	case "solids_block":
		s.cfg.SolidsBlock = value
		return true
	}
	return false
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
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

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', 2, 64),
	}
}
