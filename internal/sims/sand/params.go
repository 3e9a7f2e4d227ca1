package sand

import (
	"strconv"

	"sandfall/internal/core"
)

const (
	paramIteration     = "iteration"
	paramDiagonalSlide = "diagonal_slide"
)

// Parameters reports the current tunables for the HUD.
func (w *World) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("w", "Width", w.cfg.Width),
				intParam("h", "Height", w.cfg.Height),
				{Key: "seed", Label: "Seed", Type: core.ParamTypeInt, Value: strconv.FormatInt(w.cfg.Seed, 10)},
				intParam("tick", "Tick", w.tick),
			},
		},
		{
			Name: "Scheduler",
			Params: []core.Parameter{
				intParam(paramIteration, "Samples per tick", w.sched.Iteration),
				{
					Key:         paramDiagonalSlide,
					Label:       "Diagonal slide",
					Type:        core.ParamTypeBool,
					Value:       strconv.FormatBool(w.sched.DiagonalSlide),
					Description: "let resting sand slide into softer diagonal cells",
				},
			},
		},
	}}
}

// ParameterControls lists the HUD-adjustable parameters.
func (w *World) ParameterControls() []core.ParameterControl {
	area := float64(w.cfg.Width * w.cfg.Height)
	return []core.ParameterControl{
		{Key: paramIteration, Label: "Samples/tick", Type: core.ParamTypeInt, Step: float64(DefaultIteration(w.cfg.Width, w.cfg.Height)) / 4, Min: 1, Max: area, HasMin: true, HasMax: true},
		{Key: paramDiagonalSlide, Label: "Diagonal slide", Type: core.ParamTypeBool},
	}
}

// SetIntParameter updates an integer parameter, clamping it to its bounds.
func (w *World) SetIntParameter(key string, value int) bool {
	switch key {
	case paramIteration:
		if value < 1 {
			value = 1
		}
		if area := w.cfg.Width * w.cfg.Height; value > area {
			value = area
		}
		w.sched.Iteration = value
		w.cfg.Iteration = value
		return true
	}
	return false
}

// SetBoolParameter toggles a boolean parameter.
func (w *World) SetBoolParameter(key string, value bool) bool {
	switch key {
	case paramDiagonalSlide:
		w.sched.DiagonalSlide = value
		w.cfg.DiagonalSlide = value
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
