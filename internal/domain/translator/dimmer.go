package translator

import (
	"math"

	"assistant-client/internal/domain/model"
	"github.com/amimof/huego"
)

// DimmerStrategy maps the 0-100 brightness percentage onto Hue's 0-254 scale.
type DimmerStrategy struct{}

func (s *DimmerStrategy) ToHue(thing *model.Thing, _ *model.FormulaConfig) *huego.State {
	state := &huego.State{}
	if pct, ok := thing.State.Number("brightness"); ok {
		state.Bri = toBri(pct * maxBri / 100)
	}
	state.On = thing.State.Bool("is_active") || state.Bri > 0
	state.Reachable = true
	return state
}

func (s *DimmerStrategy) ToAction(hueState *huego.State, thing *model.Thing, _ *model.FormulaConfig) model.Message {
	if !hueState.On {
		return model.NewMessage(model.ActionOff, thing.ID, nil)
	}
	pct := int(math.Round(float64(hueState.Bri) * 100 / maxBri))
	return model.NewMessage(model.ActionSetBrightness, thing.ID, model.ActionParams{"brightness": pct})
}
