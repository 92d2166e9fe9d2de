package translator

import (
	"assistant-client/internal/domain/model"
	"github.com/amimof/huego"
)

type LampStrategy struct{}

func (s *LampStrategy) ToHue(thing *model.Thing, _ *model.FormulaConfig) *huego.State {
	state := &huego.State{}
	state.On = thing.State.Bool("is_active")
	if state.On {
		state.Bri = maxBri
	}
	state.Reachable = true
	return state
}

func (s *LampStrategy) ToAction(hueState *huego.State, thing *model.Thing, _ *model.FormulaConfig) model.Message {
	action := model.ActionOn
	if !hueState.On {
		action = model.ActionOff
	}
	return model.NewMessage(action, thing.ID, nil)
}
