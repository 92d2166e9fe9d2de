package translator

import (
	"assistant-client/internal/domain/model"
	"github.com/amimof/huego"
)

type DoorStrategy struct{}

func (s *DoorStrategy) ToHue(thing *model.Thing, _ *model.FormulaConfig) *huego.State {
	state := &huego.State{}
	state.On = thing.State.Bool("is_open")
	if state.On {
		state.Bri = maxBri
	}
	state.Reachable = true
	return state
}

func (s *DoorStrategy) ToAction(hueState *huego.State, thing *model.Thing, _ *model.FormulaConfig) model.Message {
	action := model.ActionOpen
	if !hueState.On {
		action = model.ActionClose
	}
	return model.NewMessage(action, thing.ID, nil)
}
