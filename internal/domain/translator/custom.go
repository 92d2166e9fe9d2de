package translator

import (
	"github.com/Knetic/govaluate"
	"assistant-client/internal/domain/model"
	"github.com/amimof/huego"
)

const (
	defaultAttribute = "value"
	defaultParam     = "value"
)

type CustomStrategy struct{}

func (s *CustomStrategy) ToHue(thing *model.Thing, formula *model.FormulaConfig) *huego.State {
	state := &huego.State{}

	attribute := defaultAttribute
	if formula != nil && formula.Attribute != "" {
		attribute = formula.Attribute
	}
	input, _ := thing.State.Number(attribute)

	if formula != nil && formula.ToHue != "" {
		state.Bri = toBri(s.evaluate(formula.ToHue, input))
	} else {
		state.Bri = toBri(input)
	}

	state.On = thing.State.Bool("is_active") || state.Bri > 0
	state.Reachable = true
	return state
}

func (s *CustomStrategy) ToAction(hueState *huego.State, thing *model.Thing, formula *model.FormulaConfig) model.Message {
	onAction, offAction, param := model.ActionOn, model.ActionOff, defaultParam
	if formula != nil {
		if formula.OnAction != "" {
			onAction = formula.OnAction
		}
		if formula.OffAction != "" {
			offAction = formula.OffAction
		}
		if formula.Param != "" {
			param = formula.Param
		}
	}

	if !hueState.On {
		return model.NewMessage(offAction, thing.ID, nil)
	}

	input := float64(hueState.Bri)
	output := input
	if formula != nil && formula.ToAction != "" {
		output = s.evaluate(formula.ToAction, input)
	}

	return model.NewMessage(onAction, thing.ID, model.ActionParams{param: output})
}

// evaluate handles simple formulas like "x * 2.54" or "x / 2.54 + 7"
func (s *CustomStrategy) evaluate(formula string, x float64) float64 {
	expression, err := govaluate.NewEvaluableExpression(formula)
	if err != nil {
		return x
	}
	parameters := make(map[string]interface{}, 1)
	parameters["x"] = x

	result, err := expression.Evaluate(parameters)
	if err != nil {
		return x
	}

	if val, ok := result.(float64); ok {
		return val
	}
	return x
}
