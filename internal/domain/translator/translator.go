package translator

import (
	"math"

	"assistant-client/internal/domain/model"
	"github.com/amimof/huego"
)

// Translator defines the interface for translating between assistant thing
// states and Hue light states.
type Translator interface {
	ToHue(thing *model.Thing, formula *model.FormulaConfig) *huego.State
	ToAction(hueState *huego.State, thing *model.Thing, formula *model.FormulaConfig) model.Message
}

const maxBri = 254

// toBri clamps v into the Hue brightness range.
func toBri(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > maxBri {
		return maxBri
	}
	return uint8(math.Round(v))
}
