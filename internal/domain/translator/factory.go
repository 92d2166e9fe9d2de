package translator

import (
	"assistant-client/internal/domain/model"
	"github.com/amimof/huego"
)

type Factory struct {
	strategies map[model.ThingType]Translator
	config     *model.TranslatorConfig
}

func NewFactory(config *model.TranslatorConfig) *Factory {
	return &Factory{
		strategies: map[model.ThingType]Translator{
			model.ThingTypeLamp:   &LampStrategy{},
			model.ThingTypeDimmer: &DimmerStrategy{},
			model.ThingTypeDoor:   &DoorStrategy{},
			model.ThingTypeCustom: &CustomStrategy{},
		},
		config: config,
	}
}

func (f *Factory) GetTranslator(thingType model.ThingType) Translator {
	if t, ok := f.strategies[thingType]; ok {
		return t
	}
	return f.strategies[model.ThingTypeLamp]
}

func (f *Factory) ToHue(thing *model.Thing) *huego.State {
	return f.GetTranslator(thing.Type).ToHue(thing, f.config.Formula(thing.ID))
}

func (f *Factory) ToAction(hueState *huego.State, thing *model.Thing) model.Message {
	return f.GetTranslator(thing.Type).ToAction(hueState, thing, f.config.Formula(thing.ID))
}
