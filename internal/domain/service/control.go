package service

import (
	"context"

	"assistant-client/internal/domain/model"
	"assistant-client/internal/domain/translator"
	"assistant-client/internal/ports"
	"github.com/amimof/huego"
)

// ThingControl drives things with Hue-style light states.
type ThingControl struct {
	repo        ports.RepositoryPort
	translators *translator.Factory
}

func NewThingControl(repo ports.RepositoryPort, translators *translator.Factory) *ThingControl {
	return &ThingControl{repo: repo, translators: translators}
}

func (c *ThingControl) Display(thing *model.Thing) *huego.State {
	return c.translators.ToHue(thing)
}

func (c *ThingControl) SetState(ctx context.Context, thing *model.Thing, state *huego.State) (*model.Message, error) {
	if thing == nil || state == nil {
		return nil, &model.APIError{Code: model.CodeInvalidRequest, Message: "thing and state are required"}
	}
	return c.repo.Action(ctx, c.translators.ToAction(state, thing))
}
