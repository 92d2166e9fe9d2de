package ports

import (
	"context"

	"assistant-client/internal/domain/model"
	"github.com/amimof/huego"
)

// RepositoryPort is what the CLI and the local gateway drive.
type RepositoryPort interface {
	Auth(ctx context.Context, authorization model.Authorization) (*model.AuthorizationAnswer, error)
	Rooms(ctx context.Context) ([]model.Room, error)
	Things(ctx context.Context, roomID string) ([]model.Thing, error)
	Action(ctx context.Context, message model.Message) (*model.Message, error)
	Logout(ctx context.Context) error
	SaveURL(ctx context.Context, url string) error
	URL(ctx context.Context) (string, error)
}

// ThingControlPort drives things with Hue-style states.
type ThingControlPort interface {
	Display(thing *model.Thing) *huego.State
	SetState(ctx context.Context, thing *model.Thing, state *huego.State) (*model.Message, error)
}
