package ports

import (
	"context"

	"assistant-client/internal/domain/model"
)

// AssistantAPI is the remote REST API. Implementations return *model.APIError
// on every failure.
type AssistantAPI interface {
	Auth(ctx context.Context, authorization model.Authorization) (*model.AuthorizationAnswer, error)
	Rooms(ctx context.Context) ([]model.Room, error)
	Things(ctx context.Context, roomID string) ([]model.Thing, error)
	Action(ctx context.Context, message model.Message) (*model.Message, error)
}

// ClientLifecycle controls the shared HTTP client behind AssistantAPI.
type ClientLifecycle interface {
	Recreate()
	Delete()
}
