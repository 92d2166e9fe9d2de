package ports

import (
	"context"

	"assistant-client/internal/domain/model"
)

type CacheRepository interface {
	SaveRooms(ctx context.Context, rooms []model.Room) error
	Rooms(ctx context.Context) ([]model.Room, error)
	SaveThings(ctx context.Context, roomID string, things []model.Thing) error
	Things(ctx context.Context, roomID string) ([]model.Thing, error)
	Clear(ctx context.Context) error
}
