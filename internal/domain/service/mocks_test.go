package service

import (
	"context"

	"assistant-client/internal/domain/model"
	"github.com/stretchr/testify/mock"
)

type MockAPI struct {
	mock.Mock
}

func (m *MockAPI) Auth(ctx context.Context, a model.Authorization) (*model.AuthorizationAnswer, error) {
	args := m.Called(ctx, a)
	answer, _ := args.Get(0).(*model.AuthorizationAnswer)
	return answer, args.Error(1)
}

func (m *MockAPI) Rooms(ctx context.Context) ([]model.Room, error) {
	args := m.Called(ctx)
	rooms, _ := args.Get(0).([]model.Room)
	return rooms, args.Error(1)
}

func (m *MockAPI) Things(ctx context.Context, roomID string) ([]model.Thing, error) {
	args := m.Called(ctx, roomID)
	things, _ := args.Get(0).([]model.Thing)
	return things, args.Error(1)
}

func (m *MockAPI) Action(ctx context.Context, msg model.Message) (*model.Message, error) {
	args := m.Called(ctx, msg)
	echo, _ := args.Get(0).(*model.Message)
	return echo, args.Error(1)
}

type MockCache struct {
	mock.Mock
}

func (m *MockCache) SaveRooms(ctx context.Context, rooms []model.Room) error {
	return m.Called(ctx, rooms).Error(0)
}

func (m *MockCache) Rooms(ctx context.Context) ([]model.Room, error) {
	args := m.Called(ctx)
	rooms, _ := args.Get(0).([]model.Room)
	return rooms, args.Error(1)
}

func (m *MockCache) SaveThings(ctx context.Context, roomID string, things []model.Thing) error {
	return m.Called(ctx, roomID, things).Error(0)
}

func (m *MockCache) Things(ctx context.Context, roomID string) ([]model.Thing, error) {
	args := m.Called(ctx, roomID)
	things, _ := args.Get(0).([]model.Thing)
	return things, args.Error(1)
}

func (m *MockCache) Clear(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type MockAuth struct {
	mock.Mock
}

func (m *MockAuth) SaveURL(ctx context.Context, url string) error {
	return m.Called(ctx, url).Error(0)
}

func (m *MockAuth) URL(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockAuth) SaveAuthorizationAnswer(ctx context.Context, a *model.AuthorizationAnswer) error {
	return m.Called(ctx, a).Error(0)
}

func (m *MockAuth) Token(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockAuth) DeleteToken(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type MockLifecycle struct {
	mock.Mock
}

func (m *MockLifecycle) Recreate() { m.Called() }
func (m *MockLifecycle) Delete()   { m.Called() }
