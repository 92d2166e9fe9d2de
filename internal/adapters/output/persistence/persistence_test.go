package persistence

import (
	"context"
	"fmt"
	"testing"

	"assistant-client/internal/domain/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := Open(dsn, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })
	return db
}

func sampleRooms() []model.Room {
	return []model.Room{
		{ID: "R2", Name: "Kitchen"},
		{ID: "R1", Name: "Hall", Things: []model.Thing{
			{ID: "T9", Type: model.ThingTypeLamp, State: model.ThingState{"is_active": true}},
		}},
	}
}

func TestCacheRepository_SaveAndLoadRooms(t *testing.T) {
	ctx := context.Background()
	repo := NewCacheRepository(openTestDB(t))

	require.NoError(t, repo.SaveRooms(ctx, sampleRooms()))

	rooms, err := repo.Rooms(ctx)
	require.NoError(t, err)
	require.Len(t, rooms, 2)
	assert.Equal(t, "R2", rooms[0].ID, "server order is kept")
	assert.Empty(t, rooms[0].Things)
	require.Len(t, rooms[1].Things, 1)
	assert.Equal(t, "R1", rooms[1].Things[0].Placement, "embedded things inherit the room id")
	assert.True(t, rooms[1].Things[0].State.Bool("is_active"))
}

func TestCacheRepository_RoomsOverwritten(t *testing.T) {
	ctx := context.Background()
	repo := NewCacheRepository(openTestDB(t))

	require.NoError(t, repo.SaveRooms(ctx, sampleRooms()))
	require.NoError(t, repo.SaveRooms(ctx, []model.Room{{ID: "R2", Name: "Big Kitchen"}}))

	rooms, err := repo.Rooms(ctx)
	require.NoError(t, err)
	require.Len(t, rooms, 2)
	assert.Equal(t, "Big Kitchen", rooms[0].Name)
}

func TestCacheRepository_Things(t *testing.T) {
	ctx := context.Background()
	repo := NewCacheRepository(openTestDB(t))

	things := []model.Thing{
		{ID: "L1", Type: model.ThingTypeLamp, Placement: "R2", State: model.ThingState{"is_active": false}},
		{ID: "D1", Type: model.ThingTypeDimmer, Placement: "R2", State: model.ThingState{"brightness": 40.0}},
	}
	require.NoError(t, repo.SaveThings(ctx, "R2", things))
	require.NoError(t, repo.SaveThings(ctx, "R3", []model.Thing{{ID: "X1", Type: model.ThingTypeDoor}}))

	got, err := repo.Things(ctx, "R2")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "L1", got[0].ID)
	n, ok := got[1].State.Number("brightness")
	assert.True(t, ok)
	assert.Equal(t, 40.0, n)

	got, err = repo.Things(ctx, "R9")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestCacheRepository_Clear(t *testing.T) {
	ctx := context.Background()
	repo := NewCacheRepository(openTestDB(t))

	require.NoError(t, repo.SaveRooms(ctx, sampleRooms()))
	rooms, things, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), rooms)
	assert.Equal(t, int64(1), things)

	require.NoError(t, repo.Clear(ctx))
	rooms, things, err = repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, rooms)
	assert.Zero(t, things)
}

func TestCacheRepository_SaveEmpty(t *testing.T) {
	repo := NewCacheRepository(openTestDB(t))
	assert.NoError(t, repo.SaveRooms(context.Background(), nil))
	assert.NoError(t, repo.SaveThings(context.Background(), "R1", nil))
}

func TestAuthRepository_Token(t *testing.T) {
	ctx := context.Background()
	repo := NewAuthRepository(openTestDB(t))

	token, err := repo.Token(ctx)
	require.NoError(t, err)
	assert.Empty(t, token)

	require.NoError(t, repo.SaveAuthorizationAnswer(ctx, &model.AuthorizationAnswer{Token: "abc", Status: "OK"}))
	require.NoError(t, repo.SaveAuthorizationAnswer(ctx, &model.AuthorizationAnswer{Token: "def", Status: "OK"}))
	token, err = repo.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "def", token)

	require.NoError(t, repo.DeleteToken(ctx))
	token, err = repo.Token(ctx)
	require.NoError(t, err)
	assert.Empty(t, token)

	assert.Error(t, repo.SaveAuthorizationAnswer(ctx, nil))
}

func TestAuthRepository_URL(t *testing.T) {
	ctx := context.Background()
	repo := NewAuthRepository(openTestDB(t))

	require.NoError(t, repo.SaveURL(ctx, "https://api.ks-cube.tk/"))
	require.NoError(t, repo.SaveAuthorizationAnswer(ctx, &model.AuthorizationAnswer{Token: "abc"}))
	require.NoError(t, repo.DeleteToken(ctx))

	url, err := repo.URL(ctx)
	require.NoError(t, err)
	assert.Equal(t, "https://api.ks-cube.tk/", url, "deleting the token keeps the url")
}
