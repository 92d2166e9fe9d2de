package persistence

import (
	"context"
	"fmt"

	"assistant-client/internal/domain/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CacheRepository mirrors server rooms and things in the embedded database.
// Rows are keyed by server ID and overwritten on every save.
type CacheRepository struct {
	db *gorm.DB
}

func NewCacheRepository(db *gorm.DB) *CacheRepository {
	return &CacheRepository{db: db}
}

func (r *CacheRepository) SaveRooms(ctx context.Context, rooms []model.Room) error {
	if len(rooms) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		rows := make([]roomRow, 0, len(rooms))
		for i, room := range rooms {
			rows = append(rows, toRoomRow(room, i))
		}
		if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(&rows).Error; err != nil {
			return fmt.Errorf("save rooms: %w", err)
		}
		for _, room := range rooms {
			if len(room.Things) == 0 {
				continue
			}
			if err := saveThings(tx, room.ID, room.Things); err != nil {
				return err
			}
		}
		return nil
	})
}

// Rooms returns the cached rooms in server order with their cached things.
func (r *CacheRepository) Rooms(ctx context.Context) ([]model.Room, error) {
	var rows []roomRow
	db := r.db.WithContext(ctx)
	if err := db.Order("position asc, name asc").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("load rooms: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	ids := make([]string, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}
	var thingRows []thingRow
	if err := db.Where("placement IN ?", ids).Order("position asc, id asc").Find(&thingRows).Error; err != nil {
		return nil, fmt.Errorf("load room things: %w", err)
	}
	byRoom := make(map[string][]model.Thing)
	for _, tr := range thingRows {
		t, err := tr.toModel()
		if err != nil {
			return nil, fmt.Errorf("decode thing %s: %w", tr.ID, err)
		}
		byRoom[t.Placement] = append(byRoom[t.Placement], t)
	}

	rooms := make([]model.Room, 0, len(rows))
	for _, row := range rows {
		room := row.toModel()
		room.Things = byRoom[room.ID]
		rooms = append(rooms, room)
	}
	return rooms, nil
}

func (r *CacheRepository) SaveThings(ctx context.Context, roomID string, things []model.Thing) error {
	if len(things) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return saveThings(tx, roomID, things)
	})
}

func saveThings(tx *gorm.DB, roomID string, things []model.Thing) error {
	rows := make([]thingRow, 0, len(things))
	for i, t := range things {
		if t.Placement == "" {
			t.Placement = roomID
		}
		row, err := toThingRow(t, i)
		if err != nil {
			return fmt.Errorf("encode thing %s: %w", t.ID, err)
		}
		rows = append(rows, row)
	}
	if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(&rows).Error; err != nil {
		return fmt.Errorf("save things: %w", err)
	}
	return nil
}

func (r *CacheRepository) Things(ctx context.Context, roomID string) ([]model.Thing, error) {
	var rows []thingRow
	if err := r.db.WithContext(ctx).Where("placement = ?", roomID).Order("position asc, id asc").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("load things: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	things := make([]model.Thing, 0, len(rows))
	for _, row := range rows {
		t, err := row.toModel()
		if err != nil {
			return nil, fmt.Errorf("decode thing %s: %w", row.ID, err)
		}
		things = append(things, t)
	}
	return things, nil
}

// Clear drops every cached room and thing.
func (r *CacheRepository) Clear(ctx context.Context) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&thingRow{}).Error; err != nil {
			return fmt.Errorf("clear things: %w", err)
		}
		if err := tx.Where("1 = 1").Delete(&roomRow{}).Error; err != nil {
			return fmt.Errorf("clear rooms: %w", err)
		}
		return nil
	})
}

// Count reports how many rows of each kind are cached.
func (r *CacheRepository) Count(ctx context.Context) (rooms, things int64, err error) {
	db := r.db.WithContext(ctx)
	if err = db.Model(&roomRow{}).Count(&rooms).Error; err != nil {
		return 0, 0, err
	}
	if err = db.Model(&thingRow{}).Count(&things).Error; err != nil {
		return 0, 0, err
	}
	return rooms, things, nil
}
