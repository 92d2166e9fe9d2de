package persistence

import (
	"encoding/json"
	"time"

	"assistant-client/internal/domain/model"
	"gorm.io/datatypes"
)

type roomRow struct {
	ID        string `gorm:"primaryKey"`
	Name      string `gorm:"not null"`
	ImagePath string
	Position  int
	UpdatedAt time.Time
}

func (roomRow) TableName() string { return "rooms" }

type thingRow struct {
	ID           string `gorm:"primaryKey"`
	Type         string `gorm:"not null"`
	Placement    string `gorm:"index"`
	FriendlyName string
	State        datatypes.JSON
	Position     int
	UpdatedAt    time.Time
}

func (thingRow) TableName() string { return "things" }

type settingRow struct {
	Key       string `gorm:"column:name;primaryKey"`
	Value     string
	UpdatedAt time.Time
}

func (settingRow) TableName() string { return "settings" }

func toRoomRow(r model.Room, position int) roomRow {
	return roomRow{
		ID:        r.ID,
		Name:      r.Name,
		ImagePath: r.ImagePath,
		Position:  position,
	}
}

func (r roomRow) toModel() model.Room {
	return model.Room{
		ID:        r.ID,
		Name:      r.Name,
		ImagePath: r.ImagePath,
	}
}

func toThingRow(t model.Thing, position int) (thingRow, error) {
	row := thingRow{
		ID:           t.ID,
		Type:         string(t.Type),
		Placement:    t.Placement,
		FriendlyName: t.FriendlyName,
		Position:     position,
	}
	if t.State != nil {
		state, err := json.Marshal(t.State)
		if err != nil {
			return row, err
		}
		row.State = datatypes.JSON(state)
	}
	return row, nil
}

func (r thingRow) toModel() (model.Thing, error) {
	t := model.Thing{
		ID:           r.ID,
		Type:         model.ThingType(r.Type),
		Placement:    r.Placement,
		FriendlyName: r.FriendlyName,
	}
	if len(r.State) > 0 {
		if err := json.Unmarshal(r.State, &t.State); err != nil {
			return t, err
		}
	}
	return t, nil
}
