package persistence

import (
	"context"
	"errors"
	"fmt"

	"assistant-client/internal/domain/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	keyURL    = "url"
	keyToken  = "token"
	keyStatus = "status"
)

// AuthRepository keeps the server URL and the last authorization answer in
// the settings table.
type AuthRepository struct {
	db *gorm.DB
}

func NewAuthRepository(db *gorm.DB) *AuthRepository {
	return &AuthRepository{db: db}
}

func (r *AuthRepository) SaveURL(ctx context.Context, url string) error {
	return r.put(r.db.WithContext(ctx), keyURL, url)
}

func (r *AuthRepository) URL(ctx context.Context) (string, error) {
	return r.get(ctx, keyURL)
}

func (r *AuthRepository) SaveAuthorizationAnswer(ctx context.Context, answer *model.AuthorizationAnswer) error {
	if answer == nil {
		return errors.New("nil authorization answer")
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := r.put(tx, keyToken, answer.Token); err != nil {
			return err
		}
		return r.put(tx, keyStatus, answer.Status)
	})
}

// Token returns the stored token, or "" when there is none.
func (r *AuthRepository) Token(ctx context.Context) (string, error) {
	return r.get(ctx, keyToken)
}

func (r *AuthRepository) DeleteToken(ctx context.Context) error {
	err := r.db.WithContext(ctx).Where("name IN ?", []string{keyToken, keyStatus}).Delete(&settingRow{}).Error
	if err != nil {
		return fmt.Errorf("delete token: %w", err)
	}
	return nil
}

func (r *AuthRepository) put(db *gorm.DB, key, value string) error {
	row := settingRow{Key: key, Value: value}
	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("save setting %s: %w", key, err)
	}
	return nil
}

func (r *AuthRepository) get(ctx context.Context, key string) (string, error) {
	var row settingRow
	err := r.db.WithContext(ctx).Where("name = ?", key).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("load setting %s: %w", key, err)
	}
	return row.Value, nil
}
