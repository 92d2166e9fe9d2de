package persistence

import (
	"fmt"

	"assistant-client/internal/infrastructure/logging"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Open opens the embedded cache database and makes sure its schema exists.
// dsn is a SQLite path or URI, e.g. "assistant.db" or
// "file:test?mode=memory&cache=shared".
func Open(dsn string, log *zap.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logging.NewGormLogger(log)})
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", dsn, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("sqlite handle: %w", err)
	}
	// SQLite allows a single writer.
	sqlDB.SetMaxOpenConns(1)

	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	return db, nil
}

func ensureSchema(db *gorm.DB) error {
	if err := db.AutoMigrate(&roomRow{}, &thingRow{}, &settingRow{}); err != nil {
		return fmt.Errorf("migrate cache schema: %w", err)
	}
	return nil
}

// Close releases the underlying connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
