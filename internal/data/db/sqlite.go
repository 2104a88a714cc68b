package db

import (
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/yungbote/conduit-backend/internal/platform/logger"
)

// openSQLite opens a sqlite database. The connection pool is pinned to a
// single connection so writers serialize instead of failing with SQLITE_BUSY.
func openSQLite(path string, log *logger.Logger) (*gorm.DB, error) {
	if path == "" {
		path = "file:conduit?mode=memory&cache=shared"
	}
	db, err := gorm.Open(sqlite.Open(path), gormConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("sqlite handle: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		return nil, fmt.Errorf("sqlite pragma: %w", err)
	}
	log.Info("Opened sqlite database", "path", path)
	return db, nil
}
