package db

import (
	types "github.com/yungbote/conduit-backend/internal/domain"
	"gorm.io/gorm"
)

func AutoMigrateAll(db *gorm.DB) error {
	return db.AutoMigrate(
		// Identity
		&types.User{},

		// Content
		&types.Article{},
		&types.ArticleFavorite{},
	)
}
