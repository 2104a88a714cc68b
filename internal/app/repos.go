package app

import (
	"gorm.io/gorm"

	"github.com/yungbote/conduit-backend/internal/data/repos"
	"github.com/yungbote/conduit-backend/internal/platform/logger"
)

type Repos struct {
	User            repos.UserRepo
	Article         repos.ArticleRepo
	ArticleFavorite repos.ArticleFavoriteRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		User:            repos.NewUserRepo(db, log),
		Article:         repos.NewArticleRepo(db, log),
		ArticleFavorite: repos.NewArticleFavoriteRepo(db, log),
	}
}
