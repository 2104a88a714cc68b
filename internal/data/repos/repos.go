package repos

import (
	"github.com/yungbote/conduit-backend/internal/data/repos/article"
	"github.com/yungbote/conduit-backend/internal/data/repos/user"
	"github.com/yungbote/conduit-backend/internal/platform/logger"
	"gorm.io/gorm"
)

type UserRepo = user.UserRepo

type ArticleRepo = article.ArticleRepo
type ArticleFavoriteRepo = article.ArticleFavoriteRepo

func NewUserRepo(db *gorm.DB, log *logger.Logger) UserRepo {
	return user.NewUserRepo(db, log)
}

func NewArticleRepo(db *gorm.DB, log *logger.Logger) ArticleRepo {
	return article.NewArticleRepo(db, log)
}

func NewArticleFavoriteRepo(db *gorm.DB, log *logger.Logger) ArticleFavoriteRepo {
	return article.NewArticleFavoriteRepo(db, log)
}
