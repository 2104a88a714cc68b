package article

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	types "github.com/yungbote/conduit-backend/internal/domain"
	"github.com/yungbote/conduit-backend/internal/platform/dbctx"
	"github.com/yungbote/conduit-backend/internal/platform/logger"
)

// ArticleFavoriteRepo manages the user <-> article favorites relation.
type ArticleFavoriteRepo interface {
	// Add inserts the membership; false means it already existed.
	Add(dbc dbctx.Context, userID, articleID uuid.UUID) (bool, error)
	// Remove deletes the membership; false means it was absent.
	Remove(dbc dbctx.Context, userID, articleID uuid.UUID) (bool, error)
	ArticleIDsForUser(dbc dbctx.Context, userID uuid.UUID) ([]uuid.UUID, error)
	Exists(dbc dbctx.Context, userID, articleID uuid.UUID) (bool, error)
	CountForArticle(dbc dbctx.Context, articleID uuid.UUID) (int64, error)
	DeleteByArticle(dbc dbctx.Context, articleID uuid.UUID) error
}

type articleFavoriteRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewArticleFavoriteRepo(db *gorm.DB, log *logger.Logger) ArticleFavoriteRepo {
	return &articleFavoriteRepo{db: db, log: log.With("repo", "ArticleFavoriteRepo")}
}

func (r *articleFavoriteRepo) tx(dbc dbctx.Context) *gorm.DB {
	txx := dbc.Tx
	if txx == nil {
		txx = r.db
	}
	return txx.WithContext(dbc.Ctx)
}

func (r *articleFavoriteRepo) Add(dbc dbctx.Context, userID, articleID uuid.UUID) (bool, error) {
	if userID == uuid.Nil || articleID == uuid.Nil {
		return false, fmt.Errorf("missing user_id or article_id")
	}
	row := types.ArticleFavorite{UserID: userID, ArticleID: articleID, CreatedAt: time.Now().UTC()}
	res := r.tx(dbc).Clauses(clause.OnConflict{DoNothing: true}).Create(&row)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *articleFavoriteRepo) Remove(dbc dbctx.Context, userID, articleID uuid.UUID) (bool, error) {
	if userID == uuid.Nil || articleID == uuid.Nil {
		return false, fmt.Errorf("missing user_id or article_id")
	}
	res := r.tx(dbc).
		Where("user_id = ? AND article_id = ?", userID, articleID).
		Delete(&types.ArticleFavorite{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *articleFavoriteRepo) ArticleIDsForUser(dbc dbctx.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	out := []uuid.UUID{}
	if userID == uuid.Nil {
		return out, nil
	}
	if err := r.tx(dbc).
		Model(&types.ArticleFavorite{}).
		Where("user_id = ?", userID).
		Pluck("article_id", &out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *articleFavoriteRepo) Exists(dbc dbctx.Context, userID, articleID uuid.UUID) (bool, error) {
	if userID == uuid.Nil || articleID == uuid.Nil {
		return false, nil
	}
	var n int64
	if err := r.tx(dbc).
		Model(&types.ArticleFavorite{}).
		Where("user_id = ? AND article_id = ?", userID, articleID).
		Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *articleFavoriteRepo) CountForArticle(dbc dbctx.Context, articleID uuid.UUID) (int64, error) {
	var n int64
	if err := r.tx(dbc).
		Model(&types.ArticleFavorite{}).
		Where("article_id = ?", articleID).
		Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

func (r *articleFavoriteRepo) DeleteByArticle(dbc dbctx.Context, articleID uuid.UUID) error {
	if articleID == uuid.Nil {
		return fmt.Errorf("missing article_id")
	}
	return r.tx(dbc).Where("article_id = ?", articleID).Delete(&types.ArticleFavorite{}).Error
}
