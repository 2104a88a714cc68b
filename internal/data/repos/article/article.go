package article

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/yungbote/conduit-backend/internal/data/db"
	types "github.com/yungbote/conduit-backend/internal/domain"
	"github.com/yungbote/conduit-backend/internal/platform/dbctx"
	"github.com/yungbote/conduit-backend/internal/platform/logger"
)

type ArticleRepo interface {
	Create(dbc dbctx.Context, row *types.Article) (*types.Article, error)
	GetByID(dbc dbctx.Context, id uuid.UUID) (*types.Article, error)
	GetBySlug(dbc dbctx.Context, slug string) (*types.Article, error)
	LockBySlug(dbc dbctx.Context, slug string) (*types.Article, error)
	Query(dbc dbctx.Context, preds []types.ArticlePredicate, limit, offset *int) ([]*types.Article, error)
	Count(dbc dbctx.Context, preds []types.ArticlePredicate) (int64, error)
	UpdateFields(dbc dbctx.Context, id uuid.UUID, updates map[string]interface{}) error
	AdjustFavoritesCount(dbc dbctx.Context, id uuid.UUID, delta int) (bool, error)
	DeleteByID(dbc dbctx.Context, id uuid.UUID) error
}

type articleRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewArticleRepo(db *gorm.DB, log *logger.Logger) ArticleRepo {
	return &articleRepo{db: db, log: log.With("repo", "ArticleRepo")}
}

func (r *articleRepo) tx(dbc dbctx.Context) *gorm.DB {
	txx := dbc.Tx
	if txx == nil {
		txx = r.db
	}
	return txx.WithContext(dbc.Ctx)
}

// Create inserts row. A taken slug is reported as types.ErrSlugCollision.
func (r *articleRepo) Create(dbc dbctx.Context, row *types.Article) (*types.Article, error) {
	if row == nil {
		return nil, fmt.Errorf("missing article")
	}
	if strings.TrimSpace(row.Slug) == "" {
		return nil, fmt.Errorf("missing slug")
	}
	if err := r.tx(dbc).Omit(clause.Associations).Create(row).Error; err != nil {
		if db.IsUniqueViolation(err, "slug") {
			return nil, errors.Join(types.ErrSlugCollision, err)
		}
		return nil, err
	}
	return row, nil
}

func (r *articleRepo) GetByID(dbc dbctx.Context, id uuid.UUID) (*types.Article, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("missing id")
	}
	var out types.Article
	err := r.tx(dbc).Preload("Author").Where("id = ?", id).Take(&out).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *articleRepo) GetBySlug(dbc dbctx.Context, slug string) (*types.Article, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, nil
	}
	var out types.Article
	err := r.tx(dbc).Preload("Author").Where("slug = ?", slug).Take(&out).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// LockBySlug takes a row lock on the article for the rest of dbc.Tx.
// Returns (nil, nil) when no article has the slug.
func (r *articleRepo) LockBySlug(dbc dbctx.Context, slug string) (*types.Article, error) {
	if dbc.Tx == nil {
		return nil, fmt.Errorf("LockBySlug requires dbc.Tx")
	}
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, nil
	}
	var out types.Article
	err := dbc.Tx.WithContext(dbc.Ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("slug = ?", slug).
		Take(&out).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Query returns matching articles newest first, offset then limit applied.
func (r *articleRepo) Query(dbc dbctx.Context, preds []types.ArticlePredicate, limit, offset *int) ([]*types.Article, error) {
	q := applyPredicates(r.tx(dbc).Model(&types.Article{}), preds).
		Preload("Author").
		Order("articles.created_at DESC")
	if offset != nil && *offset > 0 {
		q = q.Offset(*offset)
	}
	if limit != nil && *limit >= 0 {
		q = q.Limit(*limit)
	}
	out := []*types.Article{}
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *articleRepo) Count(dbc dbctx.Context, preds []types.ArticlePredicate) (int64, error) {
	var n int64
	if err := applyPredicates(r.tx(dbc).Model(&types.Article{}), preds).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

func (r *articleRepo) UpdateFields(dbc dbctx.Context, id uuid.UUID, updates map[string]interface{}) error {
	if id == uuid.Nil {
		return fmt.Errorf("missing id")
	}
	if updates == nil {
		updates = map[string]interface{}{}
	}
	updates["updated_at"] = time.Now().UTC()
	err := r.tx(dbc).Model(&types.Article{}).Where("id = ?", id).Updates(updates).Error
	if db.IsUniqueViolation(err, "slug") {
		return errors.Join(types.ErrSlugCollision, err)
	}
	return err
}

// AdjustFavoritesCount adds delta to favorites_count. A decrement only
// applies while the counter can absorb it; false means no row changed.
func (r *articleRepo) AdjustFavoritesCount(dbc dbctx.Context, id uuid.UUID, delta int) (bool, error) {
	if id == uuid.Nil {
		return false, fmt.Errorf("missing id")
	}
	if delta == 0 {
		return true, nil
	}
	q := r.tx(dbc).Model(&types.Article{}).Where("id = ?", id)
	if delta < 0 {
		q = q.Where("favorites_count >= ?", -delta)
	}
	res := q.UpdateColumn("favorites_count", gorm.Expr("favorites_count + ?", delta))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *articleRepo) DeleteByID(dbc dbctx.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return fmt.Errorf("missing id")
	}
	return r.tx(dbc).Where("id = ?", id).Delete(&types.Article{}).Error
}

func applyPredicates(q *gorm.DB, preds []types.ArticlePredicate) *gorm.DB {
	for _, p := range preds {
		switch p.Kind {
		case types.PredicateAuthor:
			q = q.Where("articles.author_id = ?", p.AuthorID)
		case types.PredicateTag:
			q = whereTagContains(q, p.Tag)
		case types.PredicateIDs:
			if len(p.ArticleIDs) == 0 {
				q = q.Where("1 = 0")
			} else {
				q = q.Where("articles.id IN ?", p.ArticleIDs)
			}
		case types.PredicateNone:
			q = q.Where("1 = 0")
		}
	}
	return q
}

const tagListText = "LOWER(CAST(articles.tag_list AS TEXT))"

// whereTagContains matches tag as a case-insensitive substring of the
// serialized tag list. The list is written by encoding/json, which escapes
// characters such as & < > ("r&d" is stored as "r\u0026d"), while jsonb
// renders them back unescaped; both spellings of the needle are tried.
func whereTagContains(q *gorm.DB, tag string) *gorm.DB {
	raw := "%" + tag + "%"
	stored := "%" + jsonStringBody(tag) + "%"
	if stored == raw {
		return q.Where(tagListText+" LIKE LOWER(?)", raw)
	}
	return q.Where("("+tagListText+" LIKE LOWER(?) OR "+tagListText+" LIKE LOWER(?))", raw, stored)
}

// jsonStringBody is s as encoding/json writes it inside a JSON string,
// without the surrounding quotes.
func jsonStringBody(s string) string {
	b, err := json.Marshal(s)
	if err != nil || len(b) < 2 {
		return s
	}
	return string(b[1 : len(b)-1])
}
