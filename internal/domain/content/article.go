package content

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/yungbote/conduit-backend/internal/domain/user"
)

// SlugIndexName is the unique index backing article slugs.
const SlugIndexName = "idx_articles_slug"

type Article struct {
	ID             uuid.UUID                   `gorm:"type:uuid;primaryKey" json:"id"`
	Slug           string                      `gorm:"uniqueIndex:idx_articles_slug;not null;column:slug" json:"slug"`
	Title          string                      `gorm:"not null;column:title" json:"title"`
	Description    string                      `gorm:"not null;default:'';column:description" json:"description"`
	Body           string                      `gorm:"not null;default:'';column:body" json:"body"`
	TagList        datatypes.JSONSlice[string] `gorm:"not null;column:tag_list" json:"tagList"`
	FavoritesCount int                         `gorm:"not null;default:0;column:favorites_count" json:"favoritesCount"`
	AuthorID       uuid.UUID                   `gorm:"type:uuid;not null;index;column:author_id" json:"-"`
	Author         *user.User                  `gorm:"foreignKey:AuthorID;references:ID" json:"author,omitempty"`
	CreatedAt      time.Time                   `gorm:"not null;index;column:created_at" json:"createdAt"`
	UpdatedAt      time.Time                   `gorm:"not null;column:updated_at" json:"updatedAt"`
}

func (Article) TableName() string { return "articles" }

func (a *Article) BeforeCreate(_ *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// BeforeSave keeps the serialized tag list a JSON array, never null.
func (a *Article) BeforeSave(_ *gorm.DB) error {
	if a.TagList == nil {
		a.TagList = datatypes.JSONSlice[string]{}
	}
	return nil
}

// Tags returns the tag list as a plain slice, never nil.
func (a *Article) Tags() []string {
	if a == nil || len(a.TagList) == 0 {
		return []string{}
	}
	return []string(a.TagList)
}

// ArticleFavorite is one membership in a user's favorites set.
type ArticleFavorite struct {
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey;column:user_id"`
	ArticleID uuid.UUID `gorm:"type:uuid;primaryKey;index;column:article_id"`
	CreatedAt time.Time `gorm:"not null;column:created_at"`
}

func (ArticleFavorite) TableName() string { return "article_favorites" }

// ArticleView is an article as seen by a particular viewer.
type ArticleView struct {
	Article   *Article
	Favorited bool
}

// ArticleList is one page of a listing. TotalCount reflects only the
// author filter; tag and favorited narrow the page but not the count.
type ArticleList struct {
	Articles   []ArticleView
	TotalCount int64
}
