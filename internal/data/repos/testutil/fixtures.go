package testutil

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	types "github.com/yungbote/conduit-backend/internal/domain"
)

func SeedUser(tb testing.TB, ctx context.Context, tx *gorm.DB, username string) *types.User {
	tb.Helper()
	u := &types.User{
		ID:       uuid.New(),
		Username: username,
		Email:    username + "@example.com",
		Password: "pw",
	}
	if err := tx.WithContext(ctx).Create(u).Error; err != nil {
		tb.Fatalf("seed user: %v", err)
	}
	return u
}

// SeedArticle inserts an article with an explicit creation time so
// listing order is deterministic.
func SeedArticle(tb testing.TB, ctx context.Context, tx *gorm.DB, authorID uuid.UUID, title string, tags []string, createdAt time.Time) *types.Article {
	tb.Helper()
	if tags == nil {
		tags = []string{}
	}
	a := &types.Article{
		ID:          uuid.New(),
		Slug:        strings.ReplaceAll(strings.ToLower(title), " ", "-") + "-" + uuid.NewString()[:6],
		Title:       title,
		Description: "description",
		Body:        "body",
		TagList:     datatypes.NewJSONSlice(tags),
		AuthorID:    authorID,
		CreatedAt:   createdAt.UTC(),
		UpdatedAt:   createdAt.UTC(),
	}
	if err := tx.WithContext(ctx).Omit("Author").Create(a).Error; err != nil {
		tb.Fatalf("seed article: %v", err)
	}
	return a
}

// SeedFavorite records the membership and bumps the counter directly.
func SeedFavorite(tb testing.TB, ctx context.Context, tx *gorm.DB, userID, articleID uuid.UUID) {
	tb.Helper()
	fav := &types.ArticleFavorite{UserID: userID, ArticleID: articleID, CreatedAt: time.Now().UTC()}
	if err := tx.WithContext(ctx).Create(fav).Error; err != nil {
		tb.Fatalf("seed favorite: %v", err)
	}
	if err := tx.WithContext(ctx).
		Model(&types.Article{}).
		Where("id = ?", articleID).
		UpdateColumn("favorites_count", gorm.Expr("favorites_count + 1")).Error; err != nil {
		tb.Fatalf("seed favorite counter: %v", err)
	}
}

func PtrUUID(v uuid.UUID) *uuid.UUID { return &v }
