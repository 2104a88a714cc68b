package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	types "github.com/yungbote/conduit-backend/internal/domain"
	domainagg "github.com/yungbote/conduit-backend/internal/domain/aggregates"
	"github.com/yungbote/conduit-backend/internal/platform/logger"
)

// FavoriteService exposes the favorites aggregate to handlers.
type FavoriteService interface {
	Favorite(ctx context.Context, userID uuid.UUID, slug string) (types.ArticleView, error)
	Unfavorite(ctx context.Context, userID uuid.UUID, slug string) (types.ArticleView, error)
}

type favoriteService struct {
	log *logger.Logger
	agg domainagg.FavoritesAggregate
}

func NewFavoriteService(log *logger.Logger, agg domainagg.FavoritesAggregate) FavoriteService {
	return &favoriteService{log: log.With("service", "FavoriteService"), agg: agg}
}

func (s *favoriteService) Favorite(ctx context.Context, userID uuid.UUID, slug string) (types.ArticleView, error) {
	if s.agg == nil {
		return types.ArticleView{}, fmt.Errorf("favorites aggregate not configured")
	}
	res, err := s.agg.AddFavorite(ctx, domainagg.AddFavoriteInput{Slug: slug, UserID: userID})
	if err != nil {
		return types.ArticleView{}, err
	}
	if res.Changed {
		s.log.Debug("Article favorited", "slug", slug, "user_id", userID)
	}
	return types.ArticleView{Article: res.Article, Favorited: true}, nil
}

func (s *favoriteService) Unfavorite(ctx context.Context, userID uuid.UUID, slug string) (types.ArticleView, error) {
	if s.agg == nil {
		return types.ArticleView{}, fmt.Errorf("favorites aggregate not configured")
	}
	res, err := s.agg.RemoveFavorite(ctx, domainagg.RemoveFavoriteInput{Slug: slug, UserID: userID})
	if err != nil {
		return types.ArticleView{}, err
	}
	if res.Changed {
		s.log.Debug("Article unfavorited", "slug", slug, "user_id", userID)
	}
	return types.ArticleView{Article: res.Article, Favorited: false}, nil
}
