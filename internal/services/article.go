package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/yungbote/conduit-backend/internal/data/repos"
	types "github.com/yungbote/conduit-backend/internal/domain"
	domainagg "github.com/yungbote/conduit-backend/internal/domain/aggregates"
	"github.com/yungbote/conduit-backend/internal/platform/apierr"
	"github.com/yungbote/conduit-backend/internal/platform/dbctx"
	"github.com/yungbote/conduit-backend/internal/platform/logger"
)

type ArticleService interface {
	List(ctx context.Context, params types.ArticleListParams, viewerID *uuid.UUID) (types.ArticleList, error)
	Get(ctx context.Context, slug string, viewerID *uuid.UUID) (types.ArticleView, error)
	Create(ctx context.Context, authorID uuid.UUID, in ArticleInput) (types.ArticleView, error)
	Update(ctx context.Context, actorID uuid.UUID, slug string, in ArticlePatch) (types.ArticleView, error)
	Delete(ctx context.Context, actorID uuid.UUID, slug string) error
}

type ArticleInput struct {
	Title       string
	Description string
	Body        string
	TagList     []string
}

type ArticlePatch struct {
	Title       *string
	Description *string
	Body        *string
	TagList     *[]string
}

type articleService struct {
	log       *logger.Logger
	articles  repos.ArticleRepo
	favorites repos.ArticleFavoriteRepo
	compiler  ArticleQueryCompiler
	listing   ArticleListingService
	agg       domainagg.ArticleAggregate
}

func NewArticleService(
	log *logger.Logger,
	articles repos.ArticleRepo,
	favorites repos.ArticleFavoriteRepo,
	compiler ArticleQueryCompiler,
	listing ArticleListingService,
	agg domainagg.ArticleAggregate,
) ArticleService {
	return &articleService{
		log:       log.With("service", "ArticleService"),
		articles:  articles,
		favorites: favorites,
		compiler:  compiler,
		listing:   listing,
		agg:       agg,
	}
}

func (s *articleService) List(ctx context.Context, params types.ArticleListParams, viewerID *uuid.UUID) (types.ArticleList, error) {
	q, err := s.compiler.Compile(ctx, params, viewerID)
	if err != nil {
		return types.ArticleList{}, err
	}
	return s.listing.List(ctx, q, viewerID)
}

func (s *articleService) Get(ctx context.Context, slug string, viewerID *uuid.UUID) (types.ArticleView, error) {
	slug = strings.TrimSpace(slug)
	a, err := s.articles.GetBySlug(dbctx.Background(ctx), slug)
	if err != nil {
		return types.ArticleView{}, fmt.Errorf("load article: %w", err)
	}
	if a == nil {
		return types.ArticleView{}, apierr.NotFound("article_not_found", fmt.Errorf("Article does not exist"))
	}
	return s.view(ctx, a, viewerID)
}

func (s *articleService) Create(ctx context.Context, authorID uuid.UUID, in ArticleInput) (types.ArticleView, error) {
	if s.agg == nil {
		return types.ArticleView{}, fmt.Errorf("article aggregate not configured")
	}
	a, err := s.agg.Create(ctx, domainagg.CreateArticleInput{
		AuthorID:    authorID,
		Title:       in.Title,
		Description: in.Description,
		Body:        in.Body,
		TagList:     in.TagList,
	})
	if err != nil {
		return types.ArticleView{}, err
	}
	s.log.Info("Article created", "slug", a.Slug, "author_id", authorID)
	return types.ArticleView{Article: a}, nil
}

func (s *articleService) Update(ctx context.Context, actorID uuid.UUID, slug string, in ArticlePatch) (types.ArticleView, error) {
	if s.agg == nil {
		return types.ArticleView{}, fmt.Errorf("article aggregate not configured")
	}
	a, err := s.agg.Update(ctx, domainagg.UpdateArticleInput{
		Slug:        slug,
		ActorID:     actorID,
		Title:       in.Title,
		Description: in.Description,
		Body:        in.Body,
		TagList:     in.TagList,
	})
	if err != nil {
		return types.ArticleView{}, err
	}
	return s.view(ctx, a, &actorID)
}

func (s *articleService) Delete(ctx context.Context, actorID uuid.UUID, slug string) error {
	if s.agg == nil {
		return fmt.Errorf("article aggregate not configured")
	}
	if err := s.agg.Delete(ctx, domainagg.DeleteArticleInput{Slug: slug, ActorID: actorID}); err != nil {
		return err
	}
	s.log.Info("Article deleted", "slug", slug, "user_id", actorID)
	return nil
}

func (s *articleService) view(ctx context.Context, a *types.Article, viewerID *uuid.UUID) (types.ArticleView, error) {
	out := types.ArticleView{Article: a}
	if viewerID == nil || *viewerID == uuid.Nil {
		return out, nil
	}
	fav, err := s.favorites.Exists(dbctx.Background(ctx), *viewerID, a.ID)
	if err != nil {
		return out, fmt.Errorf("load favorite state: %w", err)
	}
	out.Favorited = fav
	return out, nil
}
