package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/sync/errgroup"

	"github.com/yungbote/conduit-backend/internal/data/repos"
	types "github.com/yungbote/conduit-backend/internal/domain"
	"github.com/yungbote/conduit-backend/internal/platform/dbctx"
	"github.com/yungbote/conduit-backend/internal/platform/logger"
)

const tracerName = "github.com/yungbote/conduit-backend/internal/services"

// ArticleListingService executes a compiled listing query.
type ArticleListingService interface {
	List(ctx context.Context, q types.CompiledArticleQuery, viewerID *uuid.UUID) (types.ArticleList, error)
}

type articleListingService struct {
	log       *logger.Logger
	articles  repos.ArticleRepo
	favorites repos.ArticleFavoriteRepo
}

func NewArticleListingService(log *logger.Logger, articles repos.ArticleRepo, favorites repos.ArticleFavoriteRepo) ArticleListingService {
	return &articleListingService{
		log:       log.With("service", "ArticleListingService"),
		articles:  articles,
		favorites: favorites,
	}
}

// List returns one page newest first. TotalCount only honours the
// predicates staged before the count (the author filter), so it can
// exceed the number of rows matching every filter.
func (s *articleListingService) List(ctx context.Context, q types.CompiledArticleQuery, viewerID *uuid.UUID) (types.ArticleList, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "Content.Articles.List")
	defer span.End()
	span.SetAttributes(
		attribute.Int("articles.predicates", len(q.Predicates)),
		attribute.Bool("articles.viewer", viewerID != nil),
	)

	var (
		total    int64
		rows     []*types.Article
		favorite map[uuid.UUID]struct{}
	)

	g, gctx := errgroup.WithContext(ctx)
	dbc := dbctx.Background(gctx)

	g.Go(func() error {
		n, err := s.articles.Count(dbc, q.CountPredicates())
		if err != nil {
			return fmt.Errorf("count articles: %w", err)
		}
		total = n
		return nil
	})

	if !q.MatchesNothing() {
		g.Go(func() error {
			out, err := s.articles.Query(dbc, q.Predicates, q.Limit, q.Offset)
			if err != nil {
				return fmt.Errorf("query articles: %w", err)
			}
			rows = out
			return nil
		})
	}

	if viewerID != nil && *viewerID != uuid.Nil {
		id := *viewerID
		g.Go(func() error {
			ids, err := s.favorites.ArticleIDsForUser(dbc, id)
			if err != nil {
				return fmt.Errorf("load viewer favorites: %w", err)
			}
			favorite = make(map[uuid.UUID]struct{}, len(ids))
			for _, aid := range ids {
				favorite[aid] = struct{}{}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		s.log.Warn("Article listing failed", "error", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "list failed")
		return types.ArticleList{}, err
	}

	views := make([]types.ArticleView, 0, len(rows))
	for _, a := range rows {
		_, fav := favorite[a.ID]
		views = append(views, types.ArticleView{Article: a, Favorited: fav})
	}
	span.SetAttributes(
		attribute.Int("articles.returned", len(views)),
		attribute.Int64("articles.count", total),
	)
	return types.ArticleList{Articles: views, TotalCount: total}, nil
}
