package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/yungbote/conduit-backend/internal/data/repos"
	types "github.com/yungbote/conduit-backend/internal/domain"
	"github.com/yungbote/conduit-backend/internal/platform/dbctx"
	"github.com/yungbote/conduit-backend/internal/platform/logger"
)

// ArticleQueryCompiler turns listing params into ordered store predicates.
type ArticleQueryCompiler interface {
	Compile(ctx context.Context, params types.ArticleListParams, viewerID *uuid.UUID) (types.CompiledArticleQuery, error)
}

type articleQueryCompiler struct {
	log       *logger.Logger
	users     repos.UserRepo
	favorites repos.ArticleFavoriteRepo
}

func NewArticleQueryCompiler(log *logger.Logger, users repos.UserRepo, favorites repos.ArticleFavoriteRepo) ArticleQueryCompiler {
	return &articleQueryCompiler{
		log:       log.With("service", "ArticleQueryCompiler"),
		users:     users,
		favorites: favorites,
	}
}

// Compile emits predicates in author, tag, favorited order regardless of
// how the params were supplied. Names that resolve to no user compile to
// PredicateNone rather than an error. viewerID does not affect filtering.
func (c *articleQueryCompiler) Compile(ctx context.Context, params types.ArticleListParams, viewerID *uuid.UUID) (types.CompiledArticleQuery, error) {
	out := types.CompiledArticleQuery{
		Limit:  params.Limit,
		Offset: params.Offset,
	}
	dbc := dbctx.Background(ctx)

	if params.Author != nil {
		name := strings.TrimSpace(*params.Author)
		author, err := c.users.GetByUsername(dbc, name)
		if err != nil {
			return out, fmt.Errorf("resolve author %q: %w", name, err)
		}
		if author == nil {
			c.log.Debug("Unknown author filter", "filter", name)
			out.Predicates = append(out.Predicates, types.ArticlePredicate{
				Kind:   types.PredicateNone,
				Stage:  types.StageBeforeCount,
				Filter: "author",
			})
		} else {
			out.Predicates = append(out.Predicates, types.ArticlePredicate{
				Kind:     types.PredicateAuthor,
				Stage:    types.StageBeforeCount,
				Filter:   "author",
				AuthorID: author.ID,
			})
		}
	}

	if params.Tag != nil {
		out.Predicates = append(out.Predicates, types.ArticlePredicate{
			Kind:   types.PredicateTag,
			Stage:  types.StageAfterCount,
			Filter: "tag",
			Tag:    *params.Tag,
		})
	}

	if params.Favorited != nil {
		name := strings.TrimSpace(*params.Favorited)
		pred, err := c.favoritedPredicate(dbc, name)
		if err != nil {
			return out, err
		}
		out.Predicates = append(out.Predicates, pred)
	}

	return out, nil
}

func (c *articleQueryCompiler) favoritedPredicate(dbc dbctx.Context, name string) (types.ArticlePredicate, error) {
	none := types.ArticlePredicate{Kind: types.PredicateNone, Stage: types.StageAfterCount, Filter: "favorited"}
	u, err := c.users.GetByUsername(dbc, name)
	if err != nil {
		return none, fmt.Errorf("resolve favorited user %q: %w", name, err)
	}
	if u == nil {
		c.log.Debug("Unknown favorited filter", "filter", name)
		return none, nil
	}
	ids, err := c.favorites.ArticleIDsForUser(dbc, u.ID)
	if err != nil {
		return none, fmt.Errorf("load favorites for %q: %w", name, err)
	}
	if len(ids) == 0 {
		return none, nil
	}
	return types.ArticlePredicate{
		Kind:       types.PredicateIDs,
		Stage:      types.StageAfterCount,
		Filter:     "favorited",
		ArticleIDs: ids,
	}, nil
}
