package aggregates

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/yungbote/conduit-backend/internal/data/repos"
	domainagg "github.com/yungbote/conduit-backend/internal/domain/aggregates"
	"github.com/yungbote/conduit-backend/internal/platform/dbctx"
)

type FavoritesAggregateDeps struct {
	Base BaseDeps

	Articles  repos.ArticleRepo
	Favorites repos.ArticleFavoriteRepo
	Users     repos.UserRepo
}

type favoritesAggregate struct {
	deps FavoritesAggregateDeps
}

func NewFavoritesAggregate(deps FavoritesAggregateDeps) domainagg.FavoritesAggregate {
	deps.Base = deps.Base.withDefaults()
	return &favoritesAggregate{deps: deps}
}

func (a *favoritesAggregate) Contract() domainagg.Contract {
	return domainagg.FavoritesAggregateContract
}

func (a *favoritesAggregate) AddFavorite(ctx context.Context, in domainagg.AddFavoriteInput) (domainagg.FavoriteResult, error) {
	return a.toggle(ctx, "Content.Favorites.Add", in.Slug, in.UserID, 1)
}

func (a *favoritesAggregate) RemoveFavorite(ctx context.Context, in domainagg.RemoveFavoriteInput) (domainagg.FavoriteResult, error) {
	return a.toggle(ctx, "Content.Favorites.Remove", in.Slug, in.UserID, -1)
}

// toggle runs membership check, set mutation and counter adjustment as one
// unit. The insert/delete itself is the membership check, so racing callers
// see exactly one of them change the set and move the counter.
func (a *favoritesAggregate) toggle(ctx context.Context, op, slug string, userID uuid.UUID, delta int) (domainagg.FavoriteResult, error) {
	var out domainagg.FavoriteResult
	slug, err := requireSlug(op, slug)
	if err != nil {
		return out, err
	}
	if err := requireUserID(op, userID); err != nil {
		return out, err
	}
	if a.deps.Articles == nil || a.deps.Favorites == nil || a.deps.Users == nil {
		return out, domainagg.NewError(domainagg.CodeInternal, op, "favorites aggregate repos not configured", nil)
	}

	err = executeWrite(ctx, a.deps.Base, op, func(dbc dbctx.Context) error {
		article, err := a.deps.Articles.LockBySlug(dbc, slug)
		if err != nil {
			return err
		}
		if article == nil {
			return domainagg.NewError(domainagg.CodeNotFound, op, fmt.Sprintf("article not found: %s", slug), nil)
		}
		u, err := a.deps.Users.GetByID(dbc, userID)
		if err != nil {
			return err
		}
		if u == nil {
			return domainagg.NewError(domainagg.CodeNotFound, op, fmt.Sprintf("user not found: %s", userID), nil)
		}

		var changed bool
		if delta > 0 {
			changed, err = a.deps.Favorites.Add(dbc, userID, article.ID)
		} else {
			changed, err = a.deps.Favorites.Remove(dbc, userID, article.ID)
		}
		if err != nil {
			return err
		}
		if changed {
			ok, err := a.deps.Articles.AdjustFavoritesCount(dbc, article.ID, delta)
			if err != nil {
				return err
			}
			if err := RequireApplied(ok, "favorites_count cannot drop below zero"); err != nil {
				return err
			}
		}

		fresh, err := a.deps.Articles.GetByID(dbc, article.ID)
		if err != nil {
			return err
		}
		if fresh == nil {
			return InvariantError("article vanished inside favorites transaction")
		}
		out = domainagg.FavoriteResult{Article: fresh, Changed: changed}
		return nil
	})
	if err != nil {
		return domainagg.FavoriteResult{}, err
	}
	return out, nil
}
