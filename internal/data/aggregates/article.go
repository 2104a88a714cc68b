package aggregates

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/datatypes"

	"github.com/yungbote/conduit-backend/internal/data/repos"
	types "github.com/yungbote/conduit-backend/internal/domain"
	domainagg "github.com/yungbote/conduit-backend/internal/domain/aggregates"
	"github.com/yungbote/conduit-backend/internal/normalization"
	"github.com/yungbote/conduit-backend/internal/platform/dbctx"
)

const defaultMaxSlugAttempts = 3

type ArticleAggregateDeps struct {
	Base BaseDeps

	Articles  repos.ArticleRepo
	Favorites repos.ArticleFavoriteRepo
	Users     repos.UserRepo

	// Slug defaults to normalization.GenerateSlug.
	Slug            func(title string) string
	MaxSlugAttempts int
}

type articleAggregate struct {
	deps ArticleAggregateDeps
}

func NewArticleAggregate(deps ArticleAggregateDeps) domainagg.ArticleAggregate {
	deps.Base = deps.Base.withDefaults()
	if deps.Slug == nil {
		deps.Slug = normalization.GenerateSlug
	}
	if deps.MaxSlugAttempts <= 0 {
		deps.MaxSlugAttempts = defaultMaxSlugAttempts
	}
	return &articleAggregate{deps: deps}
}

func (a *articleAggregate) Contract() domainagg.Contract {
	return domainagg.ArticleAggregateContract
}

func (a *articleAggregate) Create(ctx context.Context, in domainagg.CreateArticleInput) (*types.Article, error) {
	const op = "Content.Article.Create"
	if err := requireUserID(op, in.AuthorID); err != nil {
		return nil, err
	}
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, domainagg.NewError(domainagg.CodeValidation, op, "title should not be empty", nil)
	}
	if a.deps.Articles == nil || a.deps.Users == nil {
		return nil, domainagg.NewError(domainagg.CodeInternal, op, "article aggregate repos not configured", nil)
	}
	tags := tagList(in.TagList)

	var lastErr error
	for attempt := 1; attempt <= a.deps.MaxSlugAttempts; attempt++ {
		slug := a.deps.Slug(title)
		var created *types.Article
		err := executeWrite(ctx, a.deps.Base, op, func(dbc dbctx.Context) error {
			author, err := a.deps.Users.GetByID(dbc, in.AuthorID)
			if err != nil {
				return err
			}
			if author == nil {
				return domainagg.NewError(domainagg.CodeNotFound, op, fmt.Sprintf("user not found: %s", in.AuthorID), nil)
			}
			row := &types.Article{
				Slug:        slug,
				Title:       title,
				Description: strings.TrimSpace(in.Description),
				Body:        in.Body,
				TagList:     datatypes.NewJSONSlice(tags),
				AuthorID:    author.ID,
			}
			if _, err := a.deps.Articles.Create(dbc, row); err != nil {
				return err
			}
			row.Author = author
			created = row
			return nil
		})
		if err == nil {
			return created, nil
		}
		if !errors.Is(err, types.ErrSlugCollision) {
			return nil, err
		}
		lastErr = err
		a.deps.Base.Log.Info("Slug collision, regenerating", "slug", slug, "attempt", attempt)
	}
	return nil, domainagg.NewError(
		domainagg.CodeConflict,
		op,
		fmt.Sprintf("could not allocate a unique slug after %d attempts", a.deps.MaxSlugAttempts),
		lastErr,
	)
}

func (a *articleAggregate) Update(ctx context.Context, in domainagg.UpdateArticleInput) (*types.Article, error) {
	const op = "Content.Article.Update"
	slug, err := requireSlug(op, in.Slug)
	if err != nil {
		return nil, err
	}
	if err := requireUserID(op, in.ActorID); err != nil {
		return nil, err
	}
	if in.Title != nil && strings.TrimSpace(*in.Title) == "" {
		return nil, domainagg.NewError(domainagg.CodeValidation, op, "title should not be empty", nil)
	}

	var out *types.Article
	err = executeWrite(ctx, a.deps.Base, op, func(dbc dbctx.Context) error {
		current, err := a.deps.Articles.LockBySlug(dbc, slug)
		if err != nil {
			return err
		}
		if current == nil {
			return domainagg.NewError(domainagg.CodeNotFound, op, "Article does not exist", nil)
		}
		if err := RequireAuthor(op, in.ActorID, current.AuthorID); err != nil {
			return err
		}

		updates := map[string]interface{}{}
		if in.Title != nil {
			updates["title"] = strings.TrimSpace(*in.Title)
		}
		if in.Description != nil {
			updates["description"] = strings.TrimSpace(*in.Description)
		}
		if in.Body != nil {
			updates["body"] = *in.Body
		}
		if in.TagList != nil {
			updates["tag_list"] = datatypes.NewJSONSlice(tagList(*in.TagList))
		}
		if len(updates) > 0 {
			if err := a.deps.Articles.UpdateFields(dbc, current.ID, updates); err != nil {
				return err
			}
		}
		out, err = a.deps.Articles.GetByID(dbc, current.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (a *articleAggregate) Delete(ctx context.Context, in domainagg.DeleteArticleInput) error {
	const op = "Content.Article.Delete"
	slug, err := requireSlug(op, in.Slug)
	if err != nil {
		return err
	}
	if err := requireUserID(op, in.ActorID); err != nil {
		return err
	}
	return executeWrite(ctx, a.deps.Base, op, func(dbc dbctx.Context) error {
		current, err := a.deps.Articles.LockBySlug(dbc, slug)
		if err != nil {
			return err
		}
		if current == nil {
			return domainagg.NewError(domainagg.CodeNotFound, op, "Article does not exist", nil)
		}
		if err := RequireAuthor(op, in.ActorID, current.AuthorID); err != nil {
			return err
		}
		if a.deps.Favorites != nil {
			if err := a.deps.Favorites.DeleteByArticle(dbc, current.ID); err != nil {
				return err
			}
		}
		return a.deps.Articles.DeleteByID(dbc, current.ID)
	})
}

// tagList keeps tags exactly as given, order and duplicates included;
// only a missing list becomes empty.
func tagList(in []string) []string {
	if in == nil {
		return []string{}
	}
	return append([]string(nil), in...)
}
