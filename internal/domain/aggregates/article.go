package aggregates

import (
	"context"

	"github.com/google/uuid"

	"github.com/yungbote/conduit-backend/internal/domain/content"
)

var ArticleAggregateContract = Contract{
	Name:             "Content.ArticleAggregate",
	WriteTxOwnership: WriteTxOwnedByAggregate,
	ReadPolicy:       ReadPolicyInvariantScoped,
	Notes:            "Owns article creation with unique slugs and author-only update/delete.",
}

// ArticleAggregate owns the article lifecycle.
//
// Failures return *aggregates.Error with codes:
// CodeValidation, CodeNotFound, CodeForbidden, CodeConflict, CodeRetryable, CodeInternal.
type ArticleAggregate interface {
	Aggregate

	// Create inserts a new article, regenerating the slug on collision a bounded number of times.
	Create(ctx context.Context, in CreateArticleInput) (*content.Article, error)

	// Update applies a partial update. Only the author may update.
	Update(ctx context.Context, in UpdateArticleInput) (*content.Article, error)

	// Delete removes the article and its favorites memberships. Only the author may delete.
	Delete(ctx context.Context, in DeleteArticleInput) error
}

type CreateArticleInput struct {
	AuthorID    uuid.UUID
	Title       string
	Description string
	Body        string
	TagList     []string
}

type UpdateArticleInput struct {
	Slug        string
	ActorID     uuid.UUID
	Title       *string
	Description *string
	Body        *string
	TagList     *[]string
}

type DeleteArticleInput struct {
	Slug    string
	ActorID uuid.UUID
}
