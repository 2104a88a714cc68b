package aggregates

import (
	"context"

	"github.com/google/uuid"

	"github.com/yungbote/conduit-backend/internal/domain/content"
)

var FavoritesAggregateContract = Contract{
	Name:             "Content.FavoritesAggregate",
	WriteTxOwnership: WriteTxOwnedByAggregate,
	ReadPolicy:       ReadPolicyInvariantScoped,
	Notes:            "Keeps article favorites_count equal to the cardinality of its favoriters in one transaction.",
}

// FavoritesAggregate owns the favorites membership and counter pair.
//
// Both writes are idempotent. Failures return *aggregates.Error with codes:
// CodeValidation, CodeNotFound, CodeInvariantViolation, CodeRetryable, CodeInternal.
type FavoritesAggregate interface {
	Aggregate

	// AddFavorite inserts the membership and increments the counter when absent.
	AddFavorite(ctx context.Context, in AddFavoriteInput) (FavoriteResult, error)

	// RemoveFavorite deletes the membership and decrements the counter when present.
	RemoveFavorite(ctx context.Context, in RemoveFavoriteInput) (FavoriteResult, error)
}

type AddFavoriteInput struct {
	Slug   string
	UserID uuid.UUID
}

type RemoveFavoriteInput struct {
	Slug   string
	UserID uuid.UUID
}

type FavoriteResult struct {
	Article *content.Article
	// Changed is false when the call was a no-op.
	Changed bool
}
