package aggregates

import (
	"strings"

	"github.com/google/uuid"
	domainagg "github.com/yungbote/conduit-backend/internal/domain/aggregates"
)

// RequireApplied converts a guarded write that touched no row into an
// invariant violation, rolling back the surrounding transaction.
func RequireApplied(ok bool, message string) error {
	if ok {
		return nil
	}
	return InvariantError(strings.TrimSpace(message))
}

// RequireAuthor rejects writes by anyone other than the article author.
func RequireAuthor(op string, actorID, authorID uuid.UUID) error {
	if actorID != uuid.Nil && actorID == authorID {
		return nil
	}
	return domainagg.NewError(domainagg.CodeForbidden, op, "You are not an author", nil)
}

func requireSlug(op, slug string) (string, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return "", domainagg.NewError(domainagg.CodeValidation, op, "missing slug", nil)
	}
	return slug, nil
}

func requireUserID(op string, id uuid.UUID) error {
	if id == uuid.Nil {
		return domainagg.NewError(domainagg.CodeValidation, op, "missing user_id", nil)
	}
	return nil
}
