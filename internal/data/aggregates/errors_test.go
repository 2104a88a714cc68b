package aggregates

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	types "github.com/yungbote/conduit-backend/internal/domain"
	domainagg "github.com/yungbote/conduit-backend/internal/domain/aggregates"
	"gorm.io/gorm"
)

func TestMapError_Validation(t *testing.T) {
	err := MapError("op", ValidationError("bad input"))
	if !domainagg.IsCode(err, domainagg.CodeValidation) {
		t.Fatalf("expected validation code, got %q (%v)", domainagg.CodeOf(err), err)
	}
}

func TestMapError_Conflict(t *testing.T) {
	err := MapError("op", ConflictError("stale"))
	if !domainagg.IsCode(err, domainagg.CodeConflict) {
		t.Fatalf("expected conflict code, got %q (%v)", domainagg.CodeOf(err), err)
	}
}

func TestMapError_SlugCollisionKeepsSentinel(t *testing.T) {
	in := errors.Join(types.ErrSlugCollision, errors.New("UNIQUE constraint failed: articles.slug"))
	err := MapError("op", in)
	if !domainagg.IsCode(err, domainagg.CodeConflict) {
		t.Fatalf("expected conflict code, got %q (%v)", domainagg.CodeOf(err), err)
	}
	if !errors.Is(err, types.ErrSlugCollision) {
		t.Fatalf("expected ErrSlugCollision to survive mapping")
	}
}

func TestMapError_NotFound(t *testing.T) {
	err := MapError("op", gorm.ErrRecordNotFound)
	if !domainagg.IsCode(err, domainagg.CodeNotFound) {
		t.Fatalf("expected not_found code, got %q (%v)", domainagg.CodeOf(err), err)
	}
}

func TestMapError_PostgresCodes(t *testing.T) {
	cases := map[string]domainagg.ErrorCode{
		"23505": domainagg.CodeConflict,
		"23503": domainagg.CodePreconditionFailed,
		"40001": domainagg.CodeRetryable,
		"40P01": domainagg.CodeRetryable,
	}
	for code, want := range cases {
		err := MapError("op", fmt.Errorf("exec: %w", &pgconn.PgError{Code: code}))
		if got := domainagg.CodeOf(err); got != want {
			t.Fatalf("pg %s: want=%s got=%s", code, want, got)
		}
	}
}

func TestMapError_SQLiteMessages(t *testing.T) {
	if got := domainagg.CodeOf(MapError("op", errors.New("database is locked"))); got != domainagg.CodeRetryable {
		t.Fatalf("locked: want=retryable got=%s", got)
	}
	if got := domainagg.CodeOf(MapError("op", errors.New("UNIQUE constraint failed: users.username"))); got != domainagg.CodeConflict {
		t.Fatalf("unique: want=conflict got=%s", got)
	}
	if got := domainagg.CodeOf(MapError("op", context.Canceled)); got != domainagg.CodeRetryable {
		t.Fatalf("canceled: want=retryable got=%s", got)
	}
	if got := domainagg.CodeOf(MapError("op", errors.New("boom"))); got != domainagg.CodeInternal {
		t.Fatalf("default: want=internal got=%s", got)
	}
}

func TestMapError_PassthroughAggregateError(t *testing.T) {
	in := domainagg.NewError(domainagg.CodeRetryable, "op", "retry", errors.New("boom"))
	out := MapError("other", in)
	if out != in {
		t.Fatalf("expected passthrough aggregate error")
	}
}
