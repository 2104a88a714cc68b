package services

import (
	"context"
	"testing"

	"github.com/google/uuid"

	types "github.com/yungbote/conduit-backend/internal/domain"
	"github.com/yungbote/conduit-backend/internal/domain/content"
	"github.com/yungbote/conduit-backend/internal/pkg/pointers"
)

func kinds(q types.CompiledArticleQuery) []content.PredicateKind {
	out := make([]content.PredicateKind, 0, len(q.Predicates))
	for _, p := range q.Predicates {
		out = append(out, p.Kind)
	}
	return out
}

func TestCompileEmitsStableOrder(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	jake := env.seedUser(t, "jake")
	anna := env.seedUser(t, "anna")
	a := env.seedArticles(t, jake, 1, nil)[0]
	if _, err := env.favSv.Favorite(ctx, anna.ID, a.Slug); err != nil {
		t.Fatalf("Favorite: %v", err)
	}

	params := types.ArticleListParams{
		Favorited: pointers.String("anna"),
		Tag:       pointers.String("go"),
		Author:    pointers.String("jake"),
		Limit:     pointers.Int(5),
		Offset:    pointers.Int(2),
	}
	q, err := env.compiler.Compile(ctx, params, nil)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	got := kinds(q)
	want := []content.PredicateKind{types.PredicateAuthor, types.PredicateTag, types.PredicateIDs}
	if len(got) != len(want) {
		t.Fatalf("predicates: want=%v got=%v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("predicate %d: want=%v got=%v", i, want[i], got[i])
		}
	}
	if q.Predicates[0].AuthorID != jake.ID || q.Predicates[0].Stage != types.StageBeforeCount {
		t.Fatalf("author predicate: %+v", q.Predicates[0])
	}
	if q.Predicates[1].Stage != types.StageAfterCount || q.Predicates[2].Stage != types.StageAfterCount {
		t.Fatalf("tag/favorited must be staged after the count")
	}
	if len(q.Predicates[2].ArticleIDs) != 1 || q.Predicates[2].ArticleIDs[0] != a.ID {
		t.Fatalf("favorited ids: got=%v", q.Predicates[2].ArticleIDs)
	}
	if q.Limit == nil || *q.Limit != 5 || q.Offset == nil || *q.Offset != 2 {
		t.Fatalf("pagination: limit=%v offset=%v", q.Limit, q.Offset)
	}
}

func TestCompileUnknownNamesMatchNothing(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.seedUser(t, "lonely")

	q, err := env.compiler.Compile(ctx, types.ArticleListParams{Author: pointers.String("ghost")}, nil)
	if err != nil {
		t.Fatalf("Compile unknown author: %v", err)
	}
	if !q.MatchesNothing() || q.Predicates[0].Stage != types.StageBeforeCount {
		t.Fatalf("unknown author: %+v", q.Predicates)
	}

	q, err = env.compiler.Compile(ctx, types.ArticleListParams{Favorited: pointers.String("ghost")}, nil)
	if err != nil {
		t.Fatalf("Compile unknown favorited: %v", err)
	}
	if !q.MatchesNothing() {
		t.Fatalf("unknown favorited: %+v", q.Predicates)
	}

	q, err = env.compiler.Compile(ctx, types.ArticleListParams{Favorited: pointers.String("lonely")}, nil)
	if err != nil {
		t.Fatalf("Compile empty favorites: %v", err)
	}
	if !q.MatchesNothing() {
		t.Fatalf("empty favorites set: %+v", q.Predicates)
	}
}

func TestCompileIgnoresViewer(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	viewer := uuid.New()

	q, err := env.compiler.Compile(ctx, types.ArticleListParams{}, &viewer)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if len(q.Predicates) != 0 || q.Limit != nil || q.Offset != nil {
		t.Fatalf("empty params: %+v", q)
	}
}
