package content

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// ArticleListParams is the typed listing query accepted at the HTTP boundary.
// A nil field means the filter is absent.
type ArticleListParams struct {
	Author    *string
	Tag       *string
	Favorited *string
	Limit     *int
	Offset    *int
}

// ParseArticleListParams reads listing filters from a query string.
// Blank filters are dropped; unparseable or negative pagination values
// become "no bound" instead of an error, and limit=0 is treated as absent.
func ParseArticleListParams(v url.Values) ArticleListParams {
	var p ArticleListParams
	p.Author = nonBlank(v.Get("author"))
	p.Tag = nonBlank(v.Get("tag"))
	p.Favorited = nonBlank(v.Get("favorited"))
	if n, ok := parseBound(v.Get("limit")); ok && n > 0 {
		p.Limit = &n
	}
	if n, ok := parseBound(v.Get("offset")); ok {
		p.Offset = &n
	}
	return p
}

func nonBlank(raw string) *string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	return &raw
}

func parseBound(raw string) (int, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

type PredicateKind string

const (
	// PredicateAuthor restricts to one author id.
	PredicateAuthor PredicateKind = "author"
	// PredicateTag is a substring match on the serialized tag list.
	PredicateTag PredicateKind = "tag"
	// PredicateIDs restricts to an explicit id set.
	PredicateIDs PredicateKind = "article_ids"
	// PredicateNone matches nothing.
	PredicateNone PredicateKind = "none"
)

// PredicateStage places a predicate relative to the total count.
type PredicateStage int

const (
	StageBeforeCount PredicateStage = iota
	StageAfterCount
)

type ArticlePredicate struct {
	Kind       PredicateKind
	Stage      PredicateStage
	Filter     string
	AuthorID   uuid.UUID
	Tag        string
	ArticleIDs []uuid.UUID
}

// CompiledArticleQuery holds predicates in author, tag, favorited order.
type CompiledArticleQuery struct {
	Predicates []ArticlePredicate
	Limit      *int
	Offset     *int
}

// CountPredicates returns the predicates applied before the total count.
func (q CompiledArticleQuery) CountPredicates() []ArticlePredicate {
	out := make([]ArticlePredicate, 0, len(q.Predicates))
	for _, p := range q.Predicates {
		if p.Stage == StageBeforeCount {
			out = append(out, p)
		}
	}
	return out
}

// MatchesNothing reports whether any predicate is unsatisfiable.
func (q CompiledArticleQuery) MatchesNothing() bool {
	for _, p := range q.Predicates {
		if p.Kind == PredicateNone {
			return true
		}
	}
	return false
}
