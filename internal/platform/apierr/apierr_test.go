package apierr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestAsUnwrapsWrappedErrors(t *testing.T) {
	base := Forbidden("not_author", errors.New("You are not an author"))
	wrapped := fmt.Errorf("delete article: %w", base)

	got, ok := As(wrapped)
	if !ok {
		t.Fatalf("As: expected match")
	}
	if got.Status != http.StatusForbidden {
		t.Fatalf("status: want=%d got=%d", http.StatusForbidden, got.Status)
	}
	if got.Error() != "You are not an author" {
		t.Fatalf("message: got=%q", got.Error())
	}
}

func TestErrorFallbacks(t *testing.T) {
	if got := New(http.StatusNotFound, "article_not_found", nil).Error(); got != "article_not_found" {
		t.Fatalf("code fallback: got=%q", got)
	}
	if got := New(http.StatusTeapot, "", nil).Error(); got != "api error (418)" {
		t.Fatalf("status fallback: got=%q", got)
	}
	if _, ok := As(errors.New("plain")); ok {
		t.Fatalf("As(plain): expected no match")
	}
}
