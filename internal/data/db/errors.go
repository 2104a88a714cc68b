package db

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

const pgUniqueViolation = "23505"

// IsUniqueViolation reports whether err is a unique constraint failure.
// When hint is non-empty the violated constraint (or the driver message)
// must mention it, e.g. "slug" or "username".
func IsUniqueViolation(err error, hint string) bool {
	if err == nil {
		return false
	}
	hint = strings.ToLower(strings.TrimSpace(hint))

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code != pgUniqueViolation {
			return false
		}
		if hint == "" {
			return true
		}
		return strings.Contains(strings.ToLower(pgErr.ConstraintName), hint) ||
			strings.Contains(strings.ToLower(pgErr.Detail), hint)
	}

	msg := strings.ToLower(err.Error())
	unique := strings.Contains(msg, "unique constraint failed") ||
		strings.Contains(msg, "duplicate key value violates unique constraint")
	if !unique {
		return false
	}
	return hint == "" || strings.Contains(msg, hint)
}
