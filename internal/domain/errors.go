package domain

import "errors"

var (
	ErrNotFound        = errors.New("not found")
	ErrForbidden       = errors.New("forbidden")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrSlugCollision is returned by the store when an article slug is already taken.
	ErrSlugCollision = errors.New("article slug already exists")
)
