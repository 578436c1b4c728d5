package domain

import "errors"

// Sentinel errors shared across services and controllers.
var (
	// ErrNotFound is returned when no row matches a lookup.
	ErrNotFound = errors.New("not found")

	// ErrUnauthorized is returned when credentials or tokens are invalid.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrInvalidInput is returned when the request is invalid.
	ErrInvalidInput = errors.New("invalid input")
)
