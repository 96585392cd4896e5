// Package usecase implements the business logic for the game catalog feature.
package usecase

import "errors"

var (
	// ErrGameNotFound is returned when the catalog has no game for the ID.
	ErrGameNotFound = errors.New("game not found")

	// ErrUpstream is returned when the external catalog API fails or is
	// unreachable. Handlers surface it as a bad gateway.
	ErrUpstream = errors.New("catalog upstream unavailable")
)
