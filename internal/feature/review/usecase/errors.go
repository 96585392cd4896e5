// Package usecase implements the business logic for the review feature.
package usecase

import "errors"

var (
	// ErrReviewNotFound is returned when a review cannot be found by ID.
	ErrReviewNotFound = errors.New("review not found")

	// ErrNotReviewAuthor is returned when a caller tries to mutate or delete
	// a review they do not own.
	ErrNotReviewAuthor = errors.New("caller is not the review author")
)
