// Package entity defines the domain entities for the review feature.
package entity

import "time"

// Review is one user's review of a game.
type Review struct {
	// ID is the unique identifier for the review.
	ID uint `gorm:"primaryKey"`

	// Title is a short headline (3-100 characters).
	Title string `gorm:"size:100;not null"`

	// Content is the review body (10-5000 characters).
	Content string `gorm:"size:5000;not null"`

	// GameName is the reviewed game (max 100 characters).
	GameName string `gorm:"size:100;not null;index"`

	// Rating scores the game on an inclusive 1-10 scale.
	Rating float64 `gorm:"not null"`

	// Platform is an optional platform label (max 50 characters).
	Platform string `gorm:"size:50"`

	// Genre is an optional genre label (max 50 characters).
	Genre string `gorm:"size:50"`

	// AuthorID is the owning user. Only the author may mutate or delete
	// the review.
	AuthorID uint `gorm:"not null;index:idx_reviews_author_created,priority:1"`

	// CreatedAt is the timestamp when the review was created.
	CreatedAt time.Time `gorm:"index:idx_reviews_author_created,priority:2"`

	// UpdatedAt is the timestamp when the review was last updated.
	UpdatedAt time.Time
}

// TableName returns the table name for GORM.
func (Review) TableName() string {
	return "reviews"
}

// AuthorSummary is the slice of the author shown alongside a review.
type AuthorSummary struct {
	ID    uint
	Name  string
	Email string
}

// ReviewWithAuthor is a review joined with its author's public fields.
type ReviewWithAuthor struct {
	Review
	Author AuthorSummary
}
