// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// User represents a registered member of the review platform.
type User struct {
	// ID is the unique identifier for the user.
	ID uint `gorm:"primaryKey"`

	// Name is the user's display name (2-50 characters, stored trimmed).
	Name string `gorm:"size:50;not null"`

	// Email is the user's address used for authentication.
	// It is stored lower-cased and must be unique across all users.
	Email string `gorm:"uniqueIndex;size:255;not null"`

	// Password is the bcrypt hash of the user's password.
	// It must never leave the server; every outward view strips it.
	Password string `gorm:"size:255;not null"`

	// Bio is an optional self-description (max 200 characters).
	Bio string `gorm:"size:200"`

	// FavoriteGenre is an optional favorite game genre (max 50 characters).
	FavoriteGenre string `gorm:"size:50"`

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the user was last updated.
	UpdatedAt time.Time
}
