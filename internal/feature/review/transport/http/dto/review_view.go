package dto

import (
	"time"

	"gamereview_backend/internal/feature/review/domain/entity"
)

// AuthorView is the public slice of a review's author.
type AuthorView struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ReviewView is the outward projection of a review.
type ReviewView struct {
	ID        uint       `json:"id"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	GameName  string     `json:"gameName"`
	Rating    float64    `json:"rating"`
	Platform  string     `json:"platform,omitempty"`
	Genre     string     `json:"genre,omitempty"`
	Author    AuthorView `json:"author"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// NewReviewView builds the outward projection of a review with its author.
func NewReviewView(r *entity.ReviewWithAuthor) ReviewView {
	return ReviewView{
		ID:        r.ID,
		Title:     r.Title,
		Content:   r.Content,
		GameName:  r.GameName,
		Rating:    r.Rating,
		Platform:  r.Platform,
		Genre:     r.Genre,
		Author:    AuthorView{ID: r.Author.ID, Name: r.Author.Name, Email: r.Author.Email},
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// ReviewRes is the response carrying a single review.
type ReviewRes struct {
	Success bool       `json:"success"`
	Message string     `json:"message,omitempty"`
	Review  ReviewView `json:"review"`
}

// ReviewListRes is the response carrying a list of reviews.
// CurrentUserID lets the frontend mark the caller's own entries in the feed.
type ReviewListRes struct {
	Success       bool         `json:"success"`
	Count         int          `json:"count"`
	Reviews       []ReviewView `json:"reviews"`
	CurrentUserID uint         `json:"currentUserId,omitempty"`
}
