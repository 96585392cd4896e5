// Package dto defines data transfer objects for the review feature's HTTP transport layer.
package dto

// CreateReviewReq represents the request body for creating a review.
// Rating is a pointer so a missing rating and a zero rating are distinguishable.
// The binding tags reject structurally bad input at bind time; the full rule
// messages come from shared/validation.
type CreateReviewReq struct {
	Title    string   `json:"title" binding:"required,min=3,max=100"`
	Content  string   `json:"content" binding:"required,min=10,max=5000"`
	GameName string   `json:"gameName" binding:"required,max=100"`
	Rating   *float64 `json:"rating" binding:"required,gte=1,lte=10"`
	Platform *string  `json:"platform" binding:"omitempty,max=50"`
	Genre    *string  `json:"genre" binding:"omitempty,max=50"`
}

// UpdateReviewReq represents a partial review update.
// Nil pointers mean the field was not supplied and must stay unchanged.
type UpdateReviewReq struct {
	Title    *string  `json:"title" binding:"omitempty,min=3,max=100"`
	Content  *string  `json:"content" binding:"omitempty,min=10,max=5000"`
	GameName *string  `json:"gameName" binding:"omitempty,max=100"`
	Rating   *float64 `json:"rating" binding:"omitempty,gte=1,lte=10"`
	Platform *string  `json:"platform" binding:"omitempty,max=50"`
	Genre    *string  `json:"genre" binding:"omitempty,max=50"`
}
