package dto

// UpdateProfileReq represents a partial profile update.
// Nil pointers mean the field was not supplied and must stay unchanged.
type UpdateProfileReq struct {
	Name          *string `json:"name" binding:"omitempty,min=2,max=50"`
	Bio           *string `json:"bio" binding:"omitempty,max=200"`
	FavoriteGenre *string `json:"favoriteGenre" binding:"omitempty,max=50"`
}

// ChangePasswordReq represents the request body for the password change endpoint.
type ChangePasswordReq struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=6"`
}
