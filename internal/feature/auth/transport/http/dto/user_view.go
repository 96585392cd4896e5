package dto

import (
	"time"

	"gamereview_backend/internal/feature/auth/domain/entity"
)

// UserView is the public projection of a user. The password hash is never
// part of it; every response that carries a user goes through here.
type UserView struct {
	ID            uint      `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Bio           string    `json:"bio"`
	FavoriteGenre string    `json:"favoriteGenre"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// NewUserView builds the public view of a user entity.
func NewUserView(u *entity.User) UserView {
	return UserView{
		ID:            u.ID,
		Name:          u.Name,
		Email:         u.Email,
		Bio:           u.Bio,
		FavoriteGenre: u.FavoriteGenre,
		CreatedAt:     u.CreatedAt,
		UpdatedAt:     u.UpdatedAt,
	}
}

// AuthRes is the response for successful registration and login.
// Token is the bearer carrier for API clients; browser clients get the
// session cookie alongside.
type AuthRes struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	User    UserView `json:"user"`
	Token   string   `json:"token"`
}

// ProfileRes is the response for profile reads and updates.
type ProfileRes struct {
	Success bool     `json:"success"`
	Message string   `json:"message,omitempty"`
	User    UserView `json:"user"`
}
