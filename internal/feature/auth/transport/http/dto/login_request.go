package dto

// LoginReq represents the request body for the /login endpoint.
// Presence only: a malformed address is handled as a failed credential
// check, not a validation error.
type LoginReq struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}
