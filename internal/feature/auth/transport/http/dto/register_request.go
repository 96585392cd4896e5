// Package dto defines data transfer objects for the auth feature's HTTP transport layer.
package dto

// RegisterReq represents the request body for the /register endpoint.
// The binding tags reject structurally bad input at bind time; the full
// rule messages come from shared/validation, which reports every violation
// at once, not just the first.
type RegisterReq struct {
	Name     string `json:"name" binding:"required,min=2,max=50"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}
