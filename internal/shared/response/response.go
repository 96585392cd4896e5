// Package response defines the uniform JSON envelope returned by every endpoint.
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Envelope is the common shape of all API responses.
// Success responses embed it alongside their payload fields; error responses
// use it alone so the client can always read success/message.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// ErrorBody is the body of every failed response.
// Errors carries field-level validation messages and is omitted otherwise.
type ErrorBody struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Errors  []string `json:"errors,omitempty"`
}

// Error writes a failed response with the given status and message.
func Error(c *gin.Context, status int, message string) {
	c.JSON(status, ErrorBody{Success: false, Message: message})
}

// AbortError writes a failed response and aborts the remaining handlers.
// Used by middleware so downstream handlers never run after a rejection.
func AbortError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, ErrorBody{Success: false, Message: message})
}

// ValidationFailed writes a 400 response carrying every violated field rule.
func ValidationFailed(c *gin.Context, errs []string) {
	c.JSON(http.StatusBadRequest, ErrorBody{Success: false, Message: "validation failed", Errors: errs})
}
