// Package handler provides HTTP handlers for platform-level endpoints.
package handler

import (
	"time"

	"github.com/gin-gonic/gin"
)

// Health handles the /api/health endpoint used for liveness checks.
// It responds per HTTP method and prevents caching.
func Health(c *gin.Context) {
	// Explicitly prevent caching
	c.Header("Cache-Control", "no-store")

	switch c.Request.Method {
	case "HEAD":
		c.Status(200)
	case "OPTIONS":
		c.Status(204)
	default:
		c.JSON(200, gin.H{
			"success":   true,
			"message":   "Server is running",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	}
}
