// Package middleware implements the identity-resolving auth gate.
package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"gamereview_backend/internal/feature/auth/domain/entity"
	"gamereview_backend/internal/feature/auth/transport/cookie"
	jwtmw "gamereview_backend/internal/platform/jwt"
	"gamereview_backend/internal/shared/response"
)

// Context keys set by the auth gate for downstream handlers.
const (
	ContextUserID    = "userID"
	ContextSessionID = "sessionID"
)

// unauthorizedMsg is the single message for every authentication failure.
// Callers must not be able to tell which resolution step rejected them.
const unauthorizedMsg = "unauthorized. Please login to access this resource."

// SessionFinder looks up a session by its cookie-borne ID.
// Following Go convention: interfaces are defined by the consumer (middleware), not the provider (adapters).
type SessionFinder interface {
	FindByID(ctx context.Context, id string) (*entity.Session, error)
}

// UserFinder confirms a token subject still exists in the credential store.
type UserFinder interface {
	FindByID(ctx context.Context, id uint) (*entity.User, error)
}

// AuthRequired returns a Gin middleware that resolves the caller's identity
// before any protected handler runs. Resolution order, first match wins:
//
//  1. A valid server-side session referenced by the session cookie.
//  2. A signed bearer token in the Authorization header, whose subject must
//     still exist in the credential store.
//
// On success the resolved user ID (and session ID, if any) are attached to
// the request context. The middleware never mutates session or token state.
func AuthRequired(sessions SessionFinder, users UserFinder, verifier jwtmw.Verifier, cookies cookie.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		// 1. Session cookie path: a valid session is used directly.
		if id, err := c.Cookie(cookies.Name); err == nil && id != "" {
			if s, err := sessions.FindByID(ctx, id); err == nil && s.IsValid() {
				c.Set(ContextUserID, s.UserID)
				c.Set(ContextSessionID, s.ID)
				c.Next()
				return
			}
			// Stale or revoked session: fall through to the bearer path.
		}

		// 2. Bearer token path.
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			response.AbortError(c, http.StatusUnauthorized, unauthorizedMsg)
			return
		}
		tokenStr := strings.TrimPrefix(auth, "Bearer ")

		userID, err := verifier.VerifyToken(tokenStr)
		if err != nil {
			response.AbortError(c, http.StatusUnauthorized, unauthorizedMsg)
			return
		}

		// A valid token whose user was since removed is unauthenticated,
		// not an error.
		if _, err := users.FindByID(ctx, userID); err != nil {
			response.AbortError(c, http.StatusUnauthorized, unauthorizedMsg)
			return
		}

		c.Set(ContextUserID, userID)
		c.Next()
	}
}

// CurrentUserID returns the user ID the auth gate attached to the context.
func CurrentUserID(c *gin.Context) (uint, bool) {
	v, ok := c.Get(ContextUserID)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}

// CurrentSessionID returns the session ID, empty for bearer-token callers.
func CurrentSessionID(c *gin.Context) string {
	return c.GetString(ContextSessionID)
}
