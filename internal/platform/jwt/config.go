// Package jwtmw provides signing and verification of bearer tokens.
package jwtmw

import (
	"os"
	"time"
)

// TokenExpiration is how long an issued bearer token stays valid.
// Tokens are stateless and cannot be revoked early; logout only destroys
// the server-side session, so the window is kept to a week.
const TokenExpiration = 7 * 24 * time.Hour

// Config holds the signing configuration for bearer tokens.
// The secret is process-wide; rotating it invalidates every outstanding token.
type Config struct {
	Secret     string        // HMAC signing secret
	Expiration time.Duration // Token lifetime
}

// LoadConfig loads the token configuration from environment variables.
func LoadConfig() Config {
	return Config{
		Secret:     os.Getenv("JWT_SECRET"),
		Expiration: TokenExpiration,
	}
}
