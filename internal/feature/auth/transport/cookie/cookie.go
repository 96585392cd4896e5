// Package cookie holds the session cookie settings shared by the auth
// handlers (which set it) and the auth middleware (which reads it).
package cookie

import (
	"net/http"
	"os"
	"strings"
)

// Config describes how the session cookie is written.
type Config struct {
	Name     string
	Domain   string
	Secure   bool
	SameSite http.SameSite
}

// LoadConfig loads cookie settings from environment variables.
// SameSite defaults to Lax; cross-site frontends set COOKIE_SAMESITE=none
// together with COOKIE_SECURE=true.
func LoadConfig() Config {
	name := os.Getenv("COOKIE_NAME")
	if name == "" {
		name = "session_id"
	}

	sameSite := http.SameSiteLaxMode
	switch strings.ToLower(os.Getenv("COOKIE_SAMESITE")) {
	case "none":
		sameSite = http.SameSiteNoneMode
	case "strict":
		sameSite = http.SameSiteStrictMode
	}

	return Config{
		Name:     name,
		Domain:   os.Getenv("COOKIE_DOMAIN"),
		Secure:   os.Getenv("COOKIE_SECURE") == "true",
		SameSite: sameSite,
	}
}
