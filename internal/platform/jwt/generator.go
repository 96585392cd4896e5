package jwtmw

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Generator defines the interface for bearer token generation.
type Generator interface {
	// GenerateToken creates a signed token for the given user.
	GenerateToken(userID uint) (string, error)
}

// generator implements the Generator interface.
type generator struct {
	secret     []byte
	expiration time.Duration
}

// NewGenerator creates a new token generator from the given config.
// The secret is injected here once; nothing reads it from the environment
// at request time.
func NewGenerator(cfg Config) Generator {
	return &generator{
		secret:     []byte(cfg.Secret),
		expiration: cfg.Expiration,
	}
}

// GenerateToken creates a signed token with standard claims.
func (g *generator) GenerateToken(userID uint) (string, error) {
	claims := jwt.MapClaims{
		"sub": userID,
		"exp": time.Now().Add(g.expiration).Unix(),
		"iat": time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(g.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}
