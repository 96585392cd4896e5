package jwtmw

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned for any token that fails verification:
// bad signature, expired, malformed claims. Callers must not expose which.
var ErrInvalidToken = errors.New("invalid token")

// Verifier defines the interface for bearer token verification.
type Verifier interface {
	// VerifyToken checks the signature and expiry of a token and returns the
	// user ID carried in its claims.
	VerifyToken(tokenStr string) (uint, error)
}

// verifier implements the Verifier interface.
type verifier struct {
	secret []byte
}

// NewVerifier creates a new token verifier from the given config.
func NewVerifier(cfg Config) Verifier {
	return &verifier{secret: []byte(cfg.Secret)}
}

// VerifyToken parses and verifies a token, returning the subject user ID.
func (v *verifier) VerifyToken(tokenStr string) (uint, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		// Check signing algorithm (only HMAC allowed)
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return v.secret, nil
	})
	if err != nil || !token.Valid {
		return 0, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, ErrInvalidToken
	}
	sub, ok := claims["sub"].(float64) // JWT numbers are decoded as float64
	if !ok || sub <= 0 {
		return 0, ErrInvalidToken
	}

	return uint(sub), nil
}
