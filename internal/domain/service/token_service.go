package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims carried by the bearer tokens.
// The subject registered claim holds the user ID.
type Claims struct {
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and verifying signed,
// time-limited bearer tokens. Tokens are not persisted server-side; a token
// is valid iff its signature verifies and it has not expired.
type TokenService interface {
	// Issue creates a signed token whose subject is the given user ID.
	Issue(userID uuid.UUID) (string, error)

	// Verify checks signature and expiry and returns the subject user ID.
	// Malformed, tampered and expired tokens all fail the same way; the
	// caller cannot distinguish the cause.
	Verify(tokenString string) (uuid.UUID, error)
}
