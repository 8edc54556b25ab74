// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"atlas/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// AuthOutput returns the account's profile plus a freshly issued bearer token.
type AuthOutput struct {
	User  *entity.User
	Token string
}

// AccountUsecase defines the interface for account-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AccountUsecase interface {
	// Register creates a new account with an empty favorites set and issues
	// a token for it.
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)

	// Login verifies credentials and issues a fresh token. Unknown email and
	// wrong password fail identically.
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)

	// Logout is a stateless no-op: bearer tokens are not revocable server-side,
	// so the only effect is advising the caller to discard its token.
	Logout(ctx context.Context) error

	// Profile returns the account of the given user ID.
	Profile(ctx context.Context, userID uuid.UUID) (*entity.User, error)
}
