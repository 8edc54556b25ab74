package usecase

import (
	"context"

	"github.com/google/uuid"
)

// FavoritesUsecase defines the operations on a user's favorite country codes.
// The userID argument is the identity resolved by the auth middleware; it is
// passed explicitly rather than smuggled through shared request state.
type FavoritesUsecase interface {
	// List returns the user's favorite country codes.
	List(ctx context.Context, userID uuid.UUID) ([]string, error)

	// Add puts a country code into the user's favorites and returns the
	// updated set. Adding a code already present is a successful no-op.
	Add(ctx context.Context, userID uuid.UUID, code string) ([]string, error)

	// Remove deletes a country code from the user's favorites and returns
	// the updated set. Removing an absent code is a successful no-op.
	Remove(ctx context.Context, userID uuid.UUID, code string) ([]string, error)
}
