package repository

import (
	"context"

	"github.com/google/uuid"
)

// FavoriteRepository defines the persistence operations for a user's favorite
// country codes. Add and Remove must be atomic at the store level so that
// concurrent calls for the same user never lose an update; callers must not
// implement favorites as a read-modify-write of the whole set.
type FavoriteRepository interface {
	// List returns the favorite country codes of the given user.
	// Returns an empty slice, not nil, when the user has no favorites.
	List(ctx context.Context, userID uuid.UUID) ([]string, error)

	// Add inserts a country code into the user's favorites.
	// Adding a code that is already present is a no-op.
	Add(ctx context.Context, userID uuid.UUID, code string) error

	// Remove deletes a country code from the user's favorites.
	// Removing an absent code is a no-op.
	Remove(ctx context.Context, userID uuid.UUID, code string) error
}
