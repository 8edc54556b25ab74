// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core entity in the system, representing a registered account.
type User struct {
	ID           uuid.UUID // The unique identifier for the user, assigned at creation.
	Name         string    // The user's display name, set at registration.
	Email        string    // The login identifier. Unique across all users (case-sensitive).
	PasswordHash string    // The bcrypt-hashed password. Never exposed outside the backend.
	Favorites    []string  // The set of 3-letter country codes the user has marked as favorite.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this user's data.
}
