// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Account represents a registered customer of the booking system.
// The email is the login identifier; PasswordHash never contains the plaintext.
type Account struct {
	ID           uuid.UUID // Unique identifier, assigned by the store on creation.
	Email        string    // Login identifier, unique across all accounts.
	PasswordHash string    // Salted bcrypt digest of the account password.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification.
}
