// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"booking/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrAccountNotFound is a domain-specific error returned when an account is not found.
var ErrAccountNotFound = errors.New("account not found")

// AccountRepository defines the standard operations for credential persistence.
// The application layer depends on this interface, not the concrete implementation.
type AccountRepository interface {
	// FindByID retrieves a single account by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// FindByEmail retrieves a single account by its email address.
	// The comparison is case-sensitive, matching the stored value.
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)

	// Create persists a new account. The store enforces email uniqueness
	// atomically: concurrent registrations of the same address yield exactly
	// one success, the rest fail with the duplicate-account condition.
	Create(ctx context.Context, account *entity.Account) error
}
