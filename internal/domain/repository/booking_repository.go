package repository

import (
	"context"
	"errors"
	"time"

	"booking/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrBookingNotFound is returned when a booking does not exist for the given
// id and owner. A booking owned by a different account reports the same error.
var ErrBookingNotFound = errors.New("booking not found")

// BookingUpdate carries a partial field replacement. Nil fields are left
// untouched; at least one field must be set (enforced by the use case).
type BookingUpdate struct {
	VehicleType *string
	ServiceType *string
	BookingDate *time.Time
}

// IsEmpty reports whether no recognized field is supplied.
func (u BookingUpdate) IsEmpty() bool {
	return u.VehicleType == nil && u.ServiceType == nil && u.BookingDate == nil
}

// BookingFilter narrows a listing. Nil fields are ignored.
type BookingFilter struct {
	// Date matches bookings scheduled on this calendar day (UTC).
	Date *time.Time

	// VehicleType matches exactly.
	VehicleType *string
}

// BookingRepository defines owner-scoped persistence for bookings.
// Every lookup, mutation and listing is filtered by the owning account id;
// there is no way to reach another account's booking through this interface.
type BookingRepository interface {
	// Create persists a new booking for the given owner.
	Create(ctx context.Context, booking *entity.Booking) error

	// FindByID retrieves a booking by id, scoped to the owner.
	FindByID(ctx context.Context, ownerID, id uuid.UUID) (*entity.Booking, error)

	// Update applies a partial field replacement, scoped to the owner, and
	// returns the updated record.
	Update(ctx context.Context, ownerID, id uuid.UUID, update BookingUpdate) (*entity.Booking, error)

	// Delete removes a booking by id, scoped to the owner.
	Delete(ctx context.Context, ownerID, id uuid.UUID) error

	// ListByOwner returns all bookings owned by ownerID matching the filter.
	ListByOwner(ctx context.Context, ownerID uuid.UUID, filter BookingFilter) ([]*entity.Booking, error)
}
