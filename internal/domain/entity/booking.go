package entity

import (
	"time"

	"github.com/google/uuid"
)

// Booking is a vehicle-service reservation owned by exactly one account.
// AccountID is stamped from the authenticated identity on creation and is
// immutable afterwards; every read, update and delete is scoped by it.
type Booking struct {
	ID          uuid.UUID // Unique identifier, assigned by the store on creation.
	AccountID   uuid.UUID // Owning account. Never taken from client input.
	VehicleType string    // e.g. "sedan", "suv".
	ServiceType string    // e.g. "wash", "full-service".
	BookingDate time.Time // Scheduled date and time of the service.
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
