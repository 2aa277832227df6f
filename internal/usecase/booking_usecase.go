package usecase

import (
	"context"
	"time"

	"booking/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateBookingInput defines the data required to create a booking.
// The owner is never part of the input; it is stamped from the
// authenticated identity.
type CreateBookingInput struct {
	VehicleType string
	ServiceType string
	BookingDate time.Time
}

// UpdateBookingInput carries a partial field replacement; nil fields are
// left untouched. Supplying no field at all is a validation error.
type UpdateBookingInput struct {
	VehicleType *string
	ServiceType *string
	BookingDate *time.Time
}

// ListBookingsInput narrows a listing; nil filters are ignored.
type ListBookingsInput struct {
	Date        *time.Time
	VehicleType *string
}

// BookingUsecase defines owner-scoped booking operations. Every operation
// takes the authenticated account id and can only ever see that account's
// bookings; cross-owner access reports not-found.
type BookingUsecase interface {
	Create(ctx context.Context, ownerID uuid.UUID, input *CreateBookingInput) (*entity.Booking, error)
	Get(ctx context.Context, ownerID, id uuid.UUID) (*entity.Booking, error)
	Update(ctx context.Context, ownerID, id uuid.UUID, input *UpdateBookingInput) (*entity.Booking, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
	List(ctx context.Context, ownerID uuid.UUID, input *ListBookingsInput) ([]*entity.Booking, error)
}
