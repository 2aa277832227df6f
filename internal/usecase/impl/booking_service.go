package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "booking/internal/delivery/context"
	"booking/internal/domain/entity"
	domainerrors "booking/internal/domain/errors"
	"booking/internal/domain/repository"
	"booking/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// bookingService implements the BookingUsecase interface.
type bookingService struct {
	bookingRepo repository.BookingRepository
	logger      *slog.Logger
	now         func() time.Time
}

// BookingServiceParams holds dependencies for bookingService, injected by Fx.
type BookingServiceParams struct {
	fx.In

	BookingRepo repository.BookingRepository
	Logger      *slog.Logger
}

// NewBookingService is the constructor for bookingService.
func NewBookingService(params BookingServiceParams) usecase.BookingUsecase {
	return &bookingService{
		bookingRepo: params.BookingRepo,
		logger:      params.Logger,
		now:         time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *bookingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create validates and persists a new booking owned by ownerID.
// A booking date before the current instant is rejected; updates to an
// existing booking are allowed to keep a past date unchanged.
func (srv *bookingService) Create(ctx context.Context, ownerID uuid.UUID, input *usecase.CreateBookingInput) (*entity.Booking, error) {
	if input.BookingDate.Before(srv.now()) {
		srv.log(ctx).Warn("Booking rejected, date in the past", slog.Any("ownerID", ownerID), slog.Time("bookingDate", input.BookingDate))

		return nil, domainerrors.ErrValidationFailed.WrapMessage("booking date must not be in the past")
	}

	newBooking := &entity.Booking{
		AccountID:   ownerID,
		VehicleType: input.VehicleType,
		ServiceType: input.ServiceType,
		BookingDate: input.BookingDate,
	}

	if err := srv.bookingRepo.Create(ctx, newBooking); err != nil {
		srv.log(ctx).Error("Failed to create booking", slog.Any("ownerID", ownerID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create booking")
	}

	srv.log(ctx).Debug("Booking created", slog.Any("ownerID", ownerID), slog.Any("bookingID", newBooking.ID))

	return newBooking, nil
}

// Get retrieves a single booking owned by ownerID.
func (srv *bookingService) Get(ctx context.Context, ownerID, id uuid.UUID) (*entity.Booking, error) {
	booking, err := srv.bookingRepo.FindByID(ctx, ownerID, id)
	if err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			return nil, domainerrors.ErrBookingNotFound
		}

		return nil, errors.Wrap(err, "failed to find booking")
	}

	return booking, nil
}

// Update applies a partial field replacement to a booking owned by ownerID
// and returns the updated record. An update carrying no fields is rejected.
func (srv *bookingService) Update(ctx context.Context, ownerID, id uuid.UUID, input *usecase.UpdateBookingInput) (*entity.Booking, error) {
	update := repository.BookingUpdate{
		VehicleType: input.VehicleType,
		ServiceType: input.ServiceType,
		BookingDate: input.BookingDate,
	}

	if update.IsEmpty() {
		srv.log(ctx).Warn("Booking update rejected, no fields supplied", slog.Any("ownerID", ownerID), slog.Any("bookingID", id))

		return nil, domainerrors.ErrValidationFailed.WrapMessage("no updatable fields supplied")
	}

	booking, err := srv.bookingRepo.Update(ctx, ownerID, id, update)
	if err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			return nil, domainerrors.ErrBookingNotFound
		}
		srv.log(ctx).Error("Failed to update booking", slog.Any("ownerID", ownerID), slog.Any("bookingID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update booking")
	}

	srv.log(ctx).Debug("Booking updated", slog.Any("ownerID", ownerID), slog.Any("bookingID", id))

	return booking, nil
}

// Delete removes a booking owned by ownerID.
func (srv *bookingService) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	if err := srv.bookingRepo.Delete(ctx, ownerID, id); err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			return domainerrors.ErrBookingNotFound
		}
		srv.log(ctx).Error("Failed to delete booking", slog.Any("ownerID", ownerID), slog.Any("bookingID", id), slog.Any("error", err))

		return errors.Wrap(err, "failed to delete booking")
	}

	srv.log(ctx).Debug("Booking deleted", slog.Any("ownerID", ownerID), slog.Any("bookingID", id))

	return nil
}

// List returns the bookings owned by ownerID matching the filter.
func (srv *bookingService) List(ctx context.Context, ownerID uuid.UUID, input *usecase.ListBookingsInput) ([]*entity.Booking, error) {
	filter := repository.BookingFilter{}
	if input != nil {
		filter.Date = input.Date
		filter.VehicleType = input.VehicleType
	}

	bookings, err := srv.bookingRepo.ListByOwner(ctx, ownerID, filter)
	if err != nil {
		srv.log(ctx).Error("Failed to list bookings", slog.Any("ownerID", ownerID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list bookings")
	}

	return bookings, nil
}
