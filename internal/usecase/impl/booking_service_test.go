package impl

import (
	"context"
	"testing"
	"time"

	domainerrors "booking/internal/domain/errors"
	"booking/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// bookingServiceFixtures holds all test dependencies for booking service tests.
type bookingServiceFixtures struct {
	service     usecase.BookingUsecase
	bookingRepo *fakeBookingRepo
}

func createTestBookingService(now time.Time) bookingServiceFixtures {
	bookingRepo := newFakeBookingRepo()

	service := NewBookingService(BookingServiceParams{
		BookingRepo: bookingRepo,
		Logger:      newDiscardLogger(),
	})
	service.(*bookingService).now = func() time.Time { return now }

	return bookingServiceFixtures{
		service:     service,
		bookingRepo: bookingRepo,
	}
}

func strPtr(s string) *string { return &s }

func timePtr(t time.Time) *time.Time { return &t }

func TestBookingService_Create_Success(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	fixtures := createTestBookingService(now)
	ownerID := uuid.New()

	booking, err := fixtures.service.Create(context.Background(), ownerID, &usecase.CreateBookingInput{
		VehicleType: "SUV",
		ServiceType: "oil change",
		BookingDate: now.Add(48 * time.Hour),
	})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, booking.ID)
	assert.Equal(t, ownerID, booking.AccountID)
	assert.Equal(t, "SUV", booking.VehicleType)
}

func TestBookingService_Create_PastDateRejected(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	fixtures := createTestBookingService(now)

	_, err := fixtures.service.Create(context.Background(), uuid.New(), &usecase.CreateBookingInput{
		VehicleType: "SUV",
		ServiceType: "oil change",
		BookingDate: now.Add(-time.Hour),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Empty(t, fixtures.bookingRepo.bookings)
}

func TestBookingService_Create_OwnerStampedFromIdentity(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	fixtures := createTestBookingService(now)
	ownerID := uuid.New()

	booking, err := fixtures.service.Create(context.Background(), ownerID, &usecase.CreateBookingInput{
		VehicleType: "sedan",
		ServiceType: "inspection",
		BookingDate: now.Add(time.Hour),
	})

	require.NoError(t, err)
	assert.Equal(t, ownerID, fixtures.bookingRepo.bookings[booking.ID].AccountID)
}

func TestBookingService_Get_CrossOwnerReportsNotFound(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	fixtures := createTestBookingService(now)
	ownerID := uuid.New()

	booking, err := fixtures.service.Create(context.Background(), ownerID, &usecase.CreateBookingInput{
		VehicleType: "SUV",
		ServiceType: "oil change",
		BookingDate: now.Add(time.Hour),
	})
	require.NoError(t, err)

	_, err = fixtures.service.Get(context.Background(), uuid.New(), booking.ID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrBookingNotFound)
}

func TestBookingService_Update_Success(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	fixtures := createTestBookingService(now)
	ownerID := uuid.New()
	ctx := context.Background()

	booking, err := fixtures.service.Create(ctx, ownerID, &usecase.CreateBookingInput{
		VehicleType: "SUV",
		ServiceType: "oil change",
		BookingDate: now.Add(time.Hour),
	})
	require.NoError(t, err)

	updated, err := fixtures.service.Update(ctx, ownerID, booking.ID, &usecase.UpdateBookingInput{
		ServiceType: strPtr("tire rotation"),
	})

	require.NoError(t, err)
	assert.Equal(t, "tire rotation", updated.ServiceType)
	assert.Equal(t, "SUV", updated.VehicleType)
	assert.True(t, updated.BookingDate.Equal(booking.BookingDate))
}

func TestBookingService_Update_EmptyRejected(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	fixtures := createTestBookingService(now)
	ownerID := uuid.New()
	ctx := context.Background()

	booking, err := fixtures.service.Create(ctx, ownerID, &usecase.CreateBookingInput{
		VehicleType: "SUV",
		ServiceType: "oil change",
		BookingDate: now.Add(time.Hour),
	})
	require.NoError(t, err)

	_, err = fixtures.service.Update(ctx, ownerID, booking.ID, &usecase.UpdateBookingInput{})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestBookingService_Update_CrossOwnerReportsNotFound(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	fixtures := createTestBookingService(now)
	ctx := context.Background()

	booking, err := fixtures.service.Create(ctx, uuid.New(), &usecase.CreateBookingInput{
		VehicleType: "SUV",
		ServiceType: "oil change",
		BookingDate: now.Add(time.Hour),
	})
	require.NoError(t, err)

	_, err = fixtures.service.Update(ctx, uuid.New(), booking.ID, &usecase.UpdateBookingInput{
		ServiceType: strPtr("detailing"),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrBookingNotFound)
	assert.Equal(t, "oil change", fixtures.bookingRepo.bookings[booking.ID].ServiceType)
}

func TestBookingService_Update_PastDateAllowed(t *testing.T) {
	// Only creation checks the date against the clock. An existing booking
	// may be rescheduled freely; the record of a past visit stays editable.
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	fixtures := createTestBookingService(now)
	ownerID := uuid.New()
	ctx := context.Background()

	booking, err := fixtures.service.Create(ctx, ownerID, &usecase.CreateBookingInput{
		VehicleType: "SUV",
		ServiceType: "oil change",
		BookingDate: now.Add(time.Hour),
	})
	require.NoError(t, err)

	updated, err := fixtures.service.Update(ctx, ownerID, booking.ID, &usecase.UpdateBookingInput{
		BookingDate: timePtr(now.Add(-24 * time.Hour)),
	})

	require.NoError(t, err)
	assert.True(t, updated.BookingDate.Before(now))
}

func TestBookingService_Delete_Success(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	fixtures := createTestBookingService(now)
	ownerID := uuid.New()
	ctx := context.Background()

	booking, err := fixtures.service.Create(ctx, ownerID, &usecase.CreateBookingInput{
		VehicleType: "SUV",
		ServiceType: "oil change",
		BookingDate: now.Add(time.Hour),
	})
	require.NoError(t, err)

	require.NoError(t, fixtures.service.Delete(ctx, ownerID, booking.ID))
	assert.Empty(t, fixtures.bookingRepo.bookings)

	err = fixtures.service.Delete(ctx, ownerID, booking.ID)
	assert.ErrorIs(t, err, domainerrors.ErrBookingNotFound)
}

func TestBookingService_Delete_CrossOwnerReportsNotFound(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	fixtures := createTestBookingService(now)
	ctx := context.Background()

	booking, err := fixtures.service.Create(ctx, uuid.New(), &usecase.CreateBookingInput{
		VehicleType: "SUV",
		ServiceType: "oil change",
		BookingDate: now.Add(time.Hour),
	})
	require.NoError(t, err)

	err = fixtures.service.Delete(ctx, uuid.New(), booking.ID)

	assert.ErrorIs(t, err, domainerrors.ErrBookingNotFound)
	assert.Len(t, fixtures.bookingRepo.bookings, 1)
}

func TestBookingService_List_OwnerScopedWithFilters(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	fixtures := createTestBookingService(now)
	ownerID := uuid.New()
	otherID := uuid.New()
	ctx := context.Background()

	day := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	_, err := fixtures.service.Create(ctx, ownerID, &usecase.CreateBookingInput{VehicleType: "SUV", ServiceType: "oil change", BookingDate: day})
	require.NoError(t, err)
	_, err = fixtures.service.Create(ctx, ownerID, &usecase.CreateBookingInput{VehicleType: "sedan", ServiceType: "inspection", BookingDate: day.Add(2 * time.Hour)})
	require.NoError(t, err)
	_, err = fixtures.service.Create(ctx, ownerID, &usecase.CreateBookingInput{VehicleType: "SUV", ServiceType: "detailing", BookingDate: day.AddDate(0, 0, 3)})
	require.NoError(t, err)
	_, err = fixtures.service.Create(ctx, otherID, &usecase.CreateBookingInput{VehicleType: "SUV", ServiceType: "oil change", BookingDate: day})
	require.NoError(t, err)

	all, err := fixtures.service.List(ctx, ownerID, &usecase.ListBookingsInput{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	suvs, err := fixtures.service.List(ctx, ownerID, &usecase.ListBookingsInput{VehicleType: strPtr("SUV")})
	require.NoError(t, err)
	assert.Len(t, suvs, 2)

	sameDay, err := fixtures.service.List(ctx, ownerID, &usecase.ListBookingsInput{Date: timePtr(day)})
	require.NoError(t, err)
	assert.Len(t, sameDay, 2)

	none, err := fixtures.service.List(ctx, uuid.New(), &usecase.ListBookingsInput{})
	require.NoError(t, err)
	assert.Empty(t, none)
}
