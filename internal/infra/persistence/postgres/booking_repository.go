package postgres

import (
	"context"
	"time"

	"booking/internal/domain/entity"
	domainerrors "booking/internal/domain/errors"
	"booking/internal/domain/repository"
	"booking/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// bookingRepository implements the repository.BookingRepository interface using GORM.
type bookingRepository struct {
	db *gorm.DB
}

// NewBookingRepository is the constructor for bookingRepository.
func NewBookingRepository(db *gorm.DB) repository.BookingRepository {
	return &bookingRepository{db: db}
}

// ownerScope is the single place where the "scope by owner" rule lives.
// Every query in this repository goes through it, so a booking can never be
// reached with an id alone.
func ownerScope(ownerID uuid.UUID) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("account_id = ?", ownerID)
	}
}

// Create persists a new booking.
func (repo *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	bookingM := fromBookingDomain(booking)

	if err := repo.db.WithContext(ctx).Create(bookingM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrBookingNotFound.WrapMessage("unknown owning account")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required booking information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create booking")
	}

	booking.ID = bookingM.ID
	booking.CreatedAt = bookingM.CreatedAt
	booking.UpdatedAt = bookingM.UpdatedAt

	return nil
}

// FindByID retrieves a booking by id, scoped to the owner. A booking owned by
// another account reports not-found, indistinguishable from a missing record.
func (repo *bookingRepository) FindByID(ctx context.Context, ownerID, id uuid.UUID) (*entity.Booking, error) {
	var bookingM model.BookingModel

	if err := repo.db.WithContext(ctx).
		Scopes(ownerScope(ownerID)).
		Where("id = ?", id).
		First(&bookingM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBookingNotFound
		}

		return nil, errors.Wrap(err, "failed to find booking by id")
	}

	return toBookingDomain(&bookingM), nil
}

// Update applies a partial field replacement, scoped to the owner, and
// returns the updated record. Only supplied fields change.
func (repo *bookingRepository) Update(ctx context.Context, ownerID, id uuid.UUID, update repository.BookingUpdate) (*entity.Booking, error) {
	updates := map[string]any{}
	if update.VehicleType != nil {
		updates["vehicle_type"] = *update.VehicleType
	}
	if update.ServiceType != nil {
		updates["service_type"] = *update.ServiceType
	}
	if update.BookingDate != nil {
		updates["booking_date"] = *update.BookingDate
	}

	result := repo.db.WithContext(ctx).
		Model(&model.BookingModel{}).
		Scopes(ownerScope(ownerID)).
		Where("id = ?", id).
		Updates(updates)

	if result.Error != nil {
		if isNotNullConstraintViolation(result.Error) {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("missing required booking information")
		}

		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to update booking")
	}

	if result.RowsAffected == 0 {
		return nil, repository.ErrBookingNotFound
	}

	return repo.FindByID(ctx, ownerID, id)
}

// Delete removes a booking by id, scoped to the owner.
func (repo *bookingRepository) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Scopes(ownerScope(ownerID)).
		Where("id = ?", id).
		Delete(&model.BookingModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete booking")
	}

	if result.RowsAffected == 0 {
		return repository.ErrBookingNotFound
	}

	return nil
}

// ListByOwner returns all bookings owned by ownerID matching the filter,
// newest booking date first.
func (repo *bookingRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID, filter repository.BookingFilter) ([]*entity.Booking, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.BookingModel{}).
		Scopes(ownerScope(ownerID))

	if filter.Date != nil {
		dayStart := filter.Date.UTC().Truncate(24 * time.Hour)
		query = query.Where("booking_date >= ? AND booking_date < ?", dayStart, dayStart.Add(24*time.Hour))
	}
	if filter.VehicleType != nil {
		query = query.Where("vehicle_type = ?", *filter.VehicleType)
	}

	var bookingModels []*model.BookingModel
	if err := query.Order("booking_date DESC").Find(&bookingModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list bookings")
	}

	bookings := make([]*entity.Booking, 0, len(bookingModels))
	for _, bookingM := range bookingModels {
		bookings = append(bookings, toBookingDomain(bookingM))
	}

	return bookings, nil
}

// --- Mapper Functions ---

// toBookingDomain converts a GORM BookingModel to a domain Booking entity.
func toBookingDomain(data *model.BookingModel) *entity.Booking {
	if data == nil {
		return nil
	}

	return &entity.Booking{
		ID:          data.ID,
		AccountID:   data.AccountID,
		VehicleType: data.VehicleType,
		ServiceType: data.ServiceType,
		BookingDate: data.BookingDate,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromBookingDomain converts a domain Booking entity to a GORM BookingModel for persistence.
func fromBookingDomain(data *entity.Booking) *model.BookingModel {
	if data == nil {
		return nil
	}

	return &model.BookingModel{
		ID:          data.ID,
		AccountID:   data.AccountID,
		VehicleType: data.VehicleType,
		ServiceType: data.ServiceType,
		BookingDate: data.BookingDate,
	}
}
