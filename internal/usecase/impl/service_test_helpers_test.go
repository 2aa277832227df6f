package impl

import (
	"context"
	"io"
	"log/slog"
	"time"

	"booking/internal/domain/entity"
	"booking/internal/domain/repository"

	"github.com/google/uuid"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeAccountRepo is an in-memory repository.AccountRepository keyed by email.
type fakeAccountRepo struct {
	byEmail   map[string]*entity.Account
	createErr error
	findErr   error
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{byEmail: map[string]*entity.Account{}}
}

func (f *fakeAccountRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Account, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	for _, account := range f.byEmail {
		if account.ID == id {
			return account, nil
		}
	}

	return nil, repository.ErrAccountNotFound
}

func (f *fakeAccountRepo) FindByEmail(_ context.Context, email string) (*entity.Account, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	if account, ok := f.byEmail[email]; ok {
		return account, nil
	}

	return nil, repository.ErrAccountNotFound
}

func (f *fakeAccountRepo) Create(_ context.Context, account *entity.Account) error {
	if f.createErr != nil {
		return f.createErr
	}
	account.ID = uuid.New()
	f.byEmail[account.Email] = account

	return nil
}

// fakePasswordHasher marks hashes with a prefix so Check can verify without bcrypt.
type fakePasswordHasher struct {
	hashErr error
}

func (f *fakePasswordHasher) Hash(password string) (string, error) {
	if f.hashErr != nil {
		return "", f.hashErr
	}

	return "hashed:" + password, nil
}

func (f *fakePasswordHasher) Check(password, hash string) bool {
	return hash == "hashed:"+password
}

// fakeTokenService issues tokens embedding the account id.
type fakeTokenService struct {
	issueErr error
}

func (f *fakeTokenService) Issue(accountID uuid.UUID) (string, error) {
	if f.issueErr != nil {
		return "", f.issueErr
	}

	return "token:" + accountID.String(), nil
}

func (f *fakeTokenService) Verify(token string) (uuid.UUID, error) {
	return uuid.Parse(token[len("token:"):])
}

func (f *fakeTokenService) TokenTTL() time.Duration {
	return 24 * time.Hour
}

// fakeBookingRepo is an in-memory repository.BookingRepository with owner scoping.
type fakeBookingRepo struct {
	bookings  map[uuid.UUID]*entity.Booking
	createErr error
	listErr   error
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: map[uuid.UUID]*entity.Booking{}}
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *entity.Booking) error {
	if f.createErr != nil {
		return f.createErr
	}
	booking.ID = uuid.New()
	cloned := *booking
	f.bookings[booking.ID] = &cloned

	return nil
}

func (f *fakeBookingRepo) FindByID(_ context.Context, ownerID, id uuid.UUID) (*entity.Booking, error) {
	booking, ok := f.bookings[id]
	if !ok || booking.AccountID != ownerID {
		return nil, repository.ErrBookingNotFound
	}
	cloned := *booking

	return &cloned, nil
}

func (f *fakeBookingRepo) Update(ctx context.Context, ownerID, id uuid.UUID, update repository.BookingUpdate) (*entity.Booking, error) {
	booking, ok := f.bookings[id]
	if !ok || booking.AccountID != ownerID {
		return nil, repository.ErrBookingNotFound
	}
	if update.VehicleType != nil {
		booking.VehicleType = *update.VehicleType
	}
	if update.ServiceType != nil {
		booking.ServiceType = *update.ServiceType
	}
	if update.BookingDate != nil {
		booking.BookingDate = *update.BookingDate
	}

	return f.FindByID(ctx, ownerID, id)
}

func (f *fakeBookingRepo) Delete(_ context.Context, ownerID, id uuid.UUID) error {
	booking, ok := f.bookings[id]
	if !ok || booking.AccountID != ownerID {
		return repository.ErrBookingNotFound
	}
	delete(f.bookings, id)

	return nil
}

func (f *fakeBookingRepo) ListByOwner(_ context.Context, ownerID uuid.UUID, filter repository.BookingFilter) ([]*entity.Booking, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}

	var result []*entity.Booking
	for _, booking := range f.bookings {
		if booking.AccountID != ownerID {
			continue
		}
		if filter.VehicleType != nil && booking.VehicleType != *filter.VehicleType {
			continue
		}
		if filter.Date != nil {
			dayStart := filter.Date.UTC().Truncate(24 * time.Hour)
			if booking.BookingDate.Before(dayStart) || !booking.BookingDate.Before(dayStart.Add(24*time.Hour)) {
				continue
			}
		}
		cloned := *booking
		result = append(result, &cloned)
	}

	return result, nil
}
