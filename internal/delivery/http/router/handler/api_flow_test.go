package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"booking/config"
	"booking/internal/delivery/http/middleware"
	"booking/internal/delivery/http/validator"
	"booking/internal/domain/entity"
	"booking/internal/domain/repository"
	"booking/internal/infra/auth"
	"booking/internal/usecase/impl"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// memoryAccountRepo is an in-memory credential store for the flow test.
type memoryAccountRepo struct {
	accounts map[uuid.UUID]*entity.Account
}

func (r *memoryAccountRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Account, error) {
	if account, ok := r.accounts[id]; ok {
		return account, nil
	}

	return nil, repository.ErrAccountNotFound
}

func (r *memoryAccountRepo) FindByEmail(_ context.Context, email string) (*entity.Account, error) {
	for _, account := range r.accounts {
		if account.Email == email {
			return account, nil
		}
	}

	return nil, repository.ErrAccountNotFound
}

func (r *memoryAccountRepo) Create(_ context.Context, account *entity.Account) error {
	account.ID = uuid.New()
	r.accounts[account.ID] = account

	return nil
}

// memoryBookingRepo is an in-memory owner-scoped booking store.
type memoryBookingRepo struct {
	bookings map[uuid.UUID]*entity.Booking
}

func (r *memoryBookingRepo) Create(_ context.Context, booking *entity.Booking) error {
	booking.ID = uuid.New()
	r.bookings[booking.ID] = booking

	return nil
}

func (r *memoryBookingRepo) FindByID(_ context.Context, ownerID, id uuid.UUID) (*entity.Booking, error) {
	if booking, ok := r.bookings[id]; ok && booking.AccountID == ownerID {
		return booking, nil
	}

	return nil, repository.ErrBookingNotFound
}

func (r *memoryBookingRepo) Update(ctx context.Context, ownerID, id uuid.UUID, update repository.BookingUpdate) (*entity.Booking, error) {
	booking, err := r.FindByID(ctx, ownerID, id)
	if err != nil {
		return nil, err
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

	return booking, nil
}

func (r *memoryBookingRepo) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	if _, err := r.FindByID(ctx, ownerID, id); err != nil {
		return err
	}
	delete(r.bookings, id)

	return nil
}

func (r *memoryBookingRepo) ListByOwner(_ context.Context, ownerID uuid.UUID, _ repository.BookingFilter) ([]*entity.Booking, error) {
	var result []*entity.Booking
	for _, booking := range r.bookings {
		if booking.AccountID == ownerID {
			result = append(result, booking)
		}
	}

	return result, nil
}

type apiFlowFixture struct {
	server      *echo.Echo
	accountRepo *memoryAccountRepo
	bookingRepo *memoryBookingRepo
}

// newAPIFlowFixture wires the real hasher, token service, usecases, handlers
// and auth middleware over in-memory stores, so a request travels the same
// path it would in production short of the database.
func newAPIFlowFixture(t *testing.T) apiFlowFixture {
	t.Helper()

	cfg := &config.Config{
		Auth: &config.AuthConfig{
			Secret:     "flow-test-secret",
			TokenTTL:   24 * time.Hour,
			BcryptCost: bcrypt.MinCost,
		},
	}

	tokenSvc, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	accountRepo := &memoryAccountRepo{accounts: map[uuid.UUID]*entity.Account{}}
	bookingRepo := &memoryBookingRepo{bookings: map[uuid.UUID]*entity.Booking{}}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	authUC := impl.NewAuthService(impl.AuthServiceParams{
		AccountRepo:  accountRepo,
		Hasher:       auth.NewBcryptHasher(cfg),
		TokenService: tokenSvc,
		Logger:       logger,
	})
	bookingUC := impl.NewBookingService(impl.BookingServiceParams{
		BookingRepo: bookingRepo,
		Logger:      logger,
	})

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	authHandler := NewAuthHandler(authUC, tokenSvc, cfg)
	bookingHandler := NewBookingHandler(bookingUC)
	authMiddleware := middleware.NewAuthMiddleware(tokenSvc)

	e.POST("/api/auth/register", authHandler.Register)
	e.POST("/api/auth/login", authHandler.Login)
	e.POST("/api/auth/logout", authHandler.Logout)

	group := e.Group("/api/bookings", authMiddleware.RequireAuth)
	group.POST("", bookingHandler.Create)
	group.GET("", bookingHandler.List)
	group.GET("/:id", bookingHandler.Get)

	return apiFlowFixture{server: e, accountRepo: accountRepo, bookingRepo: bookingRepo}
}

func (f apiFlowFixture) do(method, path, body string, cookie *http.Cookie) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	f.server.ServeHTTP(rec, req)

	return rec
}

func TestAPIFlow_RegisterLoginBookLogout(t *testing.T) {
	f := newAPIFlowFixture(t)

	// Register.
	rec := f.do(http.MethodPost, "/api/auth/register", `{"email":"a@x.com","password":"password1"}`, nil)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	registerCookie := sessionCookie(rec)
	require.NotNil(t, registerCookie)
	require.NotEmpty(t, registerCookie.Value)

	// Registering the same email again fails without a second account.
	rec = f.do(http.MethodPost, "/api/auth/register", `{"email":"a@x.com","password":"password1"}`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "User already exists.")
	assert.Len(t, f.accountRepo.accounts, 1)

	// Login issues a fresh session.
	rec = f.do(http.MethodPost, "/api/auth/login", `{"email":"a@x.com","password":"password1"}`, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	loginCookie := sessionCookie(rec)
	require.NotNil(t, loginCookie)
	require.NotEmpty(t, loginCookie.Value)

	// Create a booking with the session cookie.
	rec = f.do(http.MethodPost, "/api/bookings",
		`{"vehicleType":"sedan","serviceType":"wash","bookingDate":"2030-01-02T10:00:00Z"}`, loginCookie)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created struct {
		Data struct {
			ID uuid.UUID `json:"id"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	// The stored booking is owned by the registered account.
	stored := f.bookingRepo.bookings[created.Data.ID]
	require.NotNil(t, stored)
	var accountID uuid.UUID
	for id := range f.accountRepo.accounts {
		accountID = id
	}
	assert.Equal(t, accountID, stored.AccountID)

	// The booking is listed for its owner.
	rec = f.do(http.MethodGet, "/api/bookings", "", loginCookie)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), created.Data.ID.String())

	// Another account cannot reach it.
	rec = f.do(http.MethodPost, "/api/auth/register", `{"email":"b@x.com","password":"password2"}`, nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	otherCookie := sessionCookie(rec)
	rec = f.do(http.MethodGet, "/api/bookings/"+created.Data.ID.String(), "", otherCookie)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Booking not found.")

	// Logout clears the cookie.
	rec = f.do(http.MethodPost, "/api/auth/logout", "", loginCookie)
	require.Equal(t, http.StatusOK, rec.Code)
	cleared := sessionCookie(rec)
	require.NotNil(t, cleared)
	assert.Empty(t, cleared.Value)

	// Without a cookie the booking routes reject the request.
	rec = f.do(http.MethodGet, "/api/bookings", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
