package handler

import (
	"net/http"
	"time"

	deliverycontext "booking/internal/delivery/context"
	"booking/internal/delivery/http/response"
	"booking/internal/domain/entity"
	domainerrors "booking/internal/domain/errors"
	"booking/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// createBookingRequest is the payload for creating a booking. The booking
// date travels as an RFC 3339 timestamp.
type createBookingRequest struct {
	VehicleType string `json:"vehicleType" validate:"required"`
	ServiceType string `json:"serviceType" validate:"required"`
	BookingDate string `json:"bookingDate" validate:"required"`
}

// updateBookingRequest is the payload for a partial booking update. Absent
// fields are left untouched; supplying none is rejected.
type updateBookingRequest struct {
	VehicleType *string `json:"vehicleType"`
	ServiceType *string `json:"serviceType"`
	BookingDate *string `json:"bookingDate"`
}

// bookingResponse is the public view of a booking.
type bookingResponse struct {
	ID          uuid.UUID `json:"id"`
	VehicleType string    `json:"vehicleType"`
	ServiceType string    `json:"serviceType"`
	BookingDate time.Time `json:"bookingDate"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func toBookingResponse(booking *entity.Booking) bookingResponse {
	return bookingResponse{
		ID:          booking.ID,
		VehicleType: booking.VehicleType,
		ServiceType: booking.ServiceType,
		BookingDate: booking.BookingDate,
		CreatedAt:   booking.CreatedAt,
		UpdatedAt:   booking.UpdatedAt,
	}
}

func toBookingResponses(bookings []*entity.Booking) []bookingResponse {
	result := make([]bookingResponse, 0, len(bookings))
	for _, booking := range bookings {
		result = append(result, toBookingResponse(booking))
	}

	return result
}

// BookingHandler holds dependencies for booking handlers. Every route it
// serves sits behind the authentication middleware.
type BookingHandler struct {
	uc usecase.BookingUsecase
}

// NewBookingHandler is the constructor for BookingHandler, injected by Fx.
func NewBookingHandler(uc usecase.BookingUsecase) *BookingHandler {
	return &BookingHandler{uc: uc}
}

// ownerID extracts the authenticated account id placed by the auth middleware.
func ownerID(c echo.Context) (uuid.UUID, error) {
	accountID, ok := deliverycontext.GetAccountID(c)
	if !ok {
		return uuid.Nil, domainerrors.ErrUnauthenticated.WrapMessage("no authenticated account in request")
	}

	return accountID, nil
}

// bookingID parses the :id path parameter.
func bookingID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails("booking id must be a valid UUID")
	}

	return id, nil
}

func parseBookingDate(raw string) (time.Time, error) {
	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, domainerrors.ErrValidationFailed.WithDetails("bookingDate must be an RFC 3339 timestamp")
	}

	return parsed, nil
}

// Create handles the booking creation request.
func (h *BookingHandler) Create(c echo.Context) error {
	accountID, err := ownerID(c)
	if err != nil {
		return err
	}

	var req createBookingRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid booking input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	bookingDate, err := parseBookingDate(req.BookingDate)
	if err != nil {
		return err
	}

	booking, err := h.uc.Create(c.Request().Context(), accountID, &usecase.CreateBookingInput{
		VehicleType: req.VehicleType,
		ServiceType: req.ServiceType,
		BookingDate: bookingDate,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toBookingResponse(booking), "Booking created successfully")
}

// Get handles fetching a single booking.
func (h *BookingHandler) Get(c echo.Context) error {
	accountID, err := ownerID(c)
	if err != nil {
		return err
	}
	id, err := bookingID(c)
	if err != nil {
		return err
	}

	booking, err := h.uc.Get(c.Request().Context(), accountID, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toBookingResponse(booking), "")
}

// Update handles a partial booking update.
func (h *BookingHandler) Update(c echo.Context) error {
	accountID, err := ownerID(c)
	if err != nil {
		return err
	}
	id, err := bookingID(c)
	if err != nil {
		return err
	}

	var req updateBookingRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid booking input")
	}

	input := &usecase.UpdateBookingInput{
		VehicleType: req.VehicleType,
		ServiceType: req.ServiceType,
	}
	if req.BookingDate != nil {
		bookingDate, err := parseBookingDate(*req.BookingDate)
		if err != nil {
			return err
		}
		input.BookingDate = &bookingDate
	}

	booking, err := h.uc.Update(c.Request().Context(), accountID, id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toBookingResponse(booking), "Booking updated successfully")
}

// Delete handles removing a booking.
func (h *BookingHandler) Delete(c echo.Context) error {
	accountID, err := ownerID(c)
	if err != nil {
		return err
	}
	id, err := bookingID(c)
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), accountID, id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Booking deleted"}, "Booking deleted successfully")
}

// List handles listing the caller's bookings, optionally filtered by
// calendar day and vehicle type via query parameters.
func (h *BookingHandler) List(c echo.Context) error {
	accountID, err := ownerID(c)
	if err != nil {
		return err
	}

	input := &usecase.ListBookingsInput{}

	if rawDate := c.QueryParam("date"); rawDate != "" {
		date, err := parseFilterDate(rawDate)
		if err != nil {
			return err
		}
		input.Date = &date
	}
	if vehicleType := c.QueryParam("vehicleType"); vehicleType != "" {
		input.VehicleType = &vehicleType
	}

	bookings, err := h.uc.List(c.Request().Context(), accountID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toBookingResponses(bookings), "")
}

// parseFilterDate accepts either a plain date or a full RFC 3339 timestamp;
// either way the filter selects the whole UTC calendar day.
func parseFilterDate(raw string) (time.Time, error) {
	if parsed, err := time.Parse(time.DateOnly, raw); err == nil {
		return parsed, nil
	}

	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, domainerrors.ErrValidationFailed.WithDetails("date must be YYYY-MM-DD or an RFC 3339 timestamp")
	}

	return parsed, nil
}
