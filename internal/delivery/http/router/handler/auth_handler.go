// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"
	"time"

	"booking/config"
	"booking/internal/delivery/http/response"
	"booking/internal/delivery/http/session"
	"booking/internal/domain/entity"
	"booking/internal/domain/service"
	"booking/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// registerRequest is the payload for account registration.
type registerRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// loginRequest is the payload for logging in.
type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// accountResponse is the public view of an account. The password hash never
// leaves the server.
type accountResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// authResponse carries the issued token alongside the account it identifies.
// The token is also set as the session cookie; the body copy serves
// non-browser clients.
type authResponse struct {
	Token   string          `json:"token"`
	Account accountResponse `json:"account"`
}

func toAccountResponse(account *entity.Account) accountResponse {
	return accountResponse{
		ID:        account.ID,
		Email:     account.Email,
		CreatedAt: account.CreatedAt,
	}
}

// AuthHandler holds dependencies for authentication handlers.
type AuthHandler struct {
	uc           usecase.AuthUsecase
	sessionTTL   time.Duration
	secureCookie bool
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, tokenSvc service.TokenService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		uc:           uc,
		sessionTTL:   tokenSvc.TokenTTL(),
		secureCookie: cfg.IsProduction(),
	}
}

// Register handles the account registration request.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Register(c.Request().Context(), &usecase.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	session.Write(c, output.Token, h.sessionTTL, h.secureCookie)

	return response.Success(c, http.StatusCreated, authResponse{
		Token:   output.Token,
		Account: toAccountResponse(output.Account),
	}, "Account registered successfully")
}

// Login handles the login request.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	session.Write(c, output.Token, h.sessionTTL, h.secureCookie)

	return response.Success(c, http.StatusOK, authResponse{
		Token:   output.Token,
		Account: toAccountResponse(output.Account),
	}, "Login successful")
}

// Logout clears the session cookie. Previously issued tokens are not revoked;
// they simply age out at their own expiry.
func (h *AuthHandler) Logout(c echo.Context) error {
	session.Clear(c, h.secureCookie)

	return response.Success(c, http.StatusOK, map[string]string{"message": "Successfully logged out"}, "Logout successful")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
