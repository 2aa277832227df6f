// Package middleware contains the HTTP middleware chain pieces.
package middleware

import (
	"strings"

	deliverycontext "booking/internal/delivery/context"
	"booking/internal/delivery/http/session"
	domainerrors "booking/internal/domain/errors"
	"booking/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware guards routes that require an authenticated account.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// RequireAuth validates the identity token and stores the account id in both
// the echo context and the request context. The session cookie is the primary
// carrier; a Bearer token in the Authorization header is accepted as a
// fallback for non-browser clients. Every failure reports the same 401 so a
// caller cannot distinguish a missing token from a forged or expired one.
func (m *AuthMiddleware) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString, ok := session.Read(c)
		if !ok {
			tokenString, ok = bearerToken(c)
		}
		if !ok {
			return domainerrors.ErrUnauthenticated.WrapMessage("no identity token presented")
		}

		accountID, err := m.tokenSvc.Verify(tokenString)
		if err != nil {
			return domainerrors.ErrUnauthenticated.WrapMessage("identity token rejected")
		}

		deliverycontext.SetAccountID(c, accountID)
		c.SetRequest(c.Request().WithContext(
			deliverycontext.WithAccountID(c.Request().Context(), accountID),
		))

		return next(c)
	}
}

func bearerToken(c echo.Context) (string, bool) {
	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return "", false
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader || tokenString == "" {
		return "", false
	}

	return tokenString, true
}
