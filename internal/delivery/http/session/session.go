// Package session moves the identity token between server and browser as an
// HTTP cookie. The token itself stays opaque here; issuing and verifying it
// belongs to the token service.
package session

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// CookieName is the cookie carrying the identity token.
const CookieName = "auth_token"

// Write sets the session cookie on the response. The cookie is HttpOnly so
// scripts cannot read the token; Secure is enabled in production-like
// environments only, so local HTTP development keeps working.
func Write(c echo.Context, token string, ttl time.Duration, secure bool) {
	c.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		Expires:  time.Now().Add(ttl),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Clear overwrites the session cookie with an already-expired tombstone.
// The token is not revoked server-side; an extracted copy stays valid until
// its own expiry.
func Clear(c echo.Context, secure bool) {
	c.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Read extracts the token from the request cookie. The second return reports
// whether a non-empty cookie was present.
func Read(c echo.Context) (string, bool) {
	cookie, err := c.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return "", false
	}

	return cookie.Value, true
}
