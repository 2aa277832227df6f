package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrTokenInvalid is returned when a token's signature or structure does not verify.
var ErrTokenInvalid = errors.New("token invalid")

// ErrTokenExpired is returned when a correctly signed token is past its expiry.
var ErrTokenExpired = errors.New("token expired")

// TokenService defines the interface for issuing and verifying signed,
// time-bounded identity tokens. Tokens are stateless: possession of a valid,
// unexpired token is the sole proof of identity.
type TokenService interface {
	// Issue creates a signed token embedding the account id, issued-at and expiry.
	Issue(accountID uuid.UUID) (string, error)

	// Verify checks signature and expiry and returns the embedded account id.
	// It fails with ErrTokenInvalid or ErrTokenExpired.
	Verify(tokenString string) (uuid.UUID, error)

	// TokenTTL returns the configured token lifetime. The session cookie
	// max-age mirrors it.
	TokenTTL() time.Duration
}
