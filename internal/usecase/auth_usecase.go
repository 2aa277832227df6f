// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"booking/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
// Syntactic validation (email format, password length) happens at the
// delivery boundary before this layer is invoked.
type RegisterInput struct {
	Email    string
	Password string
}

// LoginInput defines the data required to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// AuthOutput returns the issued identity token after a successful
// registration or login, along with the account it identifies.
type AuthOutput struct {
	Token   string
	Account *entity.Account
}

// AuthUsecase defines the interface for authentication operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
//
// Logout is deliberately absent: it is a pure transport-level instruction
// (clearing the session cookie) with no server-side state to touch, so it
// lives entirely in the delivery layer.
type AuthUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)
}
