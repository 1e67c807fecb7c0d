package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// RegisterInput defines the data required to register a new customer.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// LoginInput defines the data required to log in.
type LoginInput struct {
	Email    string
	Password string
}

// AuthOutput returns the established session and its access token.
type AuthOutput struct {
	Session     *entity.Session `json:"session"`
	AccessToken string          `json:"accessToken"`
}

// AuthUsecase defines the interface for authentication operations.
type AuthUsecase interface {
	Register(ctx context.Context, input RegisterInput) (*AuthOutput, error)
	Login(ctx context.Context, input LoginInput) (*AuthOutput, error)
	Logout(ctx context.Context) error
	// CurrentUser returns the active session, or nil when anonymous.
	CurrentUser(ctx context.Context) (*entity.Session, error)
}
