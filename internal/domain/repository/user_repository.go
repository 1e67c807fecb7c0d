package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when no registry
// record matches a lookup.
var ErrUserNotFound = errors.New("user not found")

// UserRepository persists the customer registry. Records are created at
// signup and never updated or deleted.
type UserRepository interface {
	// List reads the full registry in insertion order. Absent or malformed
	// stored data yields an empty registry.
	List(ctx context.Context) ([]entity.User, error)

	// FindByEmail retrieves the record whose lowercased email matches, or
	// ErrUserNotFound.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Append adds a new record to the registry. Email uniqueness is the
	// caller's responsibility; the registry itself enforces nothing.
	Append(ctx context.Context, user entity.User) error
}
