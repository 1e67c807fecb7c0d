package repository

import (
	"context"

	"storefront/internal/domain/entity"
)

// SessionRepository persists the single current session. There is at most
// one; setting a new session replaces the previous one.
type SessionRepository interface {
	// Current returns the active session, or nil when anonymous. Malformed
	// stored data reads as anonymous.
	Current(ctx context.Context) (*entity.Session, error)

	// Set replaces the active session.
	Set(ctx context.Context, session *entity.Session) error

	// Clear removes the active session. Clearing while anonymous is a no-op.
	Clear(ctx context.Context) error
}
