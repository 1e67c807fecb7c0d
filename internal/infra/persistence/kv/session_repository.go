package kv

import (
	"context"

	"github.com/pkg/errors"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
)

type sessionRepository struct {
	store repository.KeyValueStore
}

// NewSessionRepository creates a session repository backed by the key-value store.
func NewSessionRepository(store repository.KeyValueStore) repository.SessionRepository {
	return &sessionRepository{store: store}
}

// Current returns the active session, or nil when no one is signed in.
func (repo *sessionRepository) Current(ctx context.Context) (*entity.Session, error) {
	session, err := readJSON[*entity.Session](ctx, repo.store, repository.KeySession)
	if err != nil {
		return nil, err
	}
	if session != nil && session.Email == "" {
		return nil, nil
	}

	return session, nil
}

func (repo *sessionRepository) Set(ctx context.Context, session *entity.Session) error {
	if session == nil {
		return repo.Clear(ctx)
	}

	return writeJSON(ctx, repo.store, repository.KeySession, session)
}

func (repo *sessionRepository) Clear(ctx context.Context) error {
	return errors.Wrap(repo.store.Remove(ctx, repository.KeySession), "clear session")
}
