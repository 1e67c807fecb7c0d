package kv

import (
	"context"
	"strings"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
)

type userRepository struct {
	store repository.KeyValueStore
}

// NewUserRepository creates a user repository backed by the key-value store.
func NewUserRepository(store repository.KeyValueStore) repository.UserRepository {
	return &userRepository{store: store}
}

func (repo *userRepository) List(ctx context.Context) ([]entity.User, error) {
	users, err := readJSON[[]entity.User](ctx, repo.store, repository.KeyUsers)
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []entity.User{}
	}

	return users, nil
}

// FindByEmail matches case-insensitively; emails are stored lowercased
// but older payloads may predate that rule.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	users, err := repo.List(ctx)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(strings.TrimSpace(email))
	for i := range users {
		if strings.ToLower(users[i].Email) == needle {
			return &users[i], nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (repo *userRepository) Append(ctx context.Context, user entity.User) error {
	users, err := repo.List(ctx)
	if err != nil {
		return err
	}

	users = append(users, user)

	return writeJSON(ctx, repo.store, repository.KeyUsers, users)
}
