package kv

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
)

type cartRepository struct {
	store repository.KeyValueStore
}

// NewCartRepository creates a cart repository backed by the key-value store.
func NewCartRepository(store repository.KeyValueStore) repository.CartRepository {
	return &cartRepository{store: store}
}

func (repo *cartRepository) Load(ctx context.Context) (entity.Cart, error) {
	cart, err := readJSON[entity.Cart](ctx, repo.store, repository.KeyCart)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		cart = entity.Cart{}
	}

	return cart, nil
}

func (repo *cartRepository) Save(ctx context.Context, cart entity.Cart) error {
	if cart == nil {
		cart = entity.Cart{}
	}

	return writeJSON(ctx, repo.store, repository.KeyCart, cart)
}
