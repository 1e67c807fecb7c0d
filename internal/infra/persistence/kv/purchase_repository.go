package kv

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
)

type purchaseRepository struct {
	store repository.KeyValueStore
}

// NewPurchaseRepository creates a purchase ledger backed by the key-value store.
func NewPurchaseRepository(store repository.KeyValueStore) repository.PurchaseRepository {
	return &purchaseRepository{store: store}
}

func (repo *purchaseRepository) List(ctx context.Context) ([]entity.PurchaseRecord, error) {
	records, err := readJSON[[]entity.PurchaseRecord](ctx, repo.store, repository.KeyPurchases)
	if err != nil {
		return nil, err
	}
	if records == nil {
		records = []entity.PurchaseRecord{}
	}

	return records, nil
}

func (repo *purchaseRepository) Append(ctx context.Context, record entity.PurchaseRecord) error {
	records, err := repo.List(ctx)
	if err != nil {
		return err
	}

	records = append(records, record)

	return writeJSON(ctx, repo.store, repository.KeyPurchases, records)
}
