// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned by KeyValueStore.Get when no value has ever
// been written under the key. Callers layered on the store treat it the same
// as malformed data: the entity's empty default.
var ErrKeyNotFound = errors.New("key not found")

// Versioned store keys, one per persisted entity collection. The version
// suffix lets a future schema change land under a fresh key and migrate,
// instead of silently reinterpreting old payloads.
const (
	KeyCart      = "storefront_cart_v1"
	KeyUsers     = "storefront_users_v1"
	KeySession   = "storefront_session_v1"
	KeyPurchases = "storefront_purchases_v1"
)

// KeyValueStore is the sole durability mechanism of the storefront: a flat
// mapping of string keys to JSON-serialized values. Implementations must be
// safe for concurrent use.
type KeyValueStore interface {
	// Get retrieves the raw value stored under key, or ErrKeyNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set serializes nothing itself; it durably writes the given bytes,
	// replacing any previous value under key.
	Set(ctx context.Context, key string, value []byte) error

	// Remove deletes the value under key. Removing an absent key is not an
	// error.
	Remove(ctx context.Context, key string) error
}
