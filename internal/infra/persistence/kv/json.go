package kv

import (
	"context"
	"encoding/json"

	"github.com/pkg/errors"

	"storefront/internal/domain/repository"
)

// readJSON loads key from the store and decodes it into a fresh T.
// A missing key or undecodable payload yields the zero value, matching
// the contract that corrupted state resets rather than wedges the app.
func readJSON[T any](ctx context.Context, store repository.KeyValueStore, key string) (T, error) {
	var out T

	raw, err := store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, repository.ErrKeyNotFound) {
			return out, nil
		}

		return out, errors.Wrapf(err, "read %s", key)
	}

	if err := json.Unmarshal(raw, &out); err != nil {
		var zero T

		return zero, nil
	}

	return out, nil
}

func writeJSON(ctx context.Context, store repository.KeyValueStore, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return errors.Wrapf(err, "encode %s", key)
	}

	return errors.Wrapf(store.Set(ctx, key, raw), "write %s", key)
}
