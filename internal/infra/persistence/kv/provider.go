package kv

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	"storefront/config"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/repository"
)

// StoreParams holds dependencies for the KeyValueStore, injected by Fx.
type StoreParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewStore creates the KeyValueStore selected by configuration.
func NewStore(params StoreParams) (repository.KeyValueStore, error) {
	cfg := params.Config.Store
	logger := params.Logger

	if cfg == nil || cfg.Driver == "" || cfg.Driver == constants.StoreDriverMemory {
		logger.Info("Using in-memory store; state will not survive a restart")

		return NewMemoryStore(), nil
	}

	switch cfg.Driver {
	case constants.StoreDriverFile:
		if cfg.Path == "" {
			return nil, errors.New("store path is required for file driver")
		}
		logger.Info("Using file-backed store", slog.String("path", cfg.Path))

		store, bucket, err := NewFileStore(cfg.Path)
		if err != nil {
			return nil, err
		}

		params.Lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				logger.Info("Closing file store")

				return errors.WithStack(bucket.Close())
			},
		})

		return store, nil

	case constants.StoreDriverPostgres:
		if cfg.DSN == "" {
			return nil, errors.New("store dsn is required for postgres driver")
		}
		logger.Info("Using postgres-backed store")

		return NewPostgresStore(cfg.DSN, logger, params.Config.Env.Debug)

	default:
		return nil, errors.Errorf("unknown store driver: %s", cfg.Driver)
	}
}
