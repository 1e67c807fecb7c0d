package kv

import (
	"context"
	"log/slog"
	"time"

	"github.com/pkg/errors"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"storefront/internal/domain/repository"
)

// storeEntry is the persistence model for one key of the flat store: the
// whole entity collection serialized as a single JSON value, keeping the
// key-value layout rather than normalizing into relational tables.
type storeEntry struct {
	Key       string `gorm:"primaryKey;size:128"`
	Value     []byte `gorm:"type:jsonb"`
	UpdatedAt time.Time
}

// TableName maps the model to its table.
func (storeEntry) TableName() string {
	return "store_entries"
}

// gormStore implements KeyValueStore on a single Postgres table via GORM.
type gormStore struct {
	db *gorm.DB
}

// NewPostgresStore connects to Postgres and migrates the store table.
func NewPostgresStore(dsn string, logger *slog.Logger, debug bool) (repository.KeyValueStore, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: newGormSlogLogger(logger, debug),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect postgres store")
	}

	if err := db.AutoMigrate(&storeEntry{}); err != nil {
		return nil, errors.Wrap(err, "failed to migrate store table")
	}

	return &gormStore{db: db}, nil
}

// NewGormStore wraps an existing GORM connection, mainly for tests.
func NewGormStore(db *gorm.DB) (repository.KeyValueStore, error) {
	if err := db.AutoMigrate(&storeEntry{}); err != nil {
		return nil, errors.Wrap(err, "failed to migrate store table")
	}

	return &gormStore{db: db}, nil
}

func (s *gormStore) Get(ctx context.Context, key string) ([]byte, error) {
	var entry storeEntry
	err := s.db.WithContext(ctx).Where("key = ?", key).First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrKeyNotFound
		}

		return nil, errors.Wrapf(err, "failed to read key %s", key)
	}

	return entry.Value, nil
}

func (s *gormStore) Set(ctx context.Context, key string, value []byte) error {
	entry := storeEntry{Key: key, Value: value}
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&entry).Error
	if err != nil {
		return errors.Wrapf(err, "failed to write key %s", key)
	}

	return nil
}

func (s *gormStore) Remove(ctx context.Context, key string) error {
	err := s.db.WithContext(ctx).Where("key = ?", key).Delete(&storeEntry{}).Error
	if err != nil {
		return errors.Wrapf(err, "failed to remove key %s", key)
	}

	return nil
}
