package kv

import (
	"context"

	"github.com/pkg/errors"
	"gocloud.dev/blob"
	"gocloud.dev/blob/fileblob"
	"gocloud.dev/gcerrors"

	"storefront/internal/domain/repository"
)

// blobStore persists each key as one object in a gocloud blob bucket. With
// the fileblob driver this gives a durable local directory of JSON files,
// the service-side analog of browser local storage.
type blobStore struct {
	bucket *blob.Bucket
}

// NewFileStore opens a fileblob bucket rooted at dir and returns a store
// backed by it. The caller owns closing the returned bucket.
func NewFileStore(dir string) (repository.KeyValueStore, *blob.Bucket, error) {
	bucket, err := fileblob.OpenBucket(dir, &fileblob.Options{CreateDir: true})
	if err != nil {
		return nil, nil, errors.Wrapf(err, "failed to open file store at %s", dir)
	}

	return &blobStore{bucket: bucket}, bucket, nil
}

// NewBlobStore wraps an already-open bucket, mainly for tests with memblob.
func NewBlobStore(bucket *blob.Bucket) repository.KeyValueStore {
	return &blobStore{bucket: bucket}
}

func (s *blobStore) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := s.bucket.ReadAll(ctx, key)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, repository.ErrKeyNotFound
		}

		return nil, errors.Wrapf(err, "failed to read key %s", key)
	}

	return value, nil
}

func (s *blobStore) Set(ctx context.Context, key string, value []byte) error {
	opts := &blob.WriterOptions{ContentType: "application/json"}
	if err := s.bucket.WriteAll(ctx, key, value, opts); err != nil {
		return errors.Wrapf(err, "failed to write key %s", key)
	}

	return nil
}

func (s *blobStore) Remove(ctx context.Context, key string) error {
	if err := s.bucket.Delete(ctx, key); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil
		}

		return errors.Wrapf(err, "failed to remove key %s", key)
	}

	return nil
}
