// Package export writes admin export files to a blob bucket.
package export

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	"gocloud.dev/blob/fileblob"
	"gocloud.dev/blob/memblob"

	"storefront/config"
	"storefront/internal/domain/service"
)

// SinkParams holds dependencies for the ExportSink, injected by Fx.
type SinkParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

type blobSink struct {
	bucket *blob.Bucket
}

// NewExportSink opens the configured export directory as a blob bucket.
// Without configuration exports go to an in-memory bucket, which keeps
// the endpoint working but discards files on shutdown.
func NewExportSink(params SinkParams) (service.ExportSink, error) {
	var (
		bucket *blob.Bucket
		err    error
	)

	if params.Config.Export != nil && params.Config.Export.Path != "" {
		params.Logger.Info("Writing exports to directory", slog.String("path", params.Config.Export.Path))
		bucket, err = fileblob.OpenBucket(params.Config.Export.Path, &fileblob.Options{CreateDir: true})
		if err != nil {
			return nil, errors.Wrap(err, "open export bucket")
		}
	} else {
		params.Logger.Warn("No export path configured; exports will not be persisted")
		bucket = memblob.OpenBucket(nil)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return errors.WithStack(bucket.Close())
		},
	})

	return &blobSink{bucket: bucket}, nil
}

// NewBlobSink wraps an existing bucket, mainly for tests.
func NewBlobSink(bucket *blob.Bucket) service.ExportSink {
	return &blobSink{bucket: bucket}
}

func (s *blobSink) Write(ctx context.Context, filename, content string) error {
	opts := &blob.WriterOptions{ContentType: "text/plain; charset=utf-8"}

	return errors.Wrapf(s.bucket.WriteAll(ctx, filename, []byte(content), opts), "write export %s", filename)
}
