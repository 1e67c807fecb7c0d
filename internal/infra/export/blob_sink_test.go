package export

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func TestBlobSink_Write(t *testing.T) {
	ctx := context.Background()
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	sink := NewBlobSink(bucket)
	require.NoError(t, sink.Write(ctx, "users_export.txt", "Name: Maya | Email: maya@example.com\n"))

	data, err := bucket.ReadAll(ctx, "users_export.txt")
	require.NoError(t, err)
	assert.Equal(t, "Name: Maya | Email: maya@example.com\n", string(data))

	attrs, err := bucket.Attributes(ctx, "users_export.txt")
	require.NoError(t, err)
	assert.Equal(t, "text/plain; charset=utf-8", attrs.ContentType)
}
