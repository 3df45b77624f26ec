package minio

import (
	"context"
	"testing"

	"github.com/hupe1980/rgbkmeans/blobstore"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_Key(t *testing.T) {
	s := NewStore(nil, "bucket", "prod/")
	assert.Equal(t, "prod/sunset.rgbp", s.key("sunset.rgbp"))

	s = NewStore(nil, "bucket", "")
	assert.Equal(t, "sunset.rgbp", s.key("sunset.rgbp"))
}

// TestMinioStore_Integration requires a running MinIO instance.
// Skip if not available.
func TestMinioStore_Integration(t *testing.T) {
	endpoint := "localhost:9000"
	accessKey := "minioadmin"
	secretKey := "minioadmin"
	bucket := "test-rgbkmeans"

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: false,
	})
	if err != nil {
		t.Skipf("MinIO client creation failed: %v", err)
	}

	ctx := context.Background()

	// Check if MinIO is reachable
	if _, err := client.ListBuckets(ctx); err != nil {
		t.Skipf("MinIO not available: %v", err)
	}

	exists, err := client.BucketExists(ctx, bucket)
	require.NoError(t, err)
	if !exists {
		require.NoError(t, client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}))
	}

	store := NewStore(client, bucket, "test-prefix/")

	data := []byte("hello minio palette")
	require.NoError(t, store.Put(ctx, "test.rgbp", data))

	got, err := blobstore.ReadAll(ctx, store, "test.rgbp")
	require.NoError(t, err)
	assert.Equal(t, data, got)

	names, err := store.List(ctx, "")
	require.NoError(t, err)
	assert.Contains(t, names, "test.rgbp")

	require.NoError(t, store.Delete(ctx, "test.rgbp"))

	_, err = store.Open(ctx, "test.rgbp")
	assert.ErrorIs(t, err, blobstore.ErrNotFound)
}
