package s3

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/aliskhannn/upscaler/internal/storage/file"
)

// Storage uploads encoded images to an S3-compatible object store. It is
// selected when the output path is an s3://bucket/key URL.
type Storage struct {
	client *minio.Client
}

// NewStorage creates a new Storage connected to the specified endpoint. If
// bucket does not exist, it will be created automatically.
func NewStorage(ctx context.Context, endpoint, accessKey, secretKey, bucket string, useSSL bool) (*Storage, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize minio client: %w", err)
	}

	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check if bucket exists: %w", err)
	}

	if !exists {
		if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	return &Storage{client: client}, nil
}

// Save uploads data under the bucket and key named by the s3:// URL in path,
// replacing any existing object. The upload is awaited; any failure is
// returned before Save does.
func (s *Storage) Save(ctx context.Context, path string, data []byte) error {
	bucket, key, ok := SplitURL(path)
	if !ok {
		return fmt.Errorf("invalid object path %q: expected s3://bucket/key", path)
	}

	if len(data) == 0 {
		return fmt.Errorf("failed to save %s: %w", path, file.ErrEmptyBuffer)
	}

	_, err := s.client.PutObject(ctx, bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: "application/octet-stream",
	})
	if err != nil {
		return fmt.Errorf("failed to save object: %w", err)
	}

	return nil
}

// SplitURL splits an s3://bucket/key URL into its bucket and key. ok is
// false for any other kind of path.
func SplitURL(raw string) (bucket, key string, ok bool) {
	rest, found := strings.CutPrefix(raw, "s3://")
	if !found {
		return "", "", false
	}

	bucket, key, found = strings.Cut(rest, "/")
	if !found || bucket == "" || key == "" {
		return "", "", false
	}

	return bucket, key, true
}
