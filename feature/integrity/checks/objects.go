package checks

import (
	"context"
	"errors"
	"fmt"

	"catalog-builder/core/storage"

	"github.com/minio/minio-go/v7"
)

// ErrBucketMissing is returned when the configured bucket does not exist.
var ErrBucketMissing = errors.New("bucket does not exist")

// CheckObjects returns the keys in objects that are absent from the bucket.
func CheckObjects(ctx context.Context, client storage.Client, bucket string, objects []string) ([]string, error) {
	if err := checkBucket(ctx, client, bucket); err != nil {
		return nil, err
	}

	var missing []string
	for _, key := range objects {
		opts := minio.ListObjectsOptions{
			Prefix:    key,
			Recursive: false,
			MaxKeys:   1,
		}

		found := false
		for obj := range client.ListObjects(ctx, bucket, opts) {
			if obj.Err == nil && obj.Key == key {
				found = true
			}
			break
		}

		if !found {
			missing = append(missing, key)
		}
	}

	return missing, nil
}

func checkBucket(ctx context.Context, client storage.Client, bucket string) error {
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: %s", ErrBucketMissing, bucket)
	}
	return nil
}
