package checks

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"

	"catalog-builder/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// RequiredFolders returns the folders the bucket must hold: the export prefix and,
// when the records are read from an object, the folder of that object.
func RequiredFolders(exportPrefix, recordObject string) []string {
	var folders []string
	add := func(folder string) {
		folder = strings.Trim(folder, "/")
		if folder == "" || folder == "." {
			return
		}
		for _, f := range folders {
			if f == folder {
				return
			}
		}
		folders = append(folders, folder)
	}

	add(exportPrefix)
	if recordObject != "" {
		add(path.Dir(recordObject))
	}
	return folders
}

// CheckStructure returns the folders missing from the bucket.
// A missing bucket is reported as ErrBucketMissing.
func CheckStructure(ctx context.Context, client storage.Client, bucket string, folders []string) ([]string, error) {
	if err := checkBucket(ctx, client, bucket); err != nil {
		return nil, err
	}

	var missing []string
	for _, folder := range folders {
		folderPath := folder
		if !strings.HasSuffix(folderPath, "/") {
			folderPath += "/"
		}

		opts := minio.ListObjectsOptions{
			Prefix:    folderPath,
			Recursive: false,
			MaxKeys:   1,
		}

		found := false
		for obj := range client.ListObjects(ctx, bucket, opts) {
			found = obj.Err == nil
			break
		}

		if !found {
			missing = append(missing, folder)
		}
	}

	return missing, nil
}

// FixStructure creates the bucket when needed and a placeholder object for each missing folder.
func FixStructure(ctx context.Context, client storage.Client, bucket string, logger *zap.Logger, missing []string) error {
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			logger.Error("Failed to create bucket", zap.String("bucket", bucket), zap.Error(err))
			return err
		}
		logger.Info("Created missing bucket", zap.String("bucket", bucket))
	}

	for _, folder := range missing {
		folderPath := folder
		if !strings.HasSuffix(folderPath, "/") {
			folderPath += "/"
		}

		_, err := client.PutObject(ctx, bucket, folderPath, bytes.NewReader([]byte{}), 0, minio.PutObjectOptions{})
		if err != nil {
			logger.Error("Failed to create folder", zap.String("folder", folder), zap.Error(err))
			return err
		}
		logger.Info("Created missing folder", zap.String("folder", folder))
	}
	return nil
}
