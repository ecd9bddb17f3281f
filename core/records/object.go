package records

import (
	"context"

	"catalog-builder/core/reconcile"
	"catalog-builder/core/storage"
	"catalog-builder/core/upstream"

	"github.com/minio/minio-go/v7"
)

// ObjectSource reads records from a CSV object in the storage bucket.
type ObjectSource struct {
	client    storage.Client
	bucket    string
	object    string
	keyColumn string
}

// NewObjectSource creates a source for bucket/object.
func NewObjectSource(client storage.Client, bucket, object, keyColumn string) *ObjectSource {
	return &ObjectSource{client: client, bucket: bucket, object: object, keyColumn: keyColumn}
}

// Name returns the source name.
func (s *ObjectSource) Name() string {
	return SourceObject
}

// Fetch downloads and parses the CSV object.
func (s *ObjectSource) Fetch(ctx context.Context) (*reconcile.RecordSet, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, s.object, minio.GetObjectOptions{})
	if err != nil {
		return nil, upstream.Wrap(upstream.SourceRecords, "get object "+s.object, err)
	}
	defer obj.Close()

	set, err := ParseCSV(obj, s.keyColumn)
	if err != nil {
		return nil, upstream.Wrap(upstream.SourceRecords, "parse object "+s.object, err)
	}
	return set, nil
}
