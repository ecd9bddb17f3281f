package integrity

import (
	"context"
	"fmt"

	"catalog-builder/core/records"
	"catalog-builder/core/reconcile"
	"catalog-builder/core/storage"
	"catalog-builder/feature/integrity/checks"

	"go.uber.org/zap"
)

// Options groups the collaborators checked by the Service.
type Options struct {
	Storage storage.Client
	Bucket  string
	// Folders are the folders the bucket must hold.
	Folders []string
	// Objects are the object keys the bucket must hold.
	Objects []string
	Records records.Source
	Design  checks.DocumentSource
	// Page is the configured page scope.
	Page   string
	Frames reconcile.SpecialFrames
	Logger *zap.Logger
}

// Service handles integrity checks.
type Service struct {
	client  storage.Client
	bucket  string
	folders []string
	objects []string
	records records.Source
	design  checks.DocumentSource
	page    string
	frames  reconcile.SpecialFrames
	logger  *zap.Logger
}

// NewService creates a new integrity service.
func NewService(opts Options) *Service {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		client:  opts.Storage,
		bucket:  opts.Bucket,
		folders: opts.Folders,
		objects: opts.Objects,
		records: opts.Records,
		design:  opts.Design,
		page:    opts.Page,
		frames:  opts.Frames,
		logger:  logger,
	}
}

// Folders returns the folders the bucket must hold.
func (s *Service) Folders() []string {
	return append([]string(nil), s.folders...)
}

// CheckStructure returns a list of missing folders.
func (s *Service) CheckStructure(ctx context.Context) ([]string, error) {
	if s.client == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	return checks.CheckStructure(ctx, s.client, s.bucket, s.folders)
}

// FixStructure creates the bucket and the missing folders.
func (s *Service) FixStructure(ctx context.Context, missing []string) error {
	if s.client == nil {
		return fmt.Errorf("storage is not configured")
	}
	return checks.FixStructure(ctx, s.client, s.bucket, s.logger, missing)
}

// CheckObjects returns the required objects missing from the bucket.
func (s *Service) CheckObjects(ctx context.Context) ([]string, error) {
	if len(s.objects) == 0 {
		return []string{}, nil
	}
	if s.client == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	return checks.CheckObjects(ctx, s.client, s.bucket, s.objects)
}

// CheckRecords verifies the record source.
func (s *Service) CheckRecords(ctx context.Context) (*checks.RecordsReport, error) {
	if s.records == nil {
		return nil, fmt.Errorf("record source is not configured")
	}
	return checks.CheckRecords(ctx, s.records), nil
}

// CheckDesign verifies the design document and its special frames.
func (s *Service) CheckDesign(ctx context.Context) (*checks.DesignReport, error) {
	if s.design == nil {
		return nil, fmt.Errorf("design source is not configured")
	}
	return checks.CheckDesign(ctx, s.design, s.page, s.frames)
}
