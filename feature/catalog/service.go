package catalog

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path"
	"strings"
	"time"

	"catalog-builder/core/design"
	"catalog-builder/core/export"
	"catalog-builder/core/reconcile"
	"catalog-builder/core/records"
	"catalog-builder/core/storage"
	"catalog-builder/core/upstream"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ErrInvalidRequest marks errors caused by the caller's input.
var ErrInvalidRequest = errors.New("invalid request")

// DocumentSource loads the design document.
type DocumentSource interface {
	FetchDocument(ctx context.Context) (*design.Document, error)
}

// Exporter renders and merges frames into one PDF.
type Exporter interface {
	Export(ctx context.Context, ids []string) ([]byte, error)
}

// Options groups the collaborators of a Service.
type Options struct {
	Documents  DocumentSource
	Records    records.Source
	Reconciler *reconcile.Reconciler
	Exporter   Exporter
	// Storage and Bucket are only used for uploads.
	Storage storage.Client
	Bucket  string
	// Page is the default page scope.
	Page   string
	Export export.Config
	Logger *zap.Logger
}

// Service builds catalog reports and exports.
type Service struct {
	documents  DocumentSource
	records    records.Source
	reconciler *reconcile.Reconciler
	exporter   Exporter
	client     storage.Client
	bucket     string
	page       string
	cfg        export.Config
	logger     *zap.Logger
}

// NewService creates a new catalog service.
func NewService(opts Options) *Service {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	reconciler := opts.Reconciler
	if reconciler == nil {
		reconciler = reconcile.NewReconciler(reconcile.DefaultFieldMapping(), logger)
	}
	return &Service{
		documents:  opts.Documents,
		records:    opts.Records,
		reconciler: reconciler,
		exporter:   opts.Exporter,
		client:     opts.Storage,
		bucket:     opts.Bucket,
		page:       opts.Page,
		cfg:        opts.Export,
		logger:     logger,
	}
}

// Report reconciles the records against the frames of page, or of the configured
// page when page is empty.
func (s *Service) Report(ctx context.Context, page string) (reconcile.Report, error) {
	doc, set, err := s.load(ctx)
	if err != nil {
		return reconcile.Report{}, err
	}

	scope := s.scope(page)
	report := s.reconciler.Report(doc.Root, set, scope)
	s.logger.Info("Catalog report built",
		zap.String("page", scope),
		zap.Int("frames", report.TotalFrames),
		zap.Int("matched", report.MatchedCount),
		zap.Int("patches", len(report.Patches)),
		zap.Int("diagnostics", len(report.Diagnostics)),
	)
	return report, nil
}

// Frames lists the frames of page and whether a record matches each one.
func (s *Service) Frames(ctx context.Context, page string) (FramesResponse, error) {
	doc, set, err := s.load(ctx)
	if err != nil {
		return FramesResponse{}, err
	}

	scope := s.scope(page)
	frames, scoped := design.ExtractFrames(doc.Root, scope)

	resp := FramesResponse{
		Frames:      make([]FrameSummary, 0, len(frames)),
		Diagnostics: []reconcile.Diagnostic{},
	}
	if scope != "" && !scoped {
		resp.Diagnostics = append(resp.Diagnostics, reconcile.Diagnostic{
			Kind:    reconcile.DiagnosticMissingScope,
			Subject: scope,
			Message: fmt.Sprintf("page %q not found, scanning the whole document", scope),
		})
	}
	for _, f := range frames {
		_, matched := set.Get(strings.TrimSpace(f.Name))
		resp.Frames = append(resp.Frames, FrameSummary{ID: f.ID, Name: f.Name, Matched: matched})
	}
	return resp, nil
}

// Order returns the export page order for req without rendering anything.
func (s *Service) Order(ctx context.Context, req OrderRequest) (reconcile.Assembly, error) {
	if err := validateIDs(req.IDs); err != nil {
		return reconcile.Assembly{}, err
	}

	doc, err := s.fetchDocument(ctx)
	if err != nil {
		return reconcile.Assembly{}, err
	}

	frames, _ := design.ExtractFrames(doc.Root, "")
	assembler := reconcile.NewAssembler(s.specialFrames(req.Back), s.logger)
	return assembler.Assemble(req.IDs, frames), nil
}

// Export assembles the page order for req and merges the rendered pages.
// Uploaded exports are written under the configured prefix and returned as a presigned URL.
func (s *Service) Export(ctx context.Context, req ExportRequest) (*ExportResult, error) {
	if s.exporter == nil {
		return nil, fmt.Errorf("export is not configured")
	}

	assembly, err := s.Order(ctx, req.OrderRequest)
	if err != nil {
		return nil, err
	}
	if len(assembly.IDs) == 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRequest, export.ErrEmptyExport)
	}

	data, err := s.exporter.Export(ctx, assembly.IDs)
	if err != nil {
		return nil, err
	}

	result := &ExportResult{Assembly: assembly, Size: len(data)}

	upload := s.cfg.Upload
	if req.Upload != nil {
		upload = *req.Upload
	}
	if !upload {
		result.PDF = data
		return result, nil
	}

	key, url, err := s.upload(ctx, data)
	if err != nil {
		return nil, err
	}
	result.Key = key
	result.URL = url
	return result, nil
}

func (s *Service) upload(ctx context.Context, data []byte) (string, string, error) {
	if s.client == nil {
		return "", "", fmt.Errorf("upload requested but storage is not configured")
	}

	key := path.Join(s.cfg.Prefix, uuid.NewString()+".pdf")
	_, err := s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: "application/pdf",
	})
	if err != nil {
		return "", "", upstream.Wrap(upstream.SourceStorage, "upload "+key, err)
	}

	minutes := s.cfg.PresignMinutes
	if minutes <= 0 {
		minutes = 60
	}
	u, err := s.client.PresignedGetObject(ctx, s.bucket, key, time.Duration(minutes)*time.Minute, nil)
	if err != nil {
		return "", "", upstream.Wrap(upstream.SourceStorage, "presign "+key, err)
	}

	s.logger.Info("Export uploaded", zap.String("key", key), zap.Int("bytes", len(data)))
	return key, u.String(), nil
}

// load fetches the document and the records concurrently.
func (s *Service) load(ctx context.Context) (*design.Document, *reconcile.RecordSet, error) {
	var (
		doc *design.Document
		set *reconcile.RecordSet
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		doc, err = s.fetchDocument(gctx)
		return err
	})
	g.Go(func() error {
		if s.records == nil {
			return upstream.Wrap(upstream.SourceRecords, "fetch records", fmt.Errorf("record source is not configured"))
		}
		var err error
		set, err = s.records.Fetch(gctx)
		if err != nil && !upstream.Is(err) {
			err = upstream.Wrap(upstream.SourceRecords, "fetch "+s.records.Name(), err)
		}
		return err
	})
	if err := g.Wait(); err != nil {
		s.logger.Error("Failed to load catalog sources", zap.Error(err))
		return nil, nil, err
	}
	return doc, set, nil
}

func (s *Service) fetchDocument(ctx context.Context) (*design.Document, error) {
	if s.documents == nil {
		return nil, upstream.Wrap(upstream.SourceDesign, "fetch document", fmt.Errorf("design source is not configured"))
	}
	doc, err := s.documents.FetchDocument(ctx)
	if err != nil {
		if !upstream.Is(err) {
			err = upstream.Wrap(upstream.SourceDesign, "fetch document", err)
		}
		return nil, err
	}
	return doc, nil
}

func (s *Service) scope(page string) string {
	if page == "" {
		return s.page
	}
	return page
}

func (s *Service) specialFrames(back string) reconcile.SpecialFrames {
	if strings.TrimSpace(back) == "" {
		back = s.cfg.BackFrame
	}
	return reconcile.SpecialFrames{
		Cover: export.CoverFrameName,
		TOC:   export.TOCFrameName,
		Back:  back,
	}
}

func validateIDs(ids []string) error {
	for i, id := range ids {
		if strings.TrimSpace(id) == "" {
			return fmt.Errorf("%w: ids[%d] is empty", ErrInvalidRequest, i)
		}
	}
	return nil
}
