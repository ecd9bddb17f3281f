package export

import (
	"context"
	"errors"

	"catalog-builder/core/upstream"

	"go.uber.org/zap"
)

// ErrEmptyExport is returned when the assembled order holds no frames.
var ErrEmptyExport = errors.New("export has no frames")

// Exporter fetches and merges pages for an ordered list of frame ids.
type Exporter struct {
	renderer    PageRenderer
	downloader  Downloader
	merger      Merger
	concurrency int
	logger      *zap.Logger
}

// NewExporter creates an exporter.
func NewExporter(renderer PageRenderer, downloader Downloader, merger Merger, concurrency int, logger *zap.Logger) *Exporter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Exporter{
		renderer:    renderer,
		downloader:  downloader,
		merger:      merger,
		concurrency: concurrency,
		logger:      logger,
	}
}

// Export returns the merged PDF for ids. Pages appear in the order of ids.
func (e *Exporter) Export(ctx context.Context, ids []string) ([]byte, error) {
	if len(ids) == 0 {
		return nil, ErrEmptyExport
	}

	pages, err := FetchPages(ctx, e.renderer, e.downloader, ids, e.concurrency)
	if err != nil {
		e.logger.Error("Failed to fetch pages", zap.Int("count", len(ids)), zap.Error(err))
		return nil, err
	}

	merged, err := e.merger.Merge(pages)
	if err != nil {
		return nil, upstream.Wrap(upstream.SourceMerge, "merge pages", err)
	}

	e.logger.Info("Export merged", zap.Int("pages", len(pages)), zap.Int("bytes", len(merged)))
	return merged, nil
}
