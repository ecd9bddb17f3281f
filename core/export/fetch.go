package export

import (
	"context"
	"fmt"

	"catalog-builder/core/upstream"

	"golang.org/x/sync/errgroup"
)

// PageRenderer resolves frame ids to downloadable PDF URLs.
type PageRenderer interface {
	RenderPages(ctx context.Context, ids []string) (map[string]string, error)
}

// Downloader fetches the bytes behind a URL.
type Downloader interface {
	Download(ctx context.Context, url string) ([]byte, error)
}

// Merger concatenates PDF documents in order.
type Merger interface {
	Merge(pages [][]byte) ([]byte, error)
}

// FetchPages renders ids and downloads every page with at most concurrency
// requests in flight. The result has one entry per id, in the order of ids.
func FetchPages(ctx context.Context, renderer PageRenderer, downloader Downloader, ids []string, concurrency int) ([][]byte, error) {
	pages := make([][]byte, len(ids))
	if len(ids) == 0 {
		return pages, nil
	}

	urls, err := renderer.RenderPages(ctx, ids)
	if err != nil {
		return nil, err
	}

	for _, id := range ids {
		if urls[id] == "" {
			return nil, upstream.Wrap(upstream.SourceDesign, "render pages", fmt.Errorf("no rendered url for frame %s", id))
		}
	}

	if concurrency <= 0 {
		concurrency = 1
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, id := range ids {
		g.Go(func() error {
			data, err := downloader.Download(gctx, urls[id])
			if err != nil {
				return upstream.Wrap(upstream.SourceDownload, "download frame "+id, err)
			}
			pages[i] = data
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return pages, nil
}
