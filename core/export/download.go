package export

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// HTTPDownloader downloads rendered pages over HTTP.
type HTTPDownloader struct {
	client   *http.Client
	maxBytes int64
}

// NewHTTPDownloader creates a downloader. maxBytes <= 0 disables the size limit.
func NewHTTPDownloader(timeout time.Duration, maxBytes int64) *HTTPDownloader {
	return &HTTPDownloader{
		client:   &http.Client{Timeout: timeout},
		maxBytes: maxBytes,
	}
}

// Download returns the body of url.
func (d *HTTPDownloader) Download(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	if d.maxBytes <= 0 {
		return io.ReadAll(resp.Body)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, d.maxBytes+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > d.maxBytes {
		return nil, fmt.Errorf("page exceeds %d bytes", d.maxBytes)
	}
	return data, nil
}
