package records

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"catalog-builder/core/reconcile"
	"catalog-builder/core/upstream"
)

// HTTPSource reads records from a CSV document served over HTTP.
type HTTPSource struct {
	client    *http.Client
	url       string
	keyColumn string
}

// NewHTTPSource creates a source for the CSV at url.
func NewHTTPSource(url, keyColumn string, timeoutSeconds int) *HTTPSource {
	if timeoutSeconds <= 0 {
		timeoutSeconds = 30
	}
	return &HTTPSource{
		client:    &http.Client{Timeout: time.Duration(timeoutSeconds) * time.Second},
		url:       url,
		keyColumn: keyColumn,
	}
}

// Name returns the source name.
func (s *HTTPSource) Name() string {
	return SourceHTTP
}

// Fetch downloads and parses the CSV.
func (s *HTTPSource) Fetch(ctx context.Context) (*reconcile.RecordSet, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, upstream.Wrap(upstream.SourceRecords, "fetch csv", err)
	}
	req.Header.Set("Accept", "text/csv")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, upstream.Wrap(upstream.SourceRecords, "fetch csv", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, upstream.Wrap(upstream.SourceRecords, "fetch csv", fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	set, err := ParseCSV(resp.Body, s.keyColumn)
	if err != nil {
		return nil, upstream.Wrap(upstream.SourceRecords, "parse csv", err)
	}
	return set, nil
}
