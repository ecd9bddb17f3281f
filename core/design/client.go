package design

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"catalog-builder/core/upstream"
)

// maxErrorBody bounds how much of an error response is copied into the error message.
const maxErrorBody = 512

// Client talks to the design service REST API.
type Client struct {
	http    *http.Client
	baseURL string
	token   string
	fileKey string
}

// NewClient creates a client from the configuration.
func NewClient(cfg Config) *Client {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 60
	}
	return &Client{
		http:    &http.Client{Timeout: time.Duration(timeout) * time.Second},
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		token:   cfg.Token,
		fileKey: cfg.FileKey,
	}
}

// FileKey returns the design file this client reads.
func (c *Client) FileKey() string {
	return c.fileKey
}

// FetchDocument downloads and decodes the design file.
func (c *Client) FetchDocument(ctx context.Context) (*Document, error) {
	if c.fileKey == "" {
		return nil, upstream.Wrap(upstream.SourceDesign, "fetch document", fmt.Errorf("file key is not configured"))
	}

	resp, err := c.get(ctx, "/v1/files/"+url.PathEscape(c.fileKey), nil)
	if err != nil {
		return nil, upstream.Wrap(upstream.SourceDesign, "fetch document", err)
	}
	defer resp.Body.Close()

	doc, err := Decode(resp.Body)
	if err != nil {
		return nil, upstream.Wrap(upstream.SourceDesign, "fetch document", err)
	}
	return doc, nil
}

// imagesResponse mirrors GET /v1/images/:key.
type imagesResponse struct {
	Err    *string            `json:"err"`
	Images map[string]*string `json:"images"`
}

// RenderPages asks the service to render the given node ids as PDF and returns the
// download URL of each rendered id. Ids the service could not render are absent.
func (c *Client) RenderPages(ctx context.Context, ids []string) (map[string]string, error) {
	urls := make(map[string]string, len(ids))
	if len(ids) == 0 {
		return urls, nil
	}

	query := url.Values{}
	query.Set("ids", strings.Join(ids, ","))
	query.Set("format", "pdf")

	resp, err := c.get(ctx, "/v1/images/"+url.PathEscape(c.fileKey), query)
	if err != nil {
		return nil, upstream.Wrap(upstream.SourceDesign, "render pages", err)
	}
	defer resp.Body.Close()

	var body imagesResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, upstream.Wrap(upstream.SourceDesign, "render pages", fmt.Errorf("failed to decode response: %w", err))
	}
	if body.Err != nil && *body.Err != "" {
		return nil, upstream.Wrap(upstream.SourceDesign, "render pages", fmt.Errorf("%s", *body.Err))
	}

	for id, u := range body.Images {
		if u != nil && *u != "" {
			urls[id] = *u
		}
	}
	return urls, nil
}

// get performs an authenticated GET and returns the response when the status is 2xx.
func (c *Client) get(ctx context.Context, path string, query url.Values) (*http.Response, error) {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("X-Figma-Token", c.token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		defer resp.Body.Close()
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(snippet)))
	}
	return resp, nil
}
