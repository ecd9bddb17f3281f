package catalog

import "catalog-builder/core/reconcile"

// FrameSummary describes one extracted frame.
type FrameSummary struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Matched bool   `json:"matched"`
}

// FramesResponse lists the frames of the scanned page.
type FramesResponse struct {
	Frames      []FrameSummary         `json:"frames"`
	Diagnostics []reconcile.Diagnostic `json:"diagnostics"`
}

// OrderRequest asks for the page order of an export.
type OrderRequest struct {
	// IDs are the requested product frame ids, in catalog order.
	IDs []string `json:"ids"`
	// Back overrides the configured back-cover frame name.
	Back string `json:"back,omitempty"`
}

// ExportRequest asks for a merged catalog PDF.
type ExportRequest struct {
	OrderRequest
	// Upload stores the PDF in the bucket. Nil uses the configured default.
	Upload *bool `json:"upload,omitempty"`
}

// ExportResult is the outcome of an export.
type ExportResult struct {
	Assembly reconcile.Assembly `json:"assembly"`
	// PDF holds the merged document when it was not uploaded.
	PDF []byte `json:"-"`
	// Key is the object key of an uploaded export.
	Key string `json:"key,omitempty"`
	// URL is a presigned download link for an uploaded export.
	URL string `json:"url,omitempty"`
	// Size is the merged document size in bytes.
	Size int `json:"size"`
}
