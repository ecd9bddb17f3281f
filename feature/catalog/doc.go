// Package catalog exposes the reconciliation report and the catalog export.
//
// Every request fetches the design document and the product records from scratch,
// concurrently, then runs the reconciler. Nothing is cached between requests.
//
// # HTTP Endpoints
//
//   - GET /catalog/report?page= : text patches and matched frames in record order.
//   - GET /catalog/frames?page= : extracted frames with their match status.
//   - POST /catalog/order : export page order only.
//   - POST /catalog/export : merged PDF, or an upload link with ?upload=true.
//
// Collaborator failures answer 502, malformed requests 400. Frames that match no
// record and missing special frames are returned as diagnostics with a 200.
package catalog
