// Package records loads the product rows the catalog is reconciled against.
//
// Rows come from one of three sources, selected by configuration:
//
//   - http: a published spreadsheet exported as CSV, fetched over HTTP.
//   - object: a CSV object in the storage bucket.
//   - database: a table in the connected database.
//
// Every source returns a reconcile.RecordSet whose order is the row order of the source.
// Record names are trimmed on ingestion; rows without a name are skipped.
//
// # CSV Layout
//
// The first row is the header. Each header cell (trimmed) is a field key. The key column
// (default "name") provides the record name. A row shorter than the header leaves the
// trailing fields undefined, so the matching text layers are not patched.
//
// # Usage
//
//	src, err := records.New(cfg.Records, storageClient, cfg.Storage.Bucket, db)
//	set, err := src.Fetch(ctx)
package records
