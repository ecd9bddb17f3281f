// Package integrity provides environment health checks.
//
// # Checks Provided
//
//   - Storage: the bucket exists and holds the export folder and, for the object
//     record source, the records folder and CSV object.
//   - Records: the record table has the key and order columns (database source)
//     and the records can be fetched.
//   - Design: the document is reachable, the configured page exists and the cover,
//     table of contents and back cover frames resolve.
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks.
//   - GET /integrity/storage : Runs the storage check (supports ?fix=true).
//   - GET /integrity/records : Runs the records check.
//   - GET /integrity/design : Runs the design check.
package integrity
