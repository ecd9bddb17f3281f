// Package middleware groups the HTTP middleware of the catalog-builder server.
//
// # Components
//
//   - auth: API key validation through the X-API-Key header.
//   - rayid: assigns every request a ray id, stored in the Fiber locals and echoed
//     in the X-Ray-ID response header so logs can be correlated.
//
// rayid must be registered first so that every later log line carries the id.
package middleware
