// Package config loads the catalog-builder configuration.
//
// Values come from the process environment, optionally seeded from a .env file.
// Every setting has a default declared in the owning package's Config struct tag,
// and nested keys map to upper-case environment variables joined by underscores
// (design.file_key is read from DESIGN_FILE_KEY).
//
// # Sections
//
//   - Server: port, API key, limits
//   - Storage: MinIO/S3 credentials and bucket
//   - Log: level and format
//   - Database: optional MySQL or SQLite connection
//   - Design: design service URL, token, file key and page scope
//   - Records: record source selection and column names
//   - Export: download concurrency, back-cover frame and upload settings
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := cfg.Validate(); err != nil {
//	    log.Fatal(err)
//	}
package config
