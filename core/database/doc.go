// Package database handles database connections and schema inspection.
//
// It wraps GORM to configure MySQL (production) or SQLite (local runs and tests)
// connections from the application's configuration.
//
// # Connect
//
// Connect opens the connection used by the database record source when database.enabled is set.
//
// # Schema Inspection
//
// GetTableColumns lists the columns of a table. The database record source uses it to
// verify the key and order columns exist before reading rows, and the integrity feature
// reports the same check over HTTP.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	columns, err := database.GetTableColumns(db, "products")
package database
