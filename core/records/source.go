package records

import (
	"context"
	"fmt"

	"catalog-builder/core/reconcile"
	"catalog-builder/core/storage"

	"gorm.io/gorm"
)

// Source fetches the ordered product records.
type Source interface {
	// Name identifies the source in logs and reports.
	Name() string
	// Fetch loads every record, in source order.
	Fetch(ctx context.Context) (*reconcile.RecordSet, error)
}

// New selects the source implementation named by cfg.Source.
// client and db may be nil when the selected source does not use them.
func New(cfg Config, client storage.Client, bucket string, db *gorm.DB) (Source, error) {
	if !cfg.IsValidSource() {
		return nil, fmt.Errorf("unknown record source: %s", cfg.Source)
	}

	switch cfg.Source {
	case SourceObject:
		if client == nil {
			return nil, fmt.Errorf("record source %s requires a storage client", cfg.Source)
		}
		return NewObjectSource(client, bucket, cfg.Object, cfg.KeyColumn), nil
	case SourceDatabase:
		if db == nil {
			return nil, fmt.Errorf("record source %s requires a database connection", cfg.Source)
		}
		return NewDBSource(db, cfg.Table, cfg.KeyColumn, cfg.OrderColumn), nil
	default:
		if cfg.URL == "" {
			return nil, fmt.Errorf("record source %s requires a url", cfg.Source)
		}
		return NewHTTPSource(cfg.URL, cfg.KeyColumn, cfg.TimeoutSeconds), nil
	}
}
