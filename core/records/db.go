package records

import (
	"context"
	"fmt"
	"strings"

	"catalog-builder/core/database"
	"catalog-builder/core/reconcile"
	"catalog-builder/core/upstream"
	"catalog-builder/core/utils"

	"gorm.io/gorm"
)

// DBSource reads records from a database table. Every column becomes a field;
// NULL values are left undefined.
type DBSource struct {
	db          *gorm.DB
	table       string
	keyColumn   string
	orderColumn string
}

// NewDBSource creates a source reading table, keyed by keyColumn and ordered by orderColumn.
func NewDBSource(db *gorm.DB, table, keyColumn, orderColumn string) *DBSource {
	return &DBSource{db: db, table: table, keyColumn: keyColumn, orderColumn: orderColumn}
}

// Name returns the source name.
func (s *DBSource) Name() string {
	return SourceDatabase
}

// CheckSchema verifies the table has the key and order columns.
// It returns the list of missing columns.
func (s *DBSource) CheckSchema(ctx context.Context) ([]string, error) {
	columns, err := database.GetTableColumns(s.db.WithContext(ctx), s.table)
	if err != nil {
		return nil, err
	}

	present := make(map[string]struct{}, len(columns))
	for _, col := range columns {
		present[col.Field] = struct{}{}
	}

	var missing []string
	for _, want := range []string{s.keyColumn, s.orderColumn} {
		if want == "" {
			continue
		}
		if _, ok := present[strings.ToLower(want)]; !ok {
			missing = append(missing, want)
		}
	}
	return missing, nil
}

// Fetch loads every row of the table in order.
func (s *DBSource) Fetch(ctx context.Context) (*reconcile.RecordSet, error) {
	missing, err := s.CheckSchema(ctx)
	if err != nil {
		return nil, upstream.Wrap(upstream.SourceRecords, "inspect "+s.table, err)
	}
	if len(missing) > 0 {
		return nil, upstream.Wrap(upstream.SourceRecords, "inspect "+s.table, fmt.Errorf("table %s is missing columns %v", s.table, missing))
	}

	query := s.db.WithContext(ctx).Table(s.table)
	if s.orderColumn != "" {
		query = query.Order(s.orderColumn)
	}

	rows, err := query.Rows()
	if err != nil {
		return nil, upstream.Wrap(upstream.SourceRecords, "query "+s.table, err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, upstream.Wrap(upstream.SourceRecords, "query "+s.table, err)
	}

	keyIndex := -1
	for i, col := range columns {
		if strings.EqualFold(col, s.keyColumn) {
			keyIndex = i
			break
		}
	}
	if keyIndex < 0 {
		return nil, upstream.Wrap(upstream.SourceRecords, "query "+s.table, fmt.Errorf("result has no %q column", s.keyColumn))
	}

	set := reconcile.NewRecordSet()
	for rows.Next() {
		values := make([]any, len(columns))
		ptrs := make([]any, len(columns))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, upstream.Wrap(upstream.SourceRecords, "scan "+s.table, err)
		}

		if values[keyIndex] == nil {
			continue
		}
		name := strings.TrimSpace(utils.ToString(values[keyIndex]))
		if name == "" {
			continue
		}

		fields := make(map[string]string, len(columns))
		for i, col := range columns {
			if values[i] == nil {
				continue
			}
			fields[col] = utils.ToString(values[i])
		}
		set.Set(reconcile.Record{Name: name, Fields: fields})
	}
	if err := rows.Err(); err != nil {
		return nil, upstream.Wrap(upstream.SourceRecords, "read "+s.table, err)
	}

	return set, nil
}
