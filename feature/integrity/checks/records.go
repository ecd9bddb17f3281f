package checks

import (
	"context"

	"catalog-builder/core/records"
)

// RecordsReport describes the state of the record source.
type RecordsReport struct {
	Source         string   `json:"source"`
	Status         string   `json:"status"` // "ok", "error"
	Count          int      `json:"count"`
	MissingColumns []string `json:"missing_columns"`
	Errors         []string `json:"errors"`
}

// SchemaChecker is implemented by sources backed by a table.
type SchemaChecker interface {
	CheckSchema(ctx context.Context) ([]string, error)
}

// CheckRecords verifies the source schema when it has one, then fetches the records.
func CheckRecords(ctx context.Context, source records.Source) *RecordsReport {
	report := &RecordsReport{
		Source:         source.Name(),
		Status:         "ok",
		MissingColumns: []string{},
		Errors:         []string{},
	}

	if checker, ok := source.(SchemaChecker); ok {
		missing, err := checker.CheckSchema(ctx)
		if err != nil {
			report.Status = "error"
			report.Errors = append(report.Errors, err.Error())
			return report
		}
		if len(missing) > 0 {
			report.Status = "error"
			report.MissingColumns = missing
			return report
		}
	}

	set, err := source.Fetch(ctx)
	if err != nil {
		report.Status = "error"
		report.Errors = append(report.Errors, err.Error())
		return report
	}
	report.Count = set.Len()
	return report
}
