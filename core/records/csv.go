package records

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"catalog-builder/core/reconcile"
)

// ParseCSV reads a header row followed by data rows and returns them as records.
func ParseCSV(r io.Reader, keyColumn string) (*reconcile.RecordSet, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return reconcile.NewRecordSet(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read csv header: %w", err)
	}

	keys := make([]string, len(header))
	keyIndex := -1
	for i, h := range header {
		keys[i] = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		if keyIndex < 0 && keys[i] == keyColumn {
			keyIndex = i
		}
	}
	if keyIndex < 0 {
		return nil, fmt.Errorf("csv header has no %q column", keyColumn)
	}

	set := reconcile.NewRecordSet()
	for line := 2; ; line++ {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read csv row %d: %w", line, err)
		}
		if keyIndex >= len(row) {
			continue
		}
		name := strings.TrimSpace(row[keyIndex])
		if name == "" {
			continue
		}

		fields := make(map[string]string, len(row))
		for i, value := range row {
			if i >= len(keys) || keys[i] == "" {
				continue
			}
			fields[keys[i]] = value
		}
		set.Set(reconcile.Record{Name: name, Fields: fields})
	}
	return set, nil
}
