package pipeline

import (
	"fmt"
	"strings"

	"github.com/jumbo-cdp/leadqual/internal/config"
)

// SchemaError reports every required column missing from the report header,
// so one error message carries the complete list.
type SchemaError struct {
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("schema: report is missing required columns: %s", strings.Join(e.Missing, ", "))
}

// columnIndex holds the resolved position of each configured column in the
// report header. Optional columns are -1 when absent.
type columnIndex struct {
	CustomerID int
	FullName   int
	Phone      int
	Attempts   int
	Status     int
	OrderID    int
	OrderValue int
}

// ValidateSchema resolves configured column names against the report header.
// Matching is exact and case-sensitive. It fails with a SchemaError listing
// all missing required columns; optional columns resolve to -1.
func ValidateSchema(header []string, cols config.ColumnsConfig) (columnIndex, error) {
	pos := make(map[string]int, len(header))
	for i, name := range header {
		if _, ok := pos[name]; !ok {
			pos[name] = i
		}
	}

	lookup := func(name string) int {
		if idx, ok := pos[name]; ok {
			return idx
		}
		return -1
	}

	idx := columnIndex{
		CustomerID: lookup(cols.CustomerID),
		FullName:   lookup(cols.FullName),
		Phone:      lookup(cols.Phone),
		Attempts:   lookup(cols.Attempts),
		Status:     lookup(cols.Status),
		OrderID:    lookup(cols.OrderID),
		OrderValue: lookup(cols.OrderValue),
	}

	var missing []string
	for _, name := range cols.Required() {
		if _, ok := pos[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return columnIndex{}, &SchemaError{Missing: missing}
	}

	return idx, nil
}

// cell safely retrieves a column value from a report row.
func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}
