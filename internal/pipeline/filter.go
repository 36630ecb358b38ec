package pipeline

import (
	"github.com/jumbo-cdp/leadqual/internal/model"
)

// groupStatuses builds the per-customer status history over the full,
// pre-dedup table: customer id -> whether any record carries a status other
// than the target. The comparison is exact and case-sensitive. This is the
// one step that needs the whole table materialized before any per-row
// decision can be made.
func groupStatuses(rows [][]string, idx columnIndex, target string) map[string]bool {
	hasOther := make(map[string]bool)
	for _, row := range rows {
		id := cell(row, idx.CustomerID)
		if cell(row, idx.Status) != target {
			hasOther[id] = true
		} else if _, seen := hasOther[id]; !seen {
			hasOther[id] = false
		}
	}
	return hasOther
}

// dedupe keeps the first row per customer id in original report order and
// drops later duplicates. Stable: survivors keep their relative order.
func dedupe(rows [][]string, idx columnIndex) [][]string {
	seen := make(map[string]bool, len(rows))
	deduped := make([][]string, 0, len(rows))
	for _, row := range rows {
		id := cell(row, idx.CustomerID)
		if seen[id] {
			continue
		}
		seen[id] = true
		deduped = append(deduped, row)
	}
	return deduped
}

// parseRecord maps a raw report row to a CustomerRecord, normalizing the
// attempts cell. Optional order columns resolve to "" when absent.
func parseRecord(row []string, idx columnIndex) model.CustomerRecord {
	return model.CustomerRecord{
		CustomerID:   cell(row, idx.CustomerID),
		FullName:     cell(row, idx.FullName),
		Phone:        cell(row, idx.Phone),
		Status:       cell(row, idx.Status),
		AttemptsSent: NormalizeAttempts(cell(row, idx.Attempts)),
		OrderID:      cell(row, idx.OrderID),
		OrderValue:   cell(row, idx.OrderValue),
		Raw:          row,
	}
}

// qualifies decides whether a deduplicated record enters the lead list:
// its own status must equal the target, no other status may appear anywhere
// in the customer's raw history, and the customer must never have sent an
// order before.
func qualifies(rec model.CustomerRecord, hasOther map[string]bool, target string) bool {
	if rec.Status != target {
		return false
	}
	if hasOther[rec.CustomerID] {
		return false
	}
	return rec.AttemptsSent == 0
}
