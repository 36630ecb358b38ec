package model

// Table holds a fully materialized tabular report: one header row plus data rows.
// Cells are raw strings exactly as read from the source file.
type Table struct {
	Header []string   `json:"header"`
	Rows   [][]string `json:"rows"`
}

// Empty reports whether the table has no data rows.
func (t Table) Empty() bool {
	return len(t.Rows) == 0
}

// CustomerRecord is one parsed row of the sales report.
type CustomerRecord struct {
	CustomerID   string `json:"customer_id"`
	FullName     string `json:"full_name"`
	Phone        string `json:"phone"`
	Status       string `json:"status"`
	AttemptsSent int    `json:"attempts_sent"` // normalized; -1 when the cell was unparsable
	OrderID      string `json:"order_id,omitempty"`
	OrderValue   string `json:"order_value,omitempty"` // raw monetary text, e.g. "R$ 1.234,50"

	// Raw preserves the original cells for export passthrough.
	Raw []string `json:"-"`
}

// QualifiedLead is a surviving CustomerRecord annotated with the derived
// outreach fields. Immutable after the pipeline run that created it.
type QualifiedLead struct {
	CustomerRecord

	DisplayFirstName  string `json:"display_first_name"`
	MessageBody       string `json:"message_body"`
	OrderValueDisplay string `json:"order_value_display,omitempty"` // formatted pt-BR money
}

// Metrics counts records dropped at each pipeline stage.
type Metrics struct {
	OriginalCount     int `json:"original_count"`
	RemovedDuplicates int `json:"removed_duplicates"`
	RemovedByFilter   int `json:"removed_by_filter"`
}

// RunResult holds the outcome of a single qualification run. Header carries
// the input column order so the export can mirror it.
type RunResult struct {
	RunID   string          `json:"run_id"`
	Header  []string        `json:"header"`
	Leads   []QualifiedLead `json:"leads"`
	Metrics Metrics         `json:"metrics"`
}
