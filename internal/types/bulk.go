package types

import "encoding/json"

// BulkDraws is the multi-format bulk ingestion payload. Any subset of the
// three formats may be present; all present formats are processed.
type BulkDraws struct {
	// CSV rows: date, m1..m5, e1, e2. A header row whose first cell is
	// "date" (case-insensitive) is skipped.
	CSV string `json:"csv,omitempty"`
	// JSON is a list of draw objects. Elements are decoded one by one so a
	// malformed element fails alone.
	JSON []json.RawMessage `json:"json,omitempty"`
	// Text holds one draw per non-blank line: "date; m1 m2 m3 m4 m5; e1 e2".
	Text string `json:"text,omitempty"`
}

// Ingestion source formats, in processing order.
const (
	FormatCSV  = "csv"
	FormatJSON = "json"
	FormatText = "text"
)

// IngestError describes one record that failed during bulk ingestion.
// Index is the 1-based row/line for csv and text (counting skipped rows)
// and the 0-based element index for json.
type IngestError struct {
	Format string `json:"format"`
	Index  int    `json:"index"`
	Reason string `json:"reason"`
}

// BulkResult accumulates bulk ingestion outcomes. A failed record never
// aborts the batch, so both slices can be non-empty at once.
type BulkResult struct {
	Inserted []string      `json:"inserted"`
	Errors   []IngestError `json:"errors"`
}
