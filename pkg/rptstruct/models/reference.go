package models

// Column names of the extracted reference table.
const (
	ColumnTable         = "table"
	ColumnField         = "field"
	ColumnFullReference = "full_reference"
)

// UnknownTable is used when a reference has no table part.
const UnknownTable = "Unknown"

// ExtractedReference is a table.field shaped string found in scanned bytes.
type ExtractedReference struct {
	// Table is the part before the first separator.
	Table string `json:"table"`
	// Field is the remainder after the first separator, inner separators kept.
	Field string `json:"field"`
	// FullReference is the matched string as found.
	FullReference string `json:"full_reference"`
}

// ReferenceTable is the decoder result: a fixed three column table.
// A zero value is a valid empty table.
type ReferenceTable struct {
	// Source is the input the references were extracted from.
	Source string `json:"source,omitempty"`
	// References holds rows sorted by FullReference.
	References []ExtractedReference `json:"references"`
}

// Columns returns the header row. It is the same for empty tables.
func (t *ReferenceTable) Columns() []string {
	return []string{ColumnTable, ColumnField, ColumnFullReference}
}

// Len returns the number of rows.
func (t *ReferenceTable) Len() int {
	return len(t.References)
}

// Rows returns the references as string rows in column order.
func (t *ReferenceTable) Rows() [][]string {
	rows := make([][]string, len(t.References))
	for i, r := range t.References {
		rows[i] = []string{r.Table, r.Field, r.FullReference}
	}
	return rows
}
