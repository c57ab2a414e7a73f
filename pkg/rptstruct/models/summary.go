package models

// TableSummary names a table and its field catalog.
type TableSummary struct {
	Name   string   `json:"name"`
	Fields []string `json:"fields"`
}

// StructureSummary describes what the encoder writes.
// It is derived from the static layout, not from the randomized bytes.
type StructureSummary struct {
	// Tables lists tables in declaration order.
	Tables []TableSummary `json:"tables"`
	// Sections lists section names in declaration order.
	Sections []string `json:"sections"`
	// Path is the destination the container was written to (empty if not written).
	Path string `json:"path,omitempty"`
	// Size is the number of bytes written.
	Size int `json:"size,omitempty"`
}

// FieldMap returns the table name to field names mapping.
func (s *StructureSummary) FieldMap() map[string][]string {
	m := make(map[string][]string, len(s.Tables))
	for _, t := range s.Tables {
		m[t.Name] = t.Fields
	}
	return m
}
