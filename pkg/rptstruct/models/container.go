// Package models defines data structures for report container generation and extraction.
package models

// FieldDef is a single field declaration inside a table block.
type FieldDef struct {
	// Name is the field name from the table's catalog.
	Name string `json:"name"`
	// TypeCode is the randomly drawn type tag (1..5).
	TypeCode uint8 `json:"type_code"`
}

// TableRecord is one table block: header, declared size and field declarations.
type TableRecord struct {
	// Name is the table name.
	Name string `json:"name"`
	// DeclaredSize is the size value written after the table header.
	// It is informational and never validated on read.
	DeclaredSize uint32 `json:"declared_size"`
	// Fields lists the field declarations in catalog order.
	Fields []FieldDef `json:"fields"`
}

// SectionRecord is one named report section with its random payload.
type SectionRecord struct {
	// Name is the section name.
	Name string `json:"name"`
	// DeclaredSize is the total size of the section region, header included.
	DeclaredSize uint32 `json:"declared_size"`
	// Payload is the random filler following the size value.
	Payload []byte `json:"-"`
}

// Container is the encoded report as an ordered list of byte regions.
type Container struct {
	Header   []byte
	Metadata []byte
	Tables   [][]byte
	Sections [][]byte
	Formulas []byte

	// RecordCount is the fake record count stored in the metadata region.
	RecordCount uint32
	// TableRecords mirrors Tables with the decoded record values.
	TableRecords []TableRecord
	// SectionRecords mirrors Sections with the decoded record values.
	SectionRecords []SectionRecord
}

// Len returns the total encoded length, the exact sum of region lengths.
func (c *Container) Len() int {
	n := len(c.Header) + len(c.Metadata) + len(c.Formulas)
	for _, t := range c.Tables {
		n += len(t)
	}
	for _, s := range c.Sections {
		n += len(s)
	}
	return n
}

// Bytes concatenates all regions in order: header, metadata, tables, sections, formulas.
func (c *Container) Bytes() []byte {
	buf := make([]byte, 0, c.Len())
	buf = append(buf, c.Header...)
	buf = append(buf, c.Metadata...)
	for _, t := range c.Tables {
		buf = append(buf, t...)
	}
	for _, s := range c.Sections {
		buf = append(buf, s...)
	}
	return append(buf, c.Formulas...)
}
