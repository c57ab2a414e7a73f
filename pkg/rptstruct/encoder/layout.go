// Package encoder builds synthetic report containers.
package encoder

import "github.com/ukaji3/rptstruct-go/pkg/rptstruct/models"

// Magic is the fixed 7-byte header: format tag followed by a fake version and reserved bytes.
const Magic = "CR\x00\x0A\x00\x00\x00"

// Region tags and record prefixes.
const (
	MetadataTag   = "METADATA\x00"
	FormulasTag   = "FORMULAS\x00"
	TablePrefix   = "TABLE:"
	FieldPrefix   = "FIELD:"
	SectionPrefix = "SECTION:"
	TypePrefix    = "TYPE"
)

// sizeFieldLen is the width of every little-endian u32 size or count value.
const sizeFieldLen = 4

// TableSpec is a table name with its fixed field catalog.
type TableSpec struct {
	Name   string
	Fields []string
}

// Layout holds the catalogs and random bounds used to build a container.
type Layout struct {
	Tables   []TableSpec
	Sections []string

	// MetadataMin and MetadataMax bound the record count, both inclusive.
	MetadataMin uint32
	MetadataMax uint32
	// MaxTypeCode is the largest field type code; codes are drawn from 1..MaxTypeCode.
	MaxTypeCode int
	// SectionSizeMin and SectionSizeMax bound declared section sizes, [min, max).
	SectionSizeMin int
	SectionSizeMax int
	// FormulaLen is the length of the random formulas payload.
	FormulaLen int
}

// DefaultLayout returns the standard report layout.
func DefaultLayout() Layout {
	return Layout{
		Tables: []TableSpec{
			{Name: "Customers", Fields: []string{"CustomerID", "Name", "Address", "City", "Country", "Phone"}},
			{Name: "Orders", Fields: []string{"OrderID", "CustomerID", "OrderDate", "ShipDate", "Total"}},
			{Name: "Products", Fields: []string{"ProductID", "Name", "Category", "UnitPrice", "UnitsInStock"}},
			{Name: "Employees", Fields: []string{"EmployeeID", "FirstName", "LastName", "Title", "HireDate"}},
		},
		Sections:       []string{"ReportHeader", "PageHeader", "Details", "PageFooter", "ReportFooter"},
		MetadataMin:    1000,
		MetadataMax:    9999,
		MaxTypeCode:    5,
		SectionSizeMin: 100,
		SectionSizeMax: 500,
		FormulaLen:     256,
	}
}

// Summary returns the static structure described by the layout.
func (l Layout) Summary() *models.StructureSummary {
	s := &models.StructureSummary{
		Tables:   make([]models.TableSummary, len(l.Tables)),
		Sections: append([]string(nil), l.Sections...),
	}
	for i, t := range l.Tables {
		s.Tables[i] = models.TableSummary{
			Name:   t.Name,
			Fields: append([]string(nil), t.Fields...),
		}
	}
	return s
}

// MinimumSize returns the smallest possible encoded length for the layout.
func (l Layout) MinimumSize() int {
	n := len(Magic) + len(MetadataTag) + sizeFieldLen
	for _, t := range l.Tables {
		n += len(tableHeader(t.Name)) + sizeFieldLen
		for _, f := range t.Fields {
			// type codes below 10 take a single digit
			n += len(fieldDef(f, 1))
		}
	}
	n += len(l.Sections) * l.SectionSizeMin
	return n + len(FormulasTag) + sizeFieldLen + l.FormulaLen
}

func tableHeader(name string) string {
	return TablePrefix + name + "\x00"
}

func sectionHeader(name string) string {
	return SectionPrefix + name + "\x00"
}
