package output

import (
	"encoding/json"

	"github.com/ukaji3/rptstruct-go/pkg/rptstruct/models"
)

// ToJSON serializes a reference table. References is always an array, never null.
func ToJSON(table *models.ReferenceTable, pretty bool) ([]byte, error) {
	out := *table
	if out.References == nil {
		out.References = []models.ExtractedReference{}
	}
	if pretty {
		return json.MarshalIndent(out, "", "  ")
	}
	return json.Marshal(out)
}

// SummaryToJSON serializes a structure summary.
func SummaryToJSON(s *models.StructureSummary, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(s, "", "  ")
	}
	return json.Marshal(s)
}
