package parser

import (
	"slices"
	"strings"
	"unicode"

	"github.com/ukaji3/rptstruct-go/pkg/rptstruct/models"
)

// Classify turns scanned runs into references.
// Runs without the separator or with whitespace are dropped, duplicates
// collapse, and the result is sorted by full reference.
func Classify(runs []string, sep string) []models.ExtractedReference {
	seen := make(map[string]struct{}, len(runs))
	var candidates []string
	for _, r := range runs {
		if !isCandidate(r, sep) {
			continue
		}
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		candidates = append(candidates, r)
	}
	slices.Sort(candidates)

	refs := make([]models.ExtractedReference, 0, len(candidates))
	for _, c := range candidates {
		refs = append(refs, splitReference(c, sep))
	}
	return refs
}

func isCandidate(s, sep string) bool {
	return strings.Contains(s, sep) && !strings.ContainsFunc(s, unicode.IsSpace)
}

// splitReference splits on the first separator; later separators stay in the field.
func splitReference(s, sep string) models.ExtractedReference {
	table, field, found := strings.Cut(s, sep)
	if !found {
		return models.ExtractedReference{
			Table:         models.UnknownTable,
			Field:         s,
			FullReference: s,
		}
	}
	return models.ExtractedReference{
		Table:         table,
		Field:         field,
		FullReference: s,
	}
}
