// Package output serializes extracted reference tables.
package output

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ukaji3/rptstruct-go/pkg/rptstruct/models"
)

// ErrUnsupportedFormat indicates an unknown export format name.
var ErrUnsupportedFormat = errors.New("unsupported output format")

// Format is an export file format.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
	FormatJSON Format = "json"
)

// Ext returns the file extension including the dot.
func (f Format) Ext() string {
	return "." + string(f)
}

// ParseFormats parses format names, ignoring case, blanks and duplicates.
func ParseFormats(names []string) ([]Format, error) {
	var formats []Format
	seen := make(map[Format]bool)
	for _, n := range names {
		f := Format(strings.ToLower(strings.TrimSpace(n)))
		if f == "" || seen[f] {
			continue
		}
		switch f {
		case FormatCSV, FormatXLSX, FormatJSON:
		default:
			return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, n)
		}
		seen[f] = true
		formats = append(formats, f)
	}
	return formats, nil
}

// Write writes table to path in the given format.
func Write(path string, table *models.ReferenceTable, f Format) error {
	switch f {
	case FormatCSV:
		return WriteCSV(path, table)
	case FormatXLSX:
		return WriteXLSX(path, table)
	case FormatJSON:
		data, err := ToJSON(table, true)
		if err != nil {
			return err
		}
		return os.WriteFile(path, data, 0644)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, f)
	}
}

// WriteAll writes <dir>/<base><ext> for every format and returns the written paths.
func WriteAll(dir, base string, table *models.ReferenceTable, formats []Format) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	var paths []string
	for _, f := range formats {
		path := filepath.Join(dir, base+f.Ext())
		if err := Write(path, table, f); err != nil {
			return paths, fmt.Errorf("write %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// BaseName strips directory and extension from a source path.
func BaseName(path string) string {
	name := filepath.Base(path)
	return strings.TrimSuffix(name, filepath.Ext(name))
}
