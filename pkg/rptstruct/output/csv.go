package output

import (
	"encoding/csv"
	"os"

	"github.com/ukaji3/rptstruct-go/pkg/rptstruct/models"
)

// WriteCSV writes the header row followed by one line per reference.
func WriteCSV(path string, table *models.ReferenceTable) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	w := csv.NewWriter(f)
	if err := w.Write(table.Columns()); err != nil {
		return err
	}
	// WriteAll flushes and reports any buffered write error.
	return w.WriteAll(table.Rows())
}
