package output

import (
	"github.com/ukaji3/rptstruct-go/pkg/rptstruct/models"
	"github.com/xuri/excelize/v2"
)

// SheetName is the worksheet references are written to.
const SheetName = "Sheet1"

// WriteXLSX writes the references to a single-sheet workbook.
// The header row is written even when there are no references.
func WriteXLSX(path string, table *models.ReferenceTable) error {
	f := excelize.NewFile()
	defer f.Close()

	if idx, err := f.GetSheetIndex(SheetName); err != nil || idx == -1 {
		idx, err := f.NewSheet(SheetName)
		if err != nil {
			return err
		}
		f.SetActiveSheet(idx)
	}

	if err := writeRow(f, 1, table.Columns()); err != nil {
		return err
	}
	for i, row := range table.Rows() {
		if err := writeRow(f, i+2, row); err != nil {
			return err
		}
	}

	return f.SaveAs(path)
}

func writeRow(f *excelize.File, rowIdx int, values []string) error {
	for c, v := range values {
		cell, err := excelize.CoordinatesToCellName(c+1, rowIdx)
		if err != nil {
			return err
		}
		if err := f.SetCellStr(SheetName, cell, v); err != nil {
			return err
		}
	}
	return nil
}
