package pipeline

import (
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"interndash/internal"
)

// ExportRecordsToXLSX writes materialized listings to a workbook with the
// canonical header row. Unparseable dates export as empty cells.
func ExportRecordsToXLSX(records []internal.ListingRecord, outputPath string) error {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	for i, field := range CanonicalFields {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, string(field))
	}

	for r, rec := range records {
		for c, field := range CanonicalFields {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
			_ = f.SetCellValue(sheet, cell, rec.FieldValue(field))
		}
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return err
	}
	return f.SaveAs(outputPath)
}
