package pipeline

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"interndash/internal"
)

func TestExportRecordsToXLSX(t *testing.T) {
	records := materialize(internal.RawGrid{
		{"企業名", "応募締切"},
		{"Acme", "2024-05-01"},
		{"Beta", "未定"},
	})

	out := filepath.Join(t.TempDir(), "listings.xlsx")
	if err := ExportRecordsToXLSX(records, out); err != nil {
		t.Fatal(err)
	}

	f, err := excelize.OpenFile(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	sheet := f.GetSheetName(0)

	header, err := f.GetCellValue(sheet, "A1")
	if err != nil {
		t.Fatal(err)
	}
	if header != string(internal.FieldTitle) {
		t.Fatalf("header=%q", header)
	}

	company, _ := f.GetCellValue(sheet, "B2")
	if company != "Acme" {
		t.Fatalf("company=%q", company)
	}

	deadline, _ := f.GetCellValue(sheet, "P2")
	if deadline != "2024-05-01" {
		t.Fatalf("deadline=%q", deadline)
	}
	badDeadline, _ := f.GetCellValue(sheet, "P3")
	if badDeadline != "" {
		t.Fatalf("unparseable deadline exported as %q", badDeadline)
	}
}
