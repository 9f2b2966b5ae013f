package pipeline

import (
	"testing"
	"time"

	"interndash/internal"
)

func materialize(grid internal.RawGrid) []internal.ListingRecord {
	return MaterializeRecords(NormalizeGrid(grid))
}

func TestMaterializeSingleRecord(t *testing.T) {
	records := materialize(internal.RawGrid{
		{"企業名", "応募締切"},
		{"Acme", "2024-05-01"},
	})
	if len(records) != 1 {
		t.Fatalf("len=%d", len(records))
	}

	rec := records[0]
	if rec.Company != "Acme" {
		t.Fatalf("company=%q", rec.Company)
	}
	if !rec.Deadline.Valid {
		t.Fatal("deadline not parsed")
	}
	want := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	if !rec.Deadline.Time.Equal(want) {
		t.Fatalf("deadline=%v", rec.Deadline.Time)
	}

	for _, field := range CanonicalFields {
		switch field {
		case internal.FieldCompany, internal.FieldDeadline, internal.FieldStartDate:
			continue
		}
		if got := rec.FieldValue(field); got != internal.Unknown {
			t.Fatalf("field %s = %q, want sentinel", field, got)
		}
	}
}

func TestMaterializeEmptyDateCell(t *testing.T) {
	records := materialize(internal.RawGrid{
		{"企業名", "応募締切"},
		{"Acme", ""},
	})
	rec := records[0]
	if rec.Deadline.Valid {
		t.Fatalf("deadline=%v, want invalid", rec.Deadline)
	}
	if rec.Company != "Acme" {
		t.Fatalf("company=%q, affected by bad date", rec.Company)
	}
}

func TestMaterializeBadDateDoesNotLeakAcrossRows(t *testing.T) {
	records := materialize(internal.RawGrid{
		{"企業名", "応募締切"},
		{"Acme", "そのうち"},
		{"Beta", "2024-06-15"},
	})
	if records[0].Deadline.Valid {
		t.Fatal("row 1 deadline should be invalid")
	}
	if !records[1].Deadline.Valid {
		t.Fatal("row 2 deadline should be parsed")
	}
}

func TestMaterializeWhitespaceOnlyCell(t *testing.T) {
	records := materialize(internal.RawGrid{
		{"企業名", "勤務地"},
		{"Acme", " \t"},
		{"Beta", "　"}, // full-width space
	})
	if records[0].Location != internal.Unknown {
		t.Fatalf("location=%q", records[0].Location)
	}
	if records[1].Location != internal.Unknown {
		t.Fatalf("location=%q", records[1].Location)
	}
}

func TestMaterializeKeepsRawText(t *testing.T) {
	records := materialize(internal.RawGrid{
		{"企業名", "報酬"},
		{"Acme", " 時給1,200円〜 "},
	})
	if records[0].Salary != " 時給1,200円〜 " {
		t.Fatalf("salary=%q, cell text must stay untouched", records[0].Salary)
	}
}

func TestMaterializeShortRow(t *testing.T) {
	records := materialize(internal.RawGrid{
		{"インターン名", "企業名", "業界", "応募締切"},
		{"Summer Internship", "Acme"},
	})
	rec := records[0]
	if rec.Title != "Summer Internship" || rec.Company != "Acme" {
		t.Fatalf("title=%q company=%q", rec.Title, rec.Company)
	}
	if rec.Industry != internal.Unknown {
		t.Fatalf("industry=%q", rec.Industry)
	}
	if rec.Deadline.Valid {
		t.Fatal("deadline should be invalid for omitted cell")
	}
}

func TestMaterializeOrderPreserved(t *testing.T) {
	records := materialize(internal.RawGrid{
		{"企業名"},
		{"Gamma"},
		{"Alpha"},
		{"Beta"},
	})
	want := []string{"Gamma", "Alpha", "Beta"}
	for i, name := range want {
		if records[i].Company != name {
			t.Fatalf("records[%d]=%q want %q", i, records[i].Company, name)
		}
	}
}

func TestMaterializeAllUnknownRowStillOneRecord(t *testing.T) {
	records := materialize(internal.RawGrid{
		{"企業名", "業界"},
		{"", ""},
	})
	if len(records) != 1 {
		t.Fatalf("len=%d", len(records))
	}
	if records[0].Company != internal.Unknown {
		t.Fatalf("company=%q", records[0].Company)
	}
}
