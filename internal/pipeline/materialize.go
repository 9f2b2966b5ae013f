package pipeline

import (
	"interndash/internal"
	"interndash/internal/util"
)

// MaterializeRecords turns normalized rows into typed listing records, in
// the same order. Blank non-date cells become the Unknown sentinel; the two
// date fields are parsed permissively and fall back to the invalid marker.
// Rows are independent: one malformed cell never affects another row.
func MaterializeRecords(grid internal.NormalizedGrid) []internal.ListingRecord {
	out := make([]internal.ListingRecord, 0, len(grid))
	for _, row := range grid {
		out = append(out, materializeRow(row))
	}
	return out
}

func materializeRow(row internal.NormalizedRow) internal.ListingRecord {
	return internal.ListingRecord{
		Title:            textOrUnknown(row[internal.FieldTitle]),
		Company:          textOrUnknown(row[internal.FieldCompany]),
		Industry:         textOrUnknown(row[internal.FieldIndustry]),
		WorkStyle:        textOrUnknown(row[internal.FieldWorkStyle]),
		Location:         textOrUnknown(row[internal.FieldLocation]),
		Station:          textOrUnknown(row[internal.FieldStation]),
		Period:           textOrUnknown(row[internal.FieldPeriod]),
		Role:             textOrUnknown(row[internal.FieldRole]),
		RequiredSkills:   textOrUnknown(row[internal.FieldRequiredSkills]),
		Salary:           textOrUnknown(row[internal.FieldSalary]),
		CommuteAllowance: textOrUnknown(row[internal.FieldCommuteAllowance]),
		AvailableHours:   textOrUnknown(row[internal.FieldAvailableHours]),
		WorkDays:         textOrUnknown(row[internal.FieldWorkDays]),
		WorkHours:        textOrUnknown(row[internal.FieldWorkHours]),
		SelectionFlow:    textOrUnknown(row[internal.FieldSelectionFlow]),
		Deadline:         ParseDate(row[internal.FieldDeadline]),
		StartDate:        ParseDate(row[internal.FieldStartDate]),
		Headcount:        textOrUnknown(row[internal.FieldHeadcount]),
		PreferredSkills:  textOrUnknown(row[internal.FieldPreferredSkills]),
		PreferredSkills2: textOrUnknown(row[internal.FieldPreferredSkills2]),
		Description:      textOrUnknown(row[internal.FieldDescription]),
	}
}

// textOrUnknown keeps cell text as-is; rendering concerns stay downstream.
func textOrUnknown(cell string) string {
	if util.IsBlank(cell) {
		return internal.Unknown
	}
	return cell
}
