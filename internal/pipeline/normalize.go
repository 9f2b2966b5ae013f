package pipeline

import "interndash/internal"

// NormalizeGrid repairs the header of a raw sheet grid and returns the data
// rows keyed by canonical field, regardless of the original column naming,
// order, or completeness. An empty grid, or one with a header and no data
// rows, yields an empty result; that is the documented no-data case, not an
// error. Pure function of the grid and the static alias table.
func NormalizeGrid(grid internal.RawGrid) internal.NormalizedGrid {
	if len(grid) < 2 {
		return internal.NormalizedGrid{}
	}

	columns := mapHeader(grid[0])

	out := make(internal.NormalizedGrid, 0, len(grid)-1)
	for _, cells := range grid[1:] {
		row := make(internal.NormalizedRow, len(CanonicalFields))
		for _, field := range CanonicalFields {
			idx, mapped := columns[field]
			if !mapped {
				row[field] = internal.Unknown
				continue
			}
			if idx < len(cells) {
				row[field] = cells[idx]
			} else {
				// Trailing empty cells are omitted by the sheet export.
				row[field] = ""
			}
		}
		out = append(out, row)
	}
	return out
}

// mapHeader resolves header labels to column indexes. Unrecognized labels
// are dropped; a duplicated label keeps its first column.
func mapHeader(header []string) map[internal.Field]int {
	columns := make(map[internal.Field]int, len(header))
	for i, label := range header {
		field, ok := CanonicalField(label)
		if !ok {
			continue
		}
		if _, exists := columns[field]; exists {
			continue
		}
		columns[field] = i
	}
	return columns
}
