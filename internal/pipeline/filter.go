package pipeline

import (
	"sort"

	"interndash/internal"
)

// Filter narrows listings by exact value. Empty constraints match
// everything.
type Filter struct {
	Industry  string
	Role      string
	WorkStyle string
}

func (f Filter) matches(rec internal.ListingRecord) bool {
	if f.Industry != "" && rec.Industry != f.Industry {
		return false
	}
	if f.Role != "" && rec.Role != f.Role {
		return false
	}
	if f.WorkStyle != "" && rec.WorkStyle != f.WorkStyle {
		return false
	}
	return true
}

// ApplyFilter keeps the original record order.
func ApplyFilter(records []internal.ListingRecord, f Filter) []internal.ListingRecord {
	out := make([]internal.ListingRecord, 0, len(records))
	for _, rec := range records {
		if f.matches(rec) {
			out = append(out, rec)
		}
	}
	return out
}

// FilterOptions returns the sorted distinct values of a field across the
// records. The Unknown sentinel is not offered as a filter choice.
func FilterOptions(records []internal.ListingRecord, field internal.Field) []string {
	seen := map[string]struct{}{}
	out := make([]string, 0)
	for _, rec := range records {
		value := rec.FieldValue(field)
		if value == "" || value == internal.Unknown {
			continue
		}
		if _, ok := seen[value]; ok {
			continue
		}
		seen[value] = struct{}{}
		out = append(out, value)
	}
	sort.Strings(out)
	return out
}

// SortByDeadline orders records by application deadline, earliest first.
// Records without a parseable deadline sort last; ties keep sheet order.
func SortByDeadline(records []internal.ListingRecord) []internal.ListingRecord {
	out := make([]internal.ListingRecord, len(records))
	copy(out, records)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].Deadline, out[j].Deadline
		if a.Valid != b.Valid {
			return a.Valid
		}
		if !a.Valid {
			return false
		}
		return a.Time.Before(b.Time)
	})
	return out
}
