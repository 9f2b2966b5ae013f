package pipeline

import (
	"strings"
	"time"

	"interndash/internal"
)

// dateLayouts covers the forms seen in sheet exports: year-first numeric
// dates with either separator, the 年月日 form, and datetime carry-over from
// cells formatted as timestamps. Single-digit month and day are accepted.
var dateLayouts = []string{
	"2006-1-2",
	"2006/1/2",
	"2006.1.2",
	"2006年1月2日",
	"2006-1-2 15:04:05",
	time.RFC3339,
}

// ParseDate parses a cell as a calendar date. Empty input or an
// unrecognized form yields the invalid marker; it never returns an error.
func ParseDate(cell string) internal.Date {
	value := strings.TrimSpace(cell)
	if value == "" {
		return internal.Date{}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return internal.NewDate(t)
		}
	}
	return internal.Date{}
}
