package util

import (
	"regexp"
	"strings"
)

var reSpaces = regexp.MustCompile(`\s+`)

// IsBlank reports whether a cell holds no usable text. Full-width spaces
// (U+3000), common in the Japanese sheet data, count as whitespace.
func IsBlank(input string) bool {
	return strings.TrimSpace(input) == ""
}

func NormalizeSpaces(input string) string {
	return strings.TrimSpace(reSpaces.ReplaceAllString(input, " "))
}
