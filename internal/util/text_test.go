package util

import "testing"

func TestIsBlank(t *testing.T) {
	blanks := []string{"", " ", "\t\n", "　", " 　 "}
	for _, s := range blanks {
		if !IsBlank(s) {
			t.Fatalf("IsBlank(%q)=false", s)
		}
	}
	if IsBlank(" a ") {
		t.Fatal("IsBlank trimmed real content")
	}
}

func TestNormalizeSpaces(t *testing.T) {
	if got := NormalizeSpaces("  a \t b\n"); got != "a b" {
		t.Fatalf("got %q", got)
	}
}
