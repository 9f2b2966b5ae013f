package pipeline

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  time.Time
	}{
		{name: "iso", input: "2024-05-01", want: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)},
		{name: "iso unpadded", input: "2024-5-1", want: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)},
		{name: "slashed", input: "2024/05/01", want: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)},
		{name: "dotted", input: "2024.5.1", want: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)},
		{name: "kanji", input: "2024年5月1日", want: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)},
		{name: "datetime", input: "2024-05-01 09:30:00", want: time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)},
		{name: "surrounding space", input: "  2024-05-01  ", want: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			parsed := ParseDate(tc.input)
			if !parsed.Valid {
				t.Fatalf("not parsed: %q", tc.input)
			}
			if !parsed.Time.Equal(tc.want) {
				t.Fatalf("got %v want %v", parsed.Time, tc.want)
			}
		})
	}
}

func TestParseDateInvalid(t *testing.T) {
	inputs := []string{"", "  ", "未定", "5月ごろ", "2024", "05-01", "来週まで", "不明"}
	for _, input := range inputs {
		if parsed := ParseDate(input); parsed.Valid {
			t.Fatalf("parsed %q as %v", input, parsed.Time)
		}
	}
}
