package grana

import (
	"errors"
	"testing"
)

func TestNormalizeDate(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"2025-01-15", "2025-01-15"},
		{"2025-7-1", "2025-07-01"},
		{"2025-01-15T00:00:00Z", "2025-01-15"},
		{"2025-01-15T23:59:59Z", "2025-01-15"},
		// midnight in UTC-3 is 03:00 UTC, still Jan 15: the calendar
		// date comes from the UTC fields, never the local ones.
		{"2025-01-15T00:00:00-03:00", "2025-01-15"},
	}
	for _, c := range cases {
		got, err := NormalizeDate(c.in)
		if err != nil {
			t.Errorf("NormalizeDate(%q) error = %v", c.in, err)
			continue
		}
		if got.String() != c.want {
			t.Errorf("NormalizeDate(%q) = %s, want %s", c.in, got, c.want)
		}
	}
}

func TestNormalizeDateCrossesMidnightUTC(t *testing.T) {
	// 23:00 in UTC-3 on Jan 14 is 02:00 UTC on Jan 15: the UTC calendar
	// day wins, whatever the locale that produced the timestamp.
	got, err := NormalizeDate("2025-01-14T23:00:00-03:00")
	if err != nil {
		t.Fatalf("NormalizeDate() error = %v", err)
	}
	if got.String() != "2025-01-15" {
		t.Errorf("NormalizeDate() = %s, want 2025-01-15", got)
	}
}

func TestNormalizeDateMalformed(t *testing.T) {
	for _, in := range []string{"", "yesterday", "15/01/2025", "2025-99-99"} {
		_, err := NormalizeDate(in)
		if err == nil {
			t.Errorf("NormalizeDate(%q) expected error", in)
			continue
		}
		var malformed *MalformedDateError
		if !errors.As(err, &malformed) {
			t.Errorf("NormalizeDate(%q) error = %T, want *MalformedDateError", in, err)
		}
	}
}
