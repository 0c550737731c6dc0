package chrono_test

import (
	"testing"

	"github.com/uvquiz/backend/internal/chrono"
)

func TestFormatSeconds(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "00:00:00"},
		{59, "00:00:59"},
		{61, "00:01:01"},
		{3600, "01:00:00"},
		{3725, "01:02:05"},
		{360000, "100:00:00"},
		{-5, "00:00:00"},
	}

	for _, tc := range tests {
		if got := chrono.FormatSeconds(tc.in); got != tc.want {
			t.Errorf("FormatSeconds(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestParseTimeString(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"01:02:05", 3725},
		{"02:05", 125},
		{"42", 42},
		{"", 0},
	}

	for _, tc := range tests {
		got, err := chrono.ParseTimeString(tc.in)
		if err != nil {
			t.Fatalf("ParseTimeString(%q): unexpected error: %v", tc.in, err)
		}
		if got != tc.want {
			t.Errorf("ParseTimeString(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestParseTimeString_Invalid(t *testing.T) {
	for _, in := range []string{"1:2:3:4", "aa:10", "01:-1"} {
		if _, err := chrono.ParseTimeString(in); err == nil {
			t.Errorf("ParseTimeString(%q): expected error", in)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	for _, s := range []int{0, 1, 599, 3600, 86399} {
		got, err := chrono.ParseTimeString(chrono.FormatSeconds(s))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != s {
			t.Errorf("round trip of %d gave %d", s, got)
		}
	}
}
