// File: timex_test.go
// Title: Time Utility Unit Tests
// Description: Tests for strict compact date parsing, formatting round-trips
//              and calendar date helpers.
// Version: v0.1.0
// Created: 2025-08-31

package timex

import (
	"testing"
	"time"
)

func TestParseCompactDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
		year    int
		month   time.Month
		day     int
	}{
		{"valid end of year", "31122021", false, 2021, time.December, 31},
		{"valid leap day", "29022020", false, 2020, time.February, 29},
		{"month 13 rejected", "31132021", true, 0, 0, 0},
		{"day 32 rejected", "32012021", true, 0, 0, 0},
		{"feb 30 rejected", "30022021", true, 0, 0, 0},
		{"leap day in non-leap year", "29022021", true, 0, 0, 0},
		{"too short", "3112202", true, 0, 0, 0},
		{"too long", "311220211", true, 0, 0, 0},
		{"not numeric", "3a122021", true, 0, 0, 0},
		{"empty", "", true, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCompactDate(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseCompactDate(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			y, m, d := got.Date()
			if y != tt.year || m != tt.month || d != tt.day {
				t.Errorf("ParseCompactDate(%q) = %v, want %d-%d-%d", tt.input, got, tt.year, tt.month, tt.day)
			}
		})
	}
}

func TestCompactDateRoundTrip(t *testing.T) {
	inputs := []string{"01012000", "29022024", "31122021", "15081947"}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			parsed, err := ParseCompactDate(input)
			if err != nil {
				t.Fatalf("ParseCompactDate(%q) failed: %v", input, err)
			}
			if got := FormatCompactDate(parsed); got != input {
				t.Errorf("Round-trip of %q produced %q", input, got)
			}
		})
	}
}

func TestDateOnly(t *testing.T) {
	ts := time.Date(2021, time.December, 31, 23, 59, 58, 123, time.UTC)
	got := DateOnly(ts)

	if got.Hour() != 0 || got.Minute() != 0 || got.Second() != 0 || got.Nanosecond() != 0 {
		t.Errorf("DateOnly should zero the time component, got %v", got)
	}
	if !SameDate(ts, got) {
		t.Error("DateOnly should preserve the calendar date")
	}
}

func TestSameDate(t *testing.T) {
	a := time.Date(2021, time.June, 1, 0, 0, 0, 0, time.UTC)
	b := time.Date(2021, time.June, 1, 23, 0, 0, 0, time.UTC)
	c := time.Date(2021, time.June, 2, 0, 0, 0, 0, time.UTC)

	if !SameDate(a, b) {
		t.Error("Same calendar day should match")
	}
	if SameDate(a, c) {
		t.Error("Different days should not match")
	}
}
