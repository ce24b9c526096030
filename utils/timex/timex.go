// File: timex.go
// Title: Core Time Utility Functions
// Description: Implements date handling for the compact DDMMYYYY format used
//              throughout the command language and the export files. Parsing
//              is strict: out-of-range components are rejected, never rolled
//              over into the next valid date.
// Version: v0.1.0
// Created: 2025-08-31

package timex

import (
	"time"
)

// CompactDateLayout is the fixed-width day-month-year layout used by the
// command language (e.g. "31122021" for 31 Dec 2021). No separators, no
// time component.
const CompactDateLayout = "02012006"

// ParseCompactDate parses a DDMMYYYY string into a calendar date. The parse
// is strict: "31132021" (month 13) and "30022021" (Feb 30) fail rather than
// rolling over, and any trailing text is an error.
func ParseCompactDate(s string) (time.Time, error) {
	if len(s) != len(CompactDateLayout) {
		return time.Time{}, &time.ParseError{
			Layout:  CompactDateLayout,
			Value:   s,
			Message: ": wrong length for compact date",
		}
	}
	return time.Parse(CompactDateLayout, s)
}

// FormatCompactDate formats a date as DDMMYYYY. The round-trip with
// ParseCompactDate is identity for any valid calendar date.
func FormatCompactDate(t time.Time) string {
	return t.Format(CompactDateLayout)
}

// DateOnly strips the time-of-day component, keeping the calendar date in UTC.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Today returns the current calendar date with no time component.
func Today() time.Time {
	return DateOnly(time.Now())
}

// SameDate reports whether two timestamps fall on the same calendar date.
func SameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
