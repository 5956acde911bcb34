package utils

import (
	"strings"
	"time"
)

// DateLayout is the calendar-date format used at every service boundary.
const DateLayout = "2006-01-02"

// ParseDate parses a yyyy-MM-dd calendar date string.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, strings.TrimSpace(s))
}

// FormatDate renders a time as a yyyy-MM-dd calendar date string.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// Today returns the current date as a yyyy-MM-dd string.
func Today() string {
	return FormatDate(time.Now())
}

// MonthYearOf extracts the yyyy-MM month-year key from a yyyy-MM-dd date string.
// Returns an empty string if the date does not parse.
func MonthYearOf(date string) string {
	t, err := ParseDate(date)
	if err != nil {
		return ""
	}
	return t.Format("2006-01")
}
