// ABOUTME: Date-key arithmetic for the practice calendar.
// ABOUTME: All functions operate on canonical YYYY-MM-DD strings.
package dates

import (
	"time"
)

// KeyFormat is the canonical date key layout.
const KeyFormat = "2006-01-02"

// Format returns the canonical date key for t.
func Format(t time.Time) string {
	return t.Format(KeyFormat)
}

// Parse converts a date key back to a time. Invalid keys yield the zero
// time; callers feed keys produced by Format.
func Parse(key string) time.Time {
	t, _ := time.Parse(KeyFormat, key)
	return t
}

// AddDays returns the date key n whole calendar days after key. Negative
// n walks backward. Month and year boundaries roll over correctly.
func AddDays(key string, n int) string {
	return Format(Parse(key).AddDate(0, 0, n))
}

// MonthDates returns every date key in the calendar month containing key,
// in order from the 1st to the last day of the month.
func MonthDates(key string) []string {
	t := Parse(key)
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)

	var out []string
	for d := first; d.Month() == first.Month(); d = d.AddDate(0, 0, 1) {
		out = append(out, Format(d))
	}
	return out
}
