package utils

import "time"

// Check-in dates are calendar days with no time-of-day meaning. They are
// parsed and compared in UTC at midnight so day arithmetic stays exact.
const DateLayout = "2006-01-02"

func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// Midnight truncates t to the start of its calendar day in UTC.
func Midnight(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the signed calendar-day difference a - b.
func DaysBetween(a, b time.Time) int {
	return int(Midnight(a).Sub(Midnight(b)).Hours() / 24)
}
