package models

import "time"

// DateLayout is the ISO date format used in statement documents and paths.
const DateLayout = "2006-01-02"

// DateOf returns t's calendar date as midnight UTC.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// SameDate reports whether a and b fall on the same calendar date.
func SameDate(a, b time.Time) bool {
	return DateOf(a).Equal(DateOf(b))
}
