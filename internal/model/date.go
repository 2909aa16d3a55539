package model

import "time"

// dateLayout is the canonical representation for calendar days.
const dateLayout = "2006-01-02"

// Date is a calendar day in the game's pinned timezone, formatted
// YYYY-MM-DD. Using a flat string keeps it comparable and safe as a
// map or storage key.
type Date string

// NewDate derives the calendar day from a timestamp. The caller is
// responsible for the timestamp already being in the game timezone;
// the clock dependency guarantees that.
func NewDate(t time.Time) Date {
	return Date(t.Format(dateLayout))
}

// ParseDate validates a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return "", ErrInvalidDate
	}
	return NewDate(t), nil
}

// Parts splits the date into year, month and day. A zero triple is
// returned for a malformed date.
func (d Date) Parts() (year, month, day int) {
	t, err := time.Parse(dateLayout, string(d))
	if err != nil {
		return 0, 0, 0
	}
	return t.Year(), int(t.Month()), t.Day()
}

// Before reports whether d is an earlier calendar day than other.
// Lexicographic comparison is correct for the fixed layout.
func (d Date) Before(other Date) bool {
	return string(d) < string(other)
}
