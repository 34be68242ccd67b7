package domain

import "time"

// Calendar dates (streak activity, stats grouping) are represented as
// time.Time values at midnight UTC carrying only year/month/day. DateOf is
// the single place a wall-clock instant is collapsed to a date.

// DateOf returns the calendar date of t in the given location, encoded as
// midnight UTC.
func DateOf(t time.Time, loc *time.Location) time.Time {
	lt := t.In(loc)
	return time.Date(lt.Year(), lt.Month(), lt.Day(), 0, 0, 0, 0, time.UTC)
}

// SameDate reports whether a and b fall on the same calendar date.
func SameDate(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// NextDate returns the calendar date one day after d.
// AddDate is used rather than Add(24h) so DST transitions cannot skew it.
func NextDate(d time.Time) time.Time {
	return d.AddDate(0, 0, 1)
}
