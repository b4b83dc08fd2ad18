// Package timeline implements the layout and scheduling engine behind the
// chart: effective range resolution, grid cell construction, bar geometry,
// today-marker placement and drag reordering. Every computation is a pure
// function of its inputs and degrades to an empty/hidden result on malformed
// input instead of returning an error.
package timeline

import "time"

// ParseDate parses a calendar date (YYYY-MM-DD) at midnight local time.
// The second return is false when the string is empty or malformed.
func ParseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// midnight truncates t to its calendar date in t's location.
func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// daysBetween returns the whole number of calendar days from a to b.
// Negative when b is before a. Computed on date components so DST shifts
// never produce off-by-one results.
func daysBetween(a, b time.Time) int {
	au := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	bu := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(bu.Sub(au).Hours() / 24)
}

// sameDate reports whether a and b fall on the same calendar date.
func sameDate(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// dateAfter reports whether a falls on a later calendar date than b.
func dateAfter(a, b time.Time) bool {
	return daysBetween(b, a) > 0
}

// dateBefore reports whether a falls on an earlier calendar date than b.
func dateBefore(a, b time.Time) bool {
	return daysBetween(a, b) > 0
}
