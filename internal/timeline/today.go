package timeline

import "time"

// LocateToday returns today's fractional position within the range as a
// percentage in [0,100]. The second return is false when today lies outside
// the range or the range is degenerate (zero or negative length), so callers
// never divide by zero.
func LocateToday(rng Range, now time.Time) (float64, bool) {
	total := daysBetween(rng.Start, rng.End)
	if total <= 0 {
		return 0, false
	}
	today := midnight(now)
	if dateBefore(today, rng.Start) || dateAfter(today, rng.End) {
		return 0, false
	}
	offset := daysBetween(rng.Start, today)
	return float64(offset) / float64(total) * 100, true
}
