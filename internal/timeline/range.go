package timeline

import (
	"time"

	"github.com/planline/planline/internal/models"
)

// Range is the effective date window the chart renders. It is derived from
// the configured bounds widened by the span of all task dates, so it is never
// narrower than the settings and always covers every parseable task date.
type Range struct {
	Start time.Time
	End   time.Time
}

// Resolve computes the effective range from settings and the task set.
// The second return is false when no usable bound can be derived, in which
// case every downstream component renders nothing.
//
// Each bound starts from the corresponding settings date and is widened by
// the earliest task start / latest task end. A malformed settings date leaves
// that bound to the tasks alone; malformed task dates are skipped. A bound
// with no candidates at all falls back to the opposite side's candidates so a
// single valid date anywhere still yields a (degenerate) range.
func Resolve(settings models.Settings, tasks []*models.Task) (Range, bool) {
	start, startOK := ParseDate(settings.StartDate)
	end, endOK := ParseDate(settings.EndDate)

	var minStart, maxEnd time.Time
	var haveStart, haveEnd bool
	for _, task := range tasks {
		if task == nil {
			continue
		}
		if d, ok := ParseDate(task.Start); ok {
			if !haveStart || d.Before(minStart) {
				minStart = d
				haveStart = true
			}
		}
		if d, ok := ParseDate(task.End); ok {
			if !haveEnd || d.After(maxEnd) {
				maxEnd = d
				haveEnd = true
			}
		}
	}

	if haveStart && (!startOK || minStart.Before(start)) {
		start = minStart
		startOK = true
	}
	if haveEnd && (!endOK || maxEnd.After(end)) {
		end = maxEnd
		endOK = true
	}

	switch {
	case startOK && endOK:
		return Range{Start: start, End: end}, true
	case startOK:
		return Range{Start: start, End: start}, true
	case endOK:
		return Range{Start: end, End: end}, true
	}
	return Range{}, false
}

// TotalDays returns the number of visible days in the range, inclusive of
// both endpoints. Zero when the range is inverted.
func (r Range) TotalDays() int {
	diff := daysBetween(r.Start, r.End)
	if diff < 0 {
		return 0
	}
	return diff + 1
}

// Contains reports whether the given date falls within the range, inclusive.
func (r Range) Contains(t time.Time) bool {
	return !dateBefore(t, r.Start) && !dateAfter(t, r.End)
}

// Clamp restricts a date to lie within the range.
func (r Range) Clamp(t time.Time) time.Time {
	if dateBefore(t, r.Start) {
		return r.Start
	}
	if dateAfter(t, r.End) {
		return r.End
	}
	return t
}
