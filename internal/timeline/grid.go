package timeline

import (
	"fmt"
	"time"

	"github.com/planline/planline/internal/models"
)

// Cell is one column of the timeline header.
type Cell struct {
	// Key is stable across rebuilds: a pure function of the represented
	// date and the zoom level, so list diffing stays cheap.
	Key string

	// Date is the calendar date the cell represents (its span start).
	Date time.Time

	// Label is the header text for the cell.
	Label string

	// IsToday is true when today's date falls within the cell's span.
	IsToday bool
}

// Per-zoom cell pixel widths. The bar geometry reuses these unmodified so
// bars and grid share one coordinate space.
const (
	dayCellWidth     = 60
	weekCellWidth    = 90
	monthCellWidth   = 120
	quarterCellWidth = 150
)

// CellWidth returns the pixel width of one grid cell at the given zoom.
func CellWidth(zoom models.ZoomLevel) int {
	switch zoom {
	case models.ZoomWeek:
		return weekCellWidth
	case models.ZoomMonth:
		return monthCellWidth
	case models.ZoomQuarter:
		return quarterCellWidth
	default:
		return dayCellWidth
	}
}

// MonthNamer resolves a short month name for the active locale. A nil namer
// falls back to English three-letter abbreviations.
type MonthNamer func(time.Month) string

func monthLabel(namer MonthNamer, m time.Month) string {
	if namer != nil {
		return namer(m)
	}
	return m.String()[:3]
}

// BuildCells partitions the range into zoom-dependent cells, ordered
// chronologically left to right. The sequence is rebuilt in full on every
// range or zoom change. An inverted range yields no cells.
//
// Anchoring: day and week cells start at the range start; month cells at the
// first of the range start's month; quarter cells at January 1 of the range
// start's year. The loop stops once the next represented date would pass the
// range end.
func BuildCells(rng Range, zoom models.ZoomLevel, namer MonthNamer, now time.Time) []Cell {
	if dateAfter(rng.Start, rng.End) {
		return nil
	}

	today := midnight(now)
	var cells []Cell

	switch zoom {
	case models.ZoomWeek:
		cur := rng.Start
		for index := 0; !dateAfter(cur, rng.End); index++ {
			cells = append(cells, Cell{
				Key:     "w" + cur.Format("2006-01-02"),
				Date:    cur,
				Label:   fmt.Sprintf("W%d", index+1),
				IsToday: spanContains(cur, cur.AddDate(0, 0, 6), today),
			})
			cur = cur.AddDate(0, 0, 7)
		}

	case models.ZoomMonth:
		cur := time.Date(rng.Start.Year(), rng.Start.Month(), 1, 0, 0, 0, 0, rng.Start.Location())
		for !dateAfter(cur, rng.End) {
			next := cur.AddDate(0, 1, 0)
			cells = append(cells, Cell{
				Key:     fmt.Sprintf("m%04d-%02d", cur.Year(), int(cur.Month())),
				Date:    cur,
				Label:   fmt.Sprintf("%s %d", monthLabel(namer, cur.Month()), cur.Year()),
				IsToday: spanContains(cur, next.AddDate(0, 0, -1), today),
			})
			cur = next
		}

	case models.ZoomQuarter:
		cur := time.Date(rng.Start.Year(), time.January, 1, 0, 0, 0, 0, rng.Start.Location())
		for !dateAfter(cur, rng.End) {
			next := cur.AddDate(0, 3, 0)
			quarter := (int(cur.Month())-1)/3 + 1
			cells = append(cells, Cell{
				Key:     fmt.Sprintf("q%04d-%d", cur.Year(), quarter),
				Date:    cur,
				Label:   fmt.Sprintf("Q%d %d", quarter, cur.Year()),
				IsToday: spanContains(cur, next.AddDate(0, 0, -1), today),
			})
			cur = next
		}

	default: // day
		cur := rng.Start
		for !dateAfter(cur, rng.End) {
			cells = append(cells, Cell{
				Key:     cur.Format("2006-01-02"),
				Date:    cur,
				Label:   fmt.Sprintf("%d", cur.Day()),
				IsToday: sameDate(cur, today),
			})
			cur = cur.AddDate(0, 0, 1)
		}
	}

	return cells
}

// GridWidth returns the total pixel width of the timeline at the given zoom:
// cell count times cell width. Zero for an inverted or empty range.
func GridWidth(rng Range, zoom models.ZoomLevel) int {
	return CellCount(rng, zoom) * CellWidth(zoom)
}

// CellCount returns how many cells BuildCells would produce, without
// building them.
func CellCount(rng Range, zoom models.ZoomLevel) int {
	if dateAfter(rng.Start, rng.End) {
		return 0
	}
	switch zoom {
	case models.ZoomWeek:
		return daysBetween(rng.Start, rng.End)/7 + 1
	case models.ZoomMonth:
		cur := time.Date(rng.Start.Year(), rng.Start.Month(), 1, 0, 0, 0, 0, rng.Start.Location())
		count := 0
		for !dateAfter(cur, rng.End) {
			count++
			cur = cur.AddDate(0, 1, 0)
		}
		return count
	case models.ZoomQuarter:
		cur := time.Date(rng.Start.Year(), time.January, 1, 0, 0, 0, 0, rng.Start.Location())
		count := 0
		for !dateAfter(cur, rng.End) {
			count++
			cur = cur.AddDate(0, 3, 0)
		}
		return count
	default:
		return rng.TotalDays()
	}
}

// spanContains reports whether the date d falls within [from, to] inclusive.
func spanContains(from, to, d time.Time) bool {
	return !dateBefore(d, from) && !dateAfter(d, to)
}
