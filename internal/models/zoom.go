package models

import "fmt"

// ZoomLevel is the granularity of the timeline axis.
type ZoomLevel string

const (
	ZoomDay     ZoomLevel = "day"
	ZoomWeek    ZoomLevel = "week"
	ZoomMonth   ZoomLevel = "month"
	ZoomQuarter ZoomLevel = "quarter"
)

// ZoomLevels lists all levels in increasing coarseness, the order the UI
// cycles through them.
var ZoomLevels = []ZoomLevel{ZoomDay, ZoomWeek, ZoomMonth, ZoomQuarter}

// Valid reports whether z is a known zoom level.
func (z ZoomLevel) Valid() bool {
	switch z {
	case ZoomDay, ZoomWeek, ZoomMonth, ZoomQuarter:
		return true
	}
	return false
}

// Next returns the next coarser zoom level, wrapping around to day.
func (z ZoomLevel) Next() ZoomLevel {
	for i, level := range ZoomLevels {
		if level == z {
			return ZoomLevels[(i+1)%len(ZoomLevels)]
		}
	}
	return ZoomDay
}

// ParseZoomLevel converts a string to a ZoomLevel.
func ParseZoomLevel(s string) (ZoomLevel, error) {
	z := ZoomLevel(s)
	if !z.Valid() {
		return "", fmt.Errorf("unknown zoom level %q", s)
	}
	return z, nil
}
