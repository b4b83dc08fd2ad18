package timeline

import (
	"github.com/planline/planline/internal/models"
)

// MinBarWidth is the pixel floor below which a bar never shrinks, so
// zero-duration (or fully inverted) tasks stay visible and clickable.
const MinBarWidth = 8.0

// Bar is the horizontal geometry of one task bar, in the same pixel
// coordinate space as the grid cells. It references the task by ID only.
type Bar struct {
	TaskID string
	Left   float64
	Width  float64
}

// LayoutBar maps a task's date interval, clamped to the visible range, to a
// left/width pair. The second return is false ("hidden") only when a task
// date fails to parse or the range is inverted; a task lying entirely
// outside the range still yields a minimum-width bar pinned to the nearest
// edge.
//
// Day zoom uses whole-unit offsets (whole cells); coarser zooms position
// proportionally within the total grid width. A fully inverted interval
// renders at the clamped start edge.
func LayoutBar(task *models.Task, rng Range, zoom models.ZoomLevel) (Bar, bool) {
	if task == nil || dateAfter(rng.Start, rng.End) {
		return Bar{}, false
	}
	start, ok := ParseDate(task.Start)
	if !ok {
		return Bar{}, false
	}
	end, ok := ParseDate(task.End)
	if !ok {
		return Bar{}, false
	}

	clampedStart := rng.Clamp(start)
	clampedEnd := rng.Clamp(end)

	offsetDays := daysBetween(rng.Start, clampedStart)
	durationDays := daysBetween(clampedStart, clampedEnd) + 1
	if durationDays < 1 {
		// Fully inverted interval: minimum-width bar at the start edge.
		durationDays = 1
	}

	totalWidth := float64(GridWidth(rng, zoom))
	var bar Bar
	bar.TaskID = task.ID

	if zoom == models.ZoomDay {
		cellWidth := float64(CellWidth(zoom))
		bar.Left = float64(offsetDays) * cellWidth
		bar.Width = float64(durationDays) * cellWidth
	} else {
		totalDays := float64(rng.TotalDays())
		bar.Left = float64(offsetDays) / totalDays * totalWidth
		bar.Width = float64(durationDays) / totalDays * totalWidth
	}

	if bar.Width < MinBarWidth {
		bar.Width = MinBarWidth
	}
	if bar.Left+bar.Width > totalWidth {
		bar.Left = totalWidth - bar.Width
	}
	if bar.Left < 0 {
		bar.Left = 0
	}
	if bar.Width > totalWidth {
		bar.Width = totalWidth
	}
	return bar, true
}
