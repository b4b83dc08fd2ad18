package timeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/planline/planline/internal/models"
)

func TestBuildCellsDayZoomTenDays(t *testing.T) {
	rng := Range{Start: date("2025-01-01"), End: date("2025-01-10")}
	cells := BuildCells(rng, models.ZoomDay, nil, date("2025-01-05"))

	require.Len(t, cells, 10)
	require.Equal(t, "2025-01-01", cells[0].Key)
	require.Equal(t, "2025-01-10", cells[9].Key)
	require.Equal(t, "1", cells[0].Label)
	require.Equal(t, "10", cells[9].Label)
	for i, cell := range cells {
		require.Equal(t, i == 4, cell.IsToday, "cell %d", i)
	}
}

func TestBuildCellsWeekZoom(t *testing.T) {
	rng := Range{Start: date("2025-01-01"), End: date("2025-01-20")}
	cells := BuildCells(rng, models.ZoomWeek, nil, date("2025-01-09"))

	require.Len(t, cells, 3)
	require.Equal(t, "w2025-01-01", cells[0].Key)
	require.Equal(t, "W1", cells[0].Label)
	require.Equal(t, "W3", cells[2].Label)
	require.Equal(t, date("2025-01-15"), cells[2].Date)
	// 2025-01-09 falls in the second week (Jan 8 - Jan 14).
	require.False(t, cells[0].IsToday)
	require.True(t, cells[1].IsToday)
	require.False(t, cells[2].IsToday)
}

func TestBuildCellsMonthZoomAnchorsToFirstOfMonth(t *testing.T) {
	rng := Range{Start: date("2025-01-15"), End: date("2025-03-10")}
	cells := BuildCells(rng, models.ZoomMonth, nil, date("2025-02-20"))

	require.Len(t, cells, 3)
	require.Equal(t, date("2025-01-01"), cells[0].Date)
	require.Equal(t, "m2025-01", cells[0].Key)
	require.Equal(t, "Jan 2025", cells[0].Label)
	require.True(t, cells[1].IsToday)
}

func TestBuildCellsMonthZoomLocalizedNames(t *testing.T) {
	rng := Range{Start: date("2025-05-01"), End: date("2025-05-31")}
	namer := func(m time.Month) string { return "máj" }
	cells := BuildCells(rng, models.ZoomMonth, namer, date("2024-01-01"))

	require.Len(t, cells, 1)
	require.Equal(t, "máj 2025", cells[0].Label)
}

func TestBuildCellsQuarterZoomAnchorsToJanuary(t *testing.T) {
	rng := Range{Start: date("2025-08-10"), End: date("2026-02-01")}
	cells := BuildCells(rng, models.ZoomQuarter, nil, date("2025-11-05"))

	require.Len(t, cells, 5)
	require.Equal(t, "q2025-1", cells[0].Key)
	require.Equal(t, "Q1 2025", cells[0].Label)
	require.Equal(t, "Q1 2026", cells[4].Label)
	require.Equal(t, date("2025-01-01"), cells[0].Date)
	// Q4 2025 holds today.
	require.True(t, cells[3].IsToday)
}

func TestBuildCellsFirstAndLastCellBounds(t *testing.T) {
	rng := Range{Start: date("2025-02-14"), End: date("2025-09-03")}
	now := date("2020-01-01")
	spans := map[models.ZoomLevel]int{
		models.ZoomDay:     1,
		models.ZoomWeek:    7,
		models.ZoomMonth:   31,
		models.ZoomQuarter: 92,
	}
	for zoom, span := range spans {
		cells := BuildCells(rng, zoom, nil, now)
		require.NotEmpty(t, cells, "zoom %s", zoom)

		first := cells[0].Date
		last := cells[len(cells)-1].Date
		require.False(t, dateAfter(first, rng.Start), "zoom %s first cell starts after range", zoom)
		require.Less(t, daysBetween(first, rng.Start), span, "zoom %s first cell too early", zoom)
		require.False(t, dateAfter(last, rng.End), "zoom %s last cell beyond range end", zoom)
	}
}

func TestBuildCellsKeysStableAndUnique(t *testing.T) {
	rng := Range{Start: date("2025-01-01"), End: date("2025-12-31")}
	for _, zoom := range models.ZoomLevels {
		first := BuildCells(rng, zoom, nil, date("2025-06-15"))
		second := BuildCells(rng, zoom, nil, date("2025-06-15"))
		require.Equal(t, first, second, "zoom %s not deterministic", zoom)

		seen := map[string]bool{}
		for _, cell := range first {
			require.False(t, seen[cell.Key], "duplicate key %s at zoom %s", cell.Key, zoom)
			seen[cell.Key] = true
		}
	}
}

func TestBuildCellsInvertedRange(t *testing.T) {
	rng := Range{Start: date("2025-02-01"), End: date("2025-01-01")}
	for _, zoom := range models.ZoomLevels {
		require.Empty(t, BuildCells(rng, zoom, nil, date("2025-01-15")))
		require.Equal(t, 0, CellCount(rng, zoom))
	}
}

func TestCellCountMatchesBuildCells(t *testing.T) {
	ranges := []Range{
		{Start: date("2025-01-01"), End: date("2025-01-01")},
		{Start: date("2025-01-01"), End: date("2025-01-10")},
		{Start: date("2025-01-15"), End: date("2025-07-04")},
		{Start: date("2024-11-20"), End: date("2026-03-02")},
	}
	for _, rng := range ranges {
		for _, zoom := range models.ZoomLevels {
			cells := BuildCells(rng, zoom, nil, date("2025-01-01"))
			require.Equal(t, len(cells), CellCount(rng, zoom), "range %v zoom %s", rng, zoom)
			require.Equal(t, len(cells)*CellWidth(zoom), GridWidth(rng, zoom))
		}
	}
}
