// Package render draws the chart: a text renderer for terminal and print
// output, and an SVG exporter. Both consume the geometry produced by the
// timeline package unmodified, so whatever the engine computed is what ends
// up on screen.
package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/planline/planline/internal/i18n"
	"github.com/planline/planline/internal/models"
	"github.com/planline/planline/internal/timeline"
)

const (
	defaultNameWidth = 22
	minChartColumns  = 20
)

// Options controls chart rendering.
type Options struct {
	// Zoom is the grid granularity.
	Zoom models.ZoomLevel

	// Filter selects the visible tasks.
	Filter timeline.Filter

	// Now anchors the today marker.
	Now time.Time

	// Width is the total output width in terminal columns. Values that
	// leave no room for the chart are raised to a usable minimum.
	Width int

	// ShowDate prints today's date above the chart.
	ShowDate bool

	// Bundle supplies labels and month names; nil falls back to English.
	Bundle *i18n.Bundle

	// Theme is "light" or "dark".
	Theme string
}

type chartStyles struct {
	axis   lipgloss.Style
	name   lipgloss.Style
	match  lipgloss.Style
	today  lipgloss.Style
	legend lipgloss.Style
}

func newChartStyles(theme string) chartStyles {
	axisColor := lipgloss.Color("240")
	if theme == "dark" {
		axisColor = lipgloss.Color("246")
	}
	return chartStyles{
		axis:   lipgloss.NewStyle().Foreground(axisColor),
		name:   lipgloss.NewStyle(),
		match:  lipgloss.NewStyle().Bold(true).Underline(true),
		today:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
		legend: lipgloss.NewStyle().Foreground(axisColor),
	}
}

// Chart renders the full chart: optional date line, grid header, one bar row
// per visible task, the today marker, and the legend. An unresolvable range
// yields a short placeholder instead of an error.
func Chart(tasks []*models.Task, settings models.Settings, legend []*models.LegendItem, opts Options) string {
	bundle := opts.Bundle
	if bundle == nil {
		bundle = i18n.NewBundle(i18n.DefaultLocale)
	}
	styles := newChartStyles(opts.Theme)

	var b strings.Builder
	if opts.ShowDate {
		b.WriteString(styles.axis.Render(opts.Now.Format("Monday, 02.01.2006")))
		b.WriteString("\n\n")
	}

	rng, ok := timeline.Resolve(settings, tasks)
	if !ok {
		b.WriteString(bundle.Label("no_tasks"))
		b.WriteString("\n")
		return b.String()
	}

	visible := timeline.Visible(tasks, opts.Filter)
	cells := timeline.BuildCells(rng, opts.Zoom, bundle.MonthShort, opts.Now)
	totalWidth := float64(timeline.GridWidth(rng, opts.Zoom))
	if len(cells) == 0 || totalWidth <= 0 {
		b.WriteString(bundle.Label("no_tasks"))
		b.WriteString("\n")
		return b.String()
	}

	nameWidth := defaultNameWidth
	chartCols := opts.Width - nameWidth - 1
	if chartCols < minChartColumns {
		chartCols = minChartColumns
	}
	scale := float64(chartCols) / totalWidth

	b.WriteString(headerRow(cells, opts.Zoom, nameWidth, chartCols, scale, styles))
	b.WriteString("\n")

	for _, task := range visible {
		b.WriteString(taskRow(task, rng, opts, nameWidth, chartCols, scale, styles))
		b.WriteString("\n")
	}

	if percent, ok := timeline.LocateToday(rng, opts.Now); ok {
		b.WriteString(todayRow(percent, bundle, nameWidth, chartCols, styles))
		b.WriteString("\n")
	}

	if len(legend) > 0 {
		b.WriteString("\n")
		b.WriteString(legendRows(legend, bundle, styles))
	}

	return b.String()
}

func headerRow(cells []timeline.Cell, zoom models.ZoomLevel, nameWidth, chartCols int, scale float64, styles chartStyles) string {
	row := make([]rune, chartCols)
	for i := range row {
		row[i] = ' '
	}

	cellWidth := float64(timeline.CellWidth(zoom))
	for i, cell := range cells {
		start := int(float64(i) * cellWidth * scale)
		end := int(float64(i+1) * cellWidth * scale)
		if start >= chartCols {
			break
		}
		if end > chartCols {
			end = chartCols
		}
		span := end - start
		if span < 1 {
			continue
		}
		label := []rune(cell.Label)
		if len(label) > span {
			label = label[:span]
		}
		copy(row[start:], label)
	}

	return strings.Repeat(" ", nameWidth) + " " + styles.axis.Render(string(row))
}

func taskRow(task *models.Task, rng timeline.Range, opts Options, nameWidth, chartCols int, scale float64, styles chartStyles) string {
	name := padName(task.Name, nameWidth)
	nameStyle := styles.name
	if search := strings.TrimSpace(opts.Filter.Search); search != "" && timeline.MatchesSearch(task, search) {
		nameStyle = styles.match
	}

	bar, ok := timeline.LayoutBar(task, rng, opts.Zoom)
	if !ok {
		return nameStyle.Render(name)
	}

	offset := int(bar.Left * scale)
	width := int(bar.Width * scale)
	if width < 1 {
		width = 1
	}
	if offset >= chartCols {
		offset = chartCols - 1
	}
	if offset+width > chartCols {
		width = chartCols - offset
	}

	filled := width * models.ClampProgress(task.Progress) / 100
	barText := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	barStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(task.Color))

	return nameStyle.Render(name) + " " +
		strings.Repeat(" ", offset) + barStyle.Render(barText)
}

func todayRow(percent float64, bundle *i18n.Bundle, nameWidth, chartCols int, styles chartStyles) string {
	col := int(percent / 100 * float64(chartCols))
	if col >= chartCols {
		col = chartCols - 1
	}
	marker := strings.Repeat(" ", col) + "▲ " + bundle.Label("today")
	return strings.Repeat(" ", nameWidth) + " " + styles.today.Render(marker)
}

func legendRows(legend []*models.LegendItem, bundle *i18n.Bundle, styles chartStyles) string {
	var b strings.Builder
	b.WriteString(styles.legend.Render(bundle.Label("legend")))
	b.WriteString("\n")
	for _, item := range legend {
		swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(item.Color)).Render("██")
		b.WriteString(fmt.Sprintf("  %s %s\n", swatch, item.Label))
	}
	return b.String()
}

func padName(name string, width int) string {
	runes := []rune(name)
	if len(runes) > width {
		return string(runes[:width-1]) + "…"
	}
	return name + strings.Repeat(" ", width-len(runes))
}
