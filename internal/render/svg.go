package render

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/planline/planline/internal/i18n"
	"github.com/planline/planline/internal/models"
	"github.com/planline/planline/internal/timeline"
)

// SVG layout constants, in SVG user units. The horizontal scale is the
// engine's own pixel space, so cell boundaries and bars line up exactly.
const (
	svgNameColumn = 180
	svgHeaderH    = 28
	svgRowH       = 30
	svgBarH       = 20
	svgLegendRowH = 22
	svgPadding    = 10
	svgFont       = "Helvetica, Arial, sans-serif"
)

// SVGOptions controls SVG export.
type SVGOptions struct {
	Zoom     models.ZoomLevel
	Filter   timeline.Filter
	Now      time.Time
	ShowDate bool
	Bundle   *i18n.Bundle
}

// WriteSVG renders the chart as a standalone SVG document, the file-based
// replacement for the browser print path.
func WriteSVG(w io.Writer, tasks []*models.Task, settings models.Settings, legend []*models.LegendItem, opts SVGOptions) error {
	bundle := opts.Bundle
	if bundle == nil {
		bundle = i18n.NewBundle(i18n.DefaultLocale)
	}

	rng, ok := timeline.Resolve(settings, tasks)
	if !ok {
		_, err := fmt.Fprintf(w,
			`<svg xmlns="http://www.w3.org/2000/svg" width="300" height="40"><text x="10" y="25" font-family=%q>%s</text></svg>%s`,
			svgFont, escapeXML(bundle.Label("no_tasks")), "\n")
		return err
	}

	visible := timeline.Visible(tasks, opts.Filter)
	cells := timeline.BuildCells(rng, opts.Zoom, bundle.MonthShort, opts.Now)
	gridWidth := timeline.GridWidth(rng, opts.Zoom)
	cellWidth := timeline.CellWidth(opts.Zoom)

	headerTop := svgPadding
	if opts.ShowDate {
		headerTop += svgHeaderH
	}
	chartTop := headerTop + svgHeaderH
	chartHeight := len(visible) * svgRowH
	legendTop := chartTop + chartHeight + svgPadding
	totalHeight := legendTop + len(legend)*svgLegendRowH + svgPadding
	totalWidth := svgNameColumn + gridWidth + 2*svgPadding

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+"\n",
		totalWidth, totalHeight, totalWidth, totalHeight)
	fmt.Fprintf(&b, `<rect width="100%%" height="100%%" fill="white"/>`+"\n")

	if opts.ShowDate {
		fmt.Fprintf(&b, `<text x="%d" y="%d" font-family=%q font-size="13" fill="#555">%s</text>`+"\n",
			svgPadding, svgPadding+14, svgFont, escapeXML(opts.Now.Format("2006-01-02")))
	}

	// Grid columns and header labels.
	originX := svgPadding + svgNameColumn
	for i, cell := range cells {
		x := originX + i*cellWidth
		fmt.Fprintf(&b, `<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="#ddd"/>`+"\n",
			x, chartTop, x, chartTop+chartHeight)
		fmt.Fprintf(&b, `<text x="%d" y="%d" font-family=%q font-size="11" fill="#333">%s</text>`+"\n",
			x+3, headerTop+18, svgFont, escapeXML(cell.Label))
	}
	fmt.Fprintf(&b, `<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="#ddd"/>`+"\n",
		originX+gridWidth, chartTop, originX+gridWidth, chartTop+chartHeight)

	// Task rows.
	for i, task := range visible {
		y := chartTop + i*svgRowH
		fmt.Fprintf(&b, `<text x="%d" y="%d" font-family=%q font-size="12" fill="#111">%s</text>`+"\n",
			svgPadding, y+svgRowH/2+4, svgFont, escapeXML(task.Name))

		bar, ok := timeline.LayoutBar(task, rng, opts.Zoom)
		if !ok {
			continue
		}
		barY := y + (svgRowH-svgBarH)/2
		fmt.Fprintf(&b, `<rect x="%.1f" y="%d" width="%.1f" height="%d" rx="4" fill="%s" fill-opacity="0.35"/>`+"\n",
			float64(originX)+bar.Left, barY, bar.Width, svgBarH, escapeXML(barColor(task.Color)))
		if task.Progress > 0 {
			progressWidth := bar.Width * float64(models.ClampProgress(task.Progress)) / 100
			fmt.Fprintf(&b, `<rect x="%.1f" y="%d" width="%.1f" height="%d" rx="4" fill="%s"/>`+"\n",
				float64(originX)+bar.Left, barY, progressWidth, svgBarH, escapeXML(barColor(task.Color)))
		}
	}

	// Today marker.
	if percent, ok := timeline.LocateToday(rng, opts.Now); ok {
		x := float64(originX) + percent/100*float64(gridWidth)
		fmt.Fprintf(&b, `<line x1="%.1f" y1="%d" x2="%.1f" y2="%d" stroke="#e53935" stroke-width="2" stroke-dasharray="4 3"/>`+"\n",
			x, chartTop, x, chartTop+chartHeight)
	}

	// Legend.
	for i, item := range legend {
		y := legendTop + i*svgLegendRowH
		fmt.Fprintf(&b, `<rect x="%d" y="%d" width="14" height="14" rx="3" fill="%s"/>`+"\n",
			svgPadding, y, escapeXML(barColor(item.Color)))
		fmt.Fprintf(&b, `<text x="%d" y="%d" font-family=%q font-size="12" fill="#111">%s</text>`+"\n",
			svgPadding+20, y+12, svgFont, escapeXML(item.Label))
	}

	b.WriteString("</svg>\n")
	_, err := io.WriteString(w, b.String())
	return err
}

func barColor(color string) string {
	if strings.TrimSpace(color) == "" {
		return models.DefaultTaskColor
	}
	return color
}

func escapeXML(s string) string {
	replacer := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
	)
	return replacer.Replace(s)
}
