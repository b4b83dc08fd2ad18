package models

// LegendItem maps a color swatch to a human-readable label under the chart.
type LegendItem struct {
	// ID uniquely identifies the legend entry.
	ID string `json:"id"`

	// Color is the swatch color (hex).
	Color string `json:"color"`

	// Label is the text shown next to the swatch.
	Label string `json:"label"`
}

// NewLegendItem creates a legend entry with a fresh ID.
func NewLegendItem(color, label string) *LegendItem {
	if color == "" {
		color = DefaultTaskColor
	}
	return &LegendItem{
		ID:    NewID(),
		Color: color,
		Label: label,
	}
}
