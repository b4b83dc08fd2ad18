// Package project implements the flat JSON project document used for
// import and export.
package project

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/planline/planline/internal/models"
)

// DefaultFileName is the suggested file name for exported projects.
const DefaultFileName = "gantt-project.json"

// Document is the import/export payload: the full task collection, the
// configured bounds, the legend, and optionally the view preferences.
type Document struct {
	Tasks    []*models.Task       `json:"tasks"`
	Settings *models.Settings     `json:"settings,omitempty"`
	Legend   []*models.LegendItem `json:"legend"`
	UI       *models.UIPreferences `json:"ui,omitempty"`
}

// Build assembles an export document. legend and ui may be nil/empty.
func Build(tasks []*models.Task, settings models.Settings, legend []*models.LegendItem, ui *models.UIPreferences) *Document {
	if tasks == nil {
		tasks = []*models.Task{}
	}
	if legend == nil {
		legend = []*models.LegendItem{}
	}
	return &Document{
		Tasks:    tasks,
		Settings: &settings,
		Legend:   legend,
		UI:       ui,
	}
}

// Encode writes the document as indented JSON.
func (d *Document) Encode(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("failed to encode project document: %w", err)
	}
	return nil
}
