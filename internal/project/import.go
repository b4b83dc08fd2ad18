package project

import (
	"encoding/json"
	"fmt"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/planline/planline/internal/models"
)

// documentSchema constrains the shape of an imported document. Fields are
// individually optional; a field failing validation is rejected on its own
// while the rest of the document still imports.
const documentSchema = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"properties": {
		"tasks": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["id", "name", "start", "end"],
				"properties": {
					"id":       {"type": "string", "minLength": 1},
					"name":     {"type": "string"},
					"start":    {"type": "string"},
					"end":      {"type": "string"},
					"progress": {"type": "integer"},
					"color":    {"type": "string"},
					"tags":     {"type": "array", "items": {"type": "string"}}
				}
			}
		},
		"legend": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["id"],
				"properties": {
					"id":    {"type": "string", "minLength": 1},
					"color": {"type": "string"},
					"label": {"type": "string"}
				}
			}
		},
		"settings": {
			"type": "object",
			"properties": {
				"startDate": {"type": "string"},
				"endDate":   {"type": "string"}
			}
		},
		"ui": {"type": "object"}
	}
}`

var compiledSchema = mustCompileSchema()

func mustCompileSchema() *jsonschema.Schema {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("project.schema.json", strings.NewReader(documentSchema)); err != nil {
		panic(fmt.Sprintf("project schema resource: %v", err))
	}
	schema, err := compiler.Compile("project.schema.json")
	if err != nil {
		panic(fmt.Sprintf("project schema compile: %v", err))
	}
	return schema
}

// ImportResult is the outcome of parsing an import document. Per-field Has
// flags report which sections passed validation and should replace state;
// Notices carries a user-visible line for every rejected section.
type ImportResult struct {
	Tasks    []*models.Task
	Legend   []*models.LegendItem
	Settings *models.Settings
	UI       *models.UIPreferences

	HasTasks    bool
	HasLegend   bool
	HasSettings bool
	HasUI       bool

	Notices []string
}

// Parse validates and decodes an import document. It returns an error only
// when the payload is not a JSON object at all; individual malformed
// sections are dropped with a notice while the rest import normally.
func Parse(data []byte) (*ImportResult, error) {
	var instance any
	if err := json.Unmarshal(data, &instance); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	raw, ok := instance.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("project document must be a JSON object")
	}

	rejected := map[string]string{}
	if err := compiledSchema.Validate(instance); err != nil {
		collectRejectedFields(err, rejected)
	}

	result := &ImportResult{}
	for field, message := range rejected {
		result.Notices = append(result.Notices, fmt.Sprintf("ignored %q: %s", field, message))
	}

	decodeField := func(field string, dest any) bool {
		value, present := raw[field]
		if !present {
			return false
		}
		if _, bad := rejected[field]; bad {
			return false
		}
		data, err := json.Marshal(value)
		if err != nil {
			return false
		}
		return json.Unmarshal(data, dest) == nil
	}

	if decodeField("tasks", &result.Tasks) {
		result.HasTasks = true
		for _, task := range result.Tasks {
			task.Progress = models.ClampProgress(task.Progress)
		}
	}
	if decodeField("legend", &result.Legend) {
		result.HasLegend = true
	}
	var settings models.Settings
	if decodeField("settings", &settings) {
		result.Settings = &settings
		result.HasSettings = true
	}
	var ui models.UIPreferences
	if decodeField("ui", &ui) {
		result.UI = &ui
		result.HasUI = true
	}

	return result, nil
}

// collectRejectedFields maps schema violations to the top-level document
// field they occurred under.
func collectRejectedFields(err error, rejected map[string]string) {
	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return
	}
	if len(ve.Causes) == 0 {
		if field := topLevelField(ve.InstanceLocation); field != "" {
			if _, seen := rejected[field]; !seen {
				rejected[field] = ve.Message
			}
		}
		return
	}
	for _, cause := range ve.Causes {
		collectRejectedFields(cause, rejected)
	}
}

func topLevelField(location string) string {
	location = strings.TrimPrefix(location, "/")
	if location == "" {
		return ""
	}
	if idx := strings.IndexByte(location, '/'); idx >= 0 {
		return location[:idx]
	}
	return location
}
