// Package models defines the data structures shared across planline.
package models

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// DateFormat is the calendar date layout used everywhere in planline.
// Dates are stored as entered; parsing happens at the timeline layer so a
// malformed date degrades the affected computation instead of poisoning the
// whole task collection.
const DateFormat = "2006-01-02"

// Task is a single row on the chart.
type Task struct {
	// ID uniquely identifies the task. Assigned at creation, never reused.
	ID string `json:"id"`

	// Name is the display name of the task.
	Name string `json:"name"`

	// Start is the task's start date (YYYY-MM-DD). May be malformed; the
	// model does not enforce Start <= End.
	Start string `json:"start"`

	// End is the task's end date (YYYY-MM-DD).
	End string `json:"end"`

	// Progress is the completion percentage, clamped to [0,100].
	Progress int `json:"progress"`

	// Color is the bar color (hex, e.g. "#1976d2").
	Color string `json:"color"`

	// Tags are free-form labels used for filtering.
	Tags []string `json:"tags"`
}

// DefaultTaskColor is used when a task is created without a color.
const DefaultTaskColor = "#1976d2"

// NewTask creates a task with a fresh ID and normalized fields.
func NewTask(name, start, end, color string, progress int, tags []string) *Task {
	if color == "" {
		color = DefaultTaskColor
	}
	return &Task{
		ID:       NewID(),
		Name:     name,
		Start:    start,
		End:      end,
		Progress: ClampProgress(progress),
		Color:    color,
		Tags:     normalizeTags(tags),
	}
}

// NewID returns a fresh unique task identifier.
func NewID() string {
	return uuid.New().String()
}

// Validate checks the fields a task needs before it can be stored.
func (t *Task) Validate() error {
	if strings.TrimSpace(t.Name) == "" {
		return fmt.Errorf("task name is required")
	}
	if t.Start == "" {
		return fmt.Errorf("task start date is required")
	}
	if t.End == "" {
		return fmt.Errorf("task end date is required")
	}
	if t.Progress < 0 || t.Progress > 100 {
		return fmt.Errorf("task progress must be in [0,100], got %d", t.Progress)
	}
	return nil
}

// Clone returns a deep copy of the task.
func (t *Task) Clone() *Task {
	clone := *t
	if t.Tags != nil {
		clone.Tags = make([]string, len(t.Tags))
		copy(clone.Tags, t.Tags)
	}
	return &clone
}

// HasTag reports whether any of the task's tags contains the given value,
// case-insensitively.
func (t *Task) HasTag(tag string) bool {
	needle := strings.ToLower(strings.TrimSpace(tag))
	if needle == "" {
		return false
	}
	for _, candidate := range t.Tags {
		if strings.Contains(strings.ToLower(candidate), needle) {
			return true
		}
	}
	return false
}

func normalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag != "" {
			out = append(out, tag)
		}
	}
	return out
}
