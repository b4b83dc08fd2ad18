package timeline

import (
	"strings"

	"github.com/planline/planline/internal/models"
)

// Filter selects which tasks are visible on the chart.
type Filter struct {
	// Search is a case-insensitive substring matched against task name
	// and tags.
	Search string

	// Tag restricts to tasks whose tags contain this value,
	// case-insensitively.
	Tag string
}

// IsEmpty reports whether the filter passes every task through.
func (f Filter) IsEmpty() bool {
	return strings.TrimSpace(f.Search) == "" && strings.TrimSpace(f.Tag) == ""
}

// Matches reports whether a single task passes the filter.
func (f Filter) Matches(task *models.Task) bool {
	if task == nil {
		return false
	}
	if tag := strings.TrimSpace(f.Tag); tag != "" && !task.HasTag(tag) {
		return false
	}
	if search := strings.TrimSpace(f.Search); search != "" && !MatchesSearch(task, search) {
		return false
	}
	return true
}

// Visible returns the filtered subsequence of tasks in canonical order.
func Visible(tasks []*models.Task, f Filter) []*models.Task {
	if f.IsEmpty() {
		out := make([]*models.Task, len(tasks))
		copy(out, tasks)
		return out
	}
	out := make([]*models.Task, 0, len(tasks))
	for _, task := range tasks {
		if f.Matches(task) {
			out = append(out, task)
		}
	}
	return out
}

// MatchesSearch reports whether the task's name or any tag contains the
// query, case-insensitively. Used both for filtering and for highlighting
// matching rows.
func MatchesSearch(task *models.Task, query string) bool {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" || task == nil {
		return false
	}
	if strings.Contains(strings.ToLower(task.Name), query) {
		return true
	}
	for _, tag := range task.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	return false
}
