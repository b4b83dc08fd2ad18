package timeline

import "github.com/planline/planline/internal/models"

// Reorder applies a drag-based move within the visible sequence and derives
// the new canonical order. The dragged task is removed from its position in
// the visible sequence and reinserted at the drop target's position; the
// canonical order is then rebuilt so visible tasks follow the new visible
// sequence while filtered-out tasks keep their original slots.
//
// The operation is a no-op (the canonical order is returned unchanged) when
// the source id is empty, equals the target, or either id is not present in
// the visible sequence. Every id present before the operation is present
// after it, exactly once.
func Reorder(canonical, visible []*models.Task, sourceID, targetID string) []*models.Task {
	if sourceID == "" || sourceID == targetID {
		return canonical
	}

	sourceIdx, targetIdx := -1, -1
	for i, task := range visible {
		if task == nil {
			continue
		}
		switch task.ID {
		case sourceID:
			sourceIdx = i
		case targetID:
			targetIdx = i
		}
	}
	if sourceIdx < 0 || targetIdx < 0 {
		return canonical
	}

	// Rebuild the visible id sequence with the move applied.
	ids := make([]string, 0, len(visible))
	for i, task := range visible {
		if i != sourceIdx {
			ids = append(ids, task.ID)
		}
	}
	if targetIdx > len(ids) {
		targetIdx = len(ids)
	}
	ids = append(ids, "")
	copy(ids[targetIdx+1:], ids[targetIdx:])
	ids[targetIdx] = sourceID

	visibleSet := make(map[string]bool, len(visible))
	for _, task := range visible {
		visibleSet[task.ID] = true
	}

	// Walk the canonical order: visible slots take the next id from the
	// moved sequence, hidden tasks stay exactly where they were.
	byID := make(map[string]*models.Task, len(canonical))
	for _, task := range canonical {
		byID[task.ID] = task
	}

	out := make([]*models.Task, 0, len(canonical))
	next := 0
	for _, task := range canonical {
		if visibleSet[task.ID] && next < len(ids) {
			out = append(out, byID[ids[next]])
			next++
			continue
		}
		out = append(out, task)
	}
	return out
}
