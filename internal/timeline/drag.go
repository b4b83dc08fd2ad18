package timeline

import "github.com/planline/planline/internal/models"

// DragContext distinguishes which surface a drag gesture started on.
type DragContext string

const (
	DragContextRow DragContext = "row"
	DragContextBar DragContext = "bar"
)

// Drag is the single-active-at-a-time drag gesture state machine:
// Idle -> Dragging -> Idle (via Drop or Cancel). Starting a second drag
// while one is active is rejected, and the state is reset after every drop
// or cancellation regardless of whether the drop changed anything.
type Drag struct {
	active   bool
	sourceID string
	context  DragContext
}

// Active reports whether a drag gesture is in flight.
func (d *Drag) Active() bool {
	return d.active
}

// SourceID returns the id of the task being dragged, or "" when idle.
func (d *Drag) SourceID() string {
	if !d.active {
		return ""
	}
	return d.sourceID
}

// Context returns the surface the active drag started on.
func (d *Drag) Context() DragContext {
	return d.context
}

// Start begins a drag gesture. Returns false (and leaves the current state
// untouched) when a drag is already active or the source id is empty.
func (d *Drag) Start(sourceID string, context DragContext) bool {
	if d.active || sourceID == "" {
		return false
	}
	d.active = true
	d.sourceID = sourceID
	d.context = context
	return true
}

// Drop completes the gesture over the given target and returns the new
// canonical order. When no drag is active, or the drop resolves to a no-op,
// the canonical order comes back unchanged. The state machine always returns
// to idle.
func (d *Drag) Drop(canonical, visible []*models.Task, targetID string) []*models.Task {
	if !d.active {
		return canonical
	}
	sourceID := d.sourceID
	d.reset()
	return Reorder(canonical, visible, sourceID, targetID)
}

// Cancel abandons the active gesture, if any.
func (d *Drag) Cancel() {
	d.reset()
}

func (d *Drag) reset() {
	d.active = false
	d.sourceID = ""
	d.context = ""
}
