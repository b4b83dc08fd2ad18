package timeline

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/planline/planline/internal/models"
)

func TestDragStartDropCycle(t *testing.T) {
	canonical := []*models.Task{task("a", "", ""), task("b", "", ""), task("c", "", "")}
	var drag Drag

	require.True(t, drag.Start("c", DragContextRow))
	require.True(t, drag.Active())
	require.Equal(t, "c", drag.SourceID())
	require.Equal(t, DragContextRow, drag.Context())

	out := drag.Drop(canonical, canonical, "a")
	require.Equal(t, []string{"c", "a", "b"}, ids(out))
	require.False(t, drag.Active())
	require.Empty(t, drag.SourceID())
}

func TestDragSecondStartIgnored(t *testing.T) {
	var drag Drag
	require.True(t, drag.Start("a", DragContextRow))
	require.False(t, drag.Start("b", DragContextBar))
	require.Equal(t, "a", drag.SourceID())
	require.Equal(t, DragContextRow, drag.Context())
}

func TestDragStartEmptySourceRejected(t *testing.T) {
	var drag Drag
	require.False(t, drag.Start("", DragContextRow))
	require.False(t, drag.Active())
}

func TestDragCancelResets(t *testing.T) {
	var drag Drag
	require.True(t, drag.Start("a", DragContextBar))
	drag.Cancel()
	require.False(t, drag.Active())

	// A fresh gesture may start after cancellation.
	require.True(t, drag.Start("b", DragContextRow))
}

func TestDragDropWithoutActiveGestureNoOp(t *testing.T) {
	canonical := []*models.Task{task("a", "", ""), task("b", "", "")}
	var drag Drag

	out := drag.Drop(canonical, canonical, "a")
	require.Equal(t, ids(canonical), ids(out))
}

func TestDragDropOnNoOpStillResets(t *testing.T) {
	canonical := []*models.Task{task("a", "", ""), task("b", "", "")}
	var drag Drag

	require.True(t, drag.Start("a", DragContextRow))
	out := drag.Drop(canonical, canonical, "a")
	require.Equal(t, ids(canonical), ids(out))
	require.False(t, drag.Active())
}
