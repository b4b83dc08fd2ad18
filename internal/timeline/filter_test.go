package timeline

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/planline/planline/internal/models"
)

func taggedTask(id, name string, tags ...string) *models.Task {
	return &models.Task{ID: id, Name: name, Start: "2025-01-01", End: "2025-01-02", Tags: tags}
}

func TestVisibleEmptyFilterPassesEverything(t *testing.T) {
	tasks := []*models.Task{
		taggedTask("a", "Design"),
		taggedTask("b", "Build"),
	}
	out := Visible(tasks, Filter{})
	require.Len(t, out, 2)
	require.Equal(t, tasks[0], out[0])
	require.Equal(t, tasks[1], out[1])
}

func TestVisibleSearchMatchesNameAndTags(t *testing.T) {
	tasks := []*models.Task{
		taggedTask("a", "Design phase", "ux"),
		taggedTask("b", "Implementation", "backend"),
		taggedTask("c", "Review", "design"),
	}

	out := Visible(tasks, Filter{Search: "DESIGN"})
	require.Len(t, out, 2)
	require.Equal(t, "a", out[0].ID)
	require.Equal(t, "c", out[1].ID)
}

func TestVisibleTagFilter(t *testing.T) {
	tasks := []*models.Task{
		taggedTask("a", "One", "Backend", "urgent"),
		taggedTask("b", "Two", "frontend"),
		taggedTask("c", "Three", "backend-infra"),
	}

	out := Visible(tasks, Filter{Tag: "backend"})
	require.Len(t, out, 2)
	require.Equal(t, "a", out[0].ID)
	require.Equal(t, "c", out[1].ID)
}

func TestVisibleSearchAndTagCombine(t *testing.T) {
	tasks := []*models.Task{
		taggedTask("a", "API design", "backend"),
		taggedTask("b", "API rollout", "backend"),
		taggedTask("c", "API design", "frontend"),
	}

	out := Visible(tasks, Filter{Search: "design", Tag: "backend"})
	require.Len(t, out, 1)
	require.Equal(t, "a", out[0].ID)
}

func TestVisiblePreservesCanonicalOrder(t *testing.T) {
	tasks := []*models.Task{
		taggedTask("z", "alpha", "x"),
		taggedTask("y", "alpha two", "x"),
		taggedTask("x", "alpha three", "x"),
	}
	out := Visible(tasks, Filter{Search: "alpha"})
	require.Equal(t, []string{"z", "y", "x"}, []string{out[0].ID, out[1].ID, out[2].ID})
}

func TestMatchesSearchHighlighting(t *testing.T) {
	tk := taggedTask("a", "Ship release", "launch")
	require.True(t, MatchesSearch(tk, "ship"))
	require.True(t, MatchesSearch(tk, "LAUNCH"))
	require.False(t, MatchesSearch(tk, "design"))
	require.False(t, MatchesSearch(tk, "   "))
	require.False(t, MatchesSearch(nil, "ship"))
}
