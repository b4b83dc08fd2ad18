package store

import (
	"context"
	"errors"
	"testing"

	"github.com/planline/planline/internal/models"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := OpenInMemory()
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := db.Migrate(context.Background()); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestTaskRepositoryCreateAndList(t *testing.T) {
	ctx := context.Background()
	repo := NewTaskRepository(openTestDB(t))

	first := models.NewTask("Design", "2025-01-01", "2025-01-10", "#ff0000", 40, []string{"ux", "phase1"})
	second := models.NewTask("Build", "2025-01-11", "2025-02-20", "", 150, nil)

	if err := repo.Create(ctx, first); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := repo.Create(ctx, second); err != nil {
		t.Fatalf("Create: %v", err)
	}

	tasks, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(tasks) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(tasks))
	}
	if tasks[0].ID != first.ID || tasks[1].ID != second.ID {
		t.Fatalf("unexpected order: %s, %s", tasks[0].ID, tasks[1].ID)
	}
	if got := tasks[0].Tags; len(got) != 2 || got[0] != "ux" || got[1] != "phase1" {
		t.Fatalf("tags did not round-trip: %v", got)
	}
	if tasks[1].Progress != 100 {
		t.Fatalf("progress not clamped: %d", tasks[1].Progress)
	}
	if tasks[1].Color != models.DefaultTaskColor {
		t.Fatalf("default color not applied: %s", tasks[1].Color)
	}
}

func TestTaskRepositoryUpdate(t *testing.T) {
	ctx := context.Background()
	repo := NewTaskRepository(openTestDB(t))

	task := models.NewTask("Design", "2025-01-01", "2025-01-10", "", 0, nil)
	if err := repo.Create(ctx, task); err != nil {
		t.Fatalf("Create: %v", err)
	}

	task.Name = "Design v2"
	task.Progress = 75
	task.Tags = []string{"revised"}
	if err := repo.Update(ctx, task); err != nil {
		t.Fatalf("Update: %v", err)
	}

	got, err := repo.Get(ctx, task.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Name != "Design v2" || got.Progress != 75 || len(got.Tags) != 1 {
		t.Fatalf("update not persisted: %+v", got)
	}
}

func TestTaskRepositoryUpdateMissing(t *testing.T) {
	ctx := context.Background()
	repo := NewTaskRepository(openTestDB(t))

	ghost := models.NewTask("Ghost", "2025-01-01", "2025-01-02", "", 0, nil)
	if err := repo.Update(ctx, ghost); !errors.Is(err, ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound, got %v", err)
	}
}

func TestTaskRepositoryDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewTaskRepository(openTestDB(t))

	task := models.NewTask("Design", "2025-01-01", "2025-01-10", "", 0, nil)
	if err := repo.Create(ctx, task); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := repo.Delete(ctx, task.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := repo.Get(ctx, task.ID); !errors.Is(err, ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound, got %v", err)
	}
	if err := repo.Delete(ctx, task.ID); !errors.Is(err, ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound on double delete, got %v", err)
	}
}

func TestTaskRepositorySaveOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewTaskRepository(openTestDB(t))

	var created []*models.Task
	for _, name := range []string{"a", "b", "c"} {
		task := models.NewTask(name, "2025-01-01", "2025-01-02", "", 0, nil)
		if err := repo.Create(ctx, task); err != nil {
			t.Fatalf("Create: %v", err)
		}
		created = append(created, task)
	}

	reordered := []*models.Task{created[2], created[0], created[1]}
	if err := repo.SaveOrder(ctx, reordered); err != nil {
		t.Fatalf("SaveOrder: %v", err)
	}

	tasks, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	for i, want := range []string{"c", "a", "b"} {
		if tasks[i].Name != want {
			t.Fatalf("position %d: expected %s, got %s", i, want, tasks[i].Name)
		}
	}
}

func TestTaskRepositoryReplaceAll(t *testing.T) {
	ctx := context.Background()
	repo := NewTaskRepository(openTestDB(t))

	old := models.NewTask("old", "2025-01-01", "2025-01-02", "", 0, nil)
	if err := repo.Create(ctx, old); err != nil {
		t.Fatalf("Create: %v", err)
	}

	incoming := []*models.Task{
		models.NewTask("x", "2025-02-01", "2025-02-05", "", 10, []string{"imported"}),
		models.NewTask("y", "2025-02-06", "2025-02-10", "", 20, nil),
	}
	if err := repo.ReplaceAll(ctx, incoming); err != nil {
		t.Fatalf("ReplaceAll: %v", err)
	}

	tasks, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(tasks) != 2 || tasks[0].Name != "x" || tasks[1].Name != "y" {
		t.Fatalf("replace did not take: %+v", tasks)
	}
}

func TestTaskRepositoryMalformedTagsDegrade(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	repo := NewTaskRepository(db)

	task := models.NewTask("corrupt", "2025-01-01", "2025-01-02", "", 0, []string{"ok"})
	if err := repo.Create(ctx, task); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := db.ExecContext(ctx,
		`UPDATE tasks SET tags_json = 'not json' WHERE id = ?`, task.ID); err != nil {
		t.Fatalf("corrupt row: %v", err)
	}

	got, err := repo.Get(ctx, task.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Tags != nil {
		t.Fatalf("expected corrupt tags to degrade to nil, got %v", got.Tags)
	}
}
