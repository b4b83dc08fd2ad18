package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/planline/planline/internal/models"
)

// Task repository errors.
var (
	ErrTaskNotFound = errors.New("task not found")
)

// TaskRepository persists the canonical task collection. Listing order is
// the canonical chart order, maintained through the position column.
type TaskRepository struct {
	db *DB
}

// NewTaskRepository creates a new TaskRepository.
func NewTaskRepository(db *DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// Create appends a task at the end of the canonical order.
func (r *TaskRepository) Create(ctx context.Context, task *models.Task) error {
	if err := task.Validate(); err != nil {
		return fmt.Errorf("invalid task: %w", err)
	}
	if task.ID == "" {
		task.ID = models.NewID()
	}

	tagsJSON, err := marshalTags(task.Tags)
	if err != nil {
		return err
	}

	now := time.Now().UTC().Format(time.RFC3339)
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO tasks (
			id, name, start_date, end_date, progress, color, tags_json,
			position, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?,
			(SELECT COALESCE(MAX(position), -1) + 1 FROM tasks), ?, ?)
	`,
		task.ID, task.Name, task.Start, task.End,
		models.ClampProgress(task.Progress), task.Color, tagsJSON,
		now, now,
	)
	if err != nil {
		return fmt.Errorf("failed to insert task: %w", err)
	}
	return nil
}

// Get retrieves a task by id.
func (r *TaskRepository) Get(ctx context.Context, id string) (*models.Task, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, start_date, end_date, progress, color, tags_json
		FROM tasks WHERE id = ?
	`, id)

	task, err := scanTask(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrTaskNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	return task, nil
}

// List returns all tasks in canonical order.
func (r *TaskRepository) List(ctx context.Context) ([]*models.Task, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, start_date, end_date, progress, color, tags_json
		FROM tasks ORDER BY position, id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query tasks: %w", err)
	}
	defer rows.Close()

	var tasks []*models.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, task)
	}
	return tasks, rows.Err()
}

// Update replaces a task's editable fields.
func (r *TaskRepository) Update(ctx context.Context, task *models.Task) error {
	if err := task.Validate(); err != nil {
		return fmt.Errorf("invalid task: %w", err)
	}

	tagsJSON, err := marshalTags(task.Tags)
	if err != nil {
		return err
	}

	result, err := r.db.ExecContext(ctx, `
		UPDATE tasks
		SET name = ?, start_date = ?, end_date = ?, progress = ?, color = ?,
			tags_json = ?, updated_at = ?
		WHERE id = ?
	`,
		task.Name, task.Start, task.End, models.ClampProgress(task.Progress),
		task.Color, tagsJSON, time.Now().UTC().Format(time.RFC3339), task.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return ErrTaskNotFound
	}
	return nil
}

// Delete removes a task by id.
func (r *TaskRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return ErrTaskNotFound
	}
	return nil
}

// SaveOrder rewrites the canonical order to match the given sequence. Tasks
// absent from the sequence keep their rows but sort after the ordered ones.
func (r *TaskRepository) SaveOrder(ctx context.Context, ordered []*models.Task) error {
	return r.db.TransactionWithRetry(ctx, func(tx *sql.Tx) error {
		for i, task := range ordered {
			if task == nil {
				continue
			}
			if _, err := tx.ExecContext(ctx,
				`UPDATE tasks SET position = ? WHERE id = ?`, i, task.ID); err != nil {
				return fmt.Errorf("failed to update position: %w", err)
			}
		}
		return nil
	})
}

// ReplaceAll swaps the whole collection for the given tasks, used by import.
func (r *TaskRepository) ReplaceAll(ctx context.Context, tasks []*models.Task) error {
	return r.db.TransactionWithRetry(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM tasks`); err != nil {
			return fmt.Errorf("failed to clear tasks: %w", err)
		}
		now := time.Now().UTC().Format(time.RFC3339)
		for i, task := range tasks {
			if task == nil {
				continue
			}
			if task.ID == "" {
				task.ID = models.NewID()
			}
			tagsJSON, err := marshalTags(task.Tags)
			if err != nil {
				return err
			}
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO tasks (
					id, name, start_date, end_date, progress, color,
					tags_json, position, created_at, updated_at
				) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
			`,
				task.ID, task.Name, task.Start, task.End,
				models.ClampProgress(task.Progress), task.Color, tagsJSON,
				i, now, now,
			); err != nil {
				return fmt.Errorf("failed to insert task: %w", err)
			}
		}
		return nil
	})
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (*models.Task, error) {
	var task models.Task
	var tagsJSON sql.NullString

	if err := row.Scan(&task.ID, &task.Name, &task.Start, &task.End,
		&task.Progress, &task.Color, &tagsJSON); err != nil {
		return nil, err
	}

	if tagsJSON.Valid && tagsJSON.String != "" {
		// Malformed stored tags degrade to no tags rather than failing
		// the whole listing.
		if err := json.Unmarshal([]byte(tagsJSON.String), &task.Tags); err != nil {
			task.Tags = nil
		}
	}
	return &task, nil
}

func marshalTags(tags []string) (*string, error) {
	if len(tags) == 0 {
		return nil, nil
	}
	data, err := json.Marshal(tags)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal tags: %w", err)
	}
	s := string(data)
	return &s, nil
}
