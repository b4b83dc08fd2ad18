package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/planline/planline/internal/models"
)

// Legend repository errors.
var (
	ErrLegendItemNotFound = errors.New("legend item not found")
)

// LegendRepository persists the chart legend.
type LegendRepository struct {
	db *DB
}

// NewLegendRepository creates a new LegendRepository.
func NewLegendRepository(db *DB) *LegendRepository {
	return &LegendRepository{db: db}
}

// Create appends a legend item.
func (r *LegendRepository) Create(ctx context.Context, item *models.LegendItem) error {
	if item.ID == "" {
		item.ID = models.NewID()
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO legend_items (id, color, label, position)
		VALUES (?, ?, ?, (SELECT COALESCE(MAX(position), -1) + 1 FROM legend_items))
	`, item.ID, item.Color, item.Label)
	if err != nil {
		return fmt.Errorf("failed to insert legend item: %w", err)
	}
	return nil
}

// List returns all legend items in display order.
func (r *LegendRepository) List(ctx context.Context) ([]*models.LegendItem, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, color, label FROM legend_items ORDER BY position, id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query legend: %w", err)
	}
	defer rows.Close()

	var items []*models.LegendItem
	for rows.Next() {
		var item models.LegendItem
		if err := rows.Scan(&item.ID, &item.Color, &item.Label); err != nil {
			return nil, fmt.Errorf("failed to scan legend item: %w", err)
		}
		items = append(items, &item)
	}
	return items, rows.Err()
}

// Delete removes a legend item by id.
func (r *LegendRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM legend_items WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete legend item: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return ErrLegendItemNotFound
	}
	return nil
}

// ReplaceAll swaps the whole legend for the given items, used by import.
func (r *LegendRepository) ReplaceAll(ctx context.Context, items []*models.LegendItem) error {
	return r.db.TransactionWithRetry(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM legend_items`); err != nil {
			return fmt.Errorf("failed to clear legend: %w", err)
		}
		for i, item := range items {
			if item == nil {
				continue
			}
			if item.ID == "" {
				item.ID = models.NewID()
			}
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO legend_items (id, color, label, position)
				VALUES (?, ?, ?, ?)
			`, item.ID, item.Color, item.Label, i); err != nil {
				return fmt.Errorf("failed to insert legend item: %w", err)
			}
		}
		return nil
	})
}
