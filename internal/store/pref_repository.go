package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/planline/planline/internal/models"
)

// Preference keys. Stable names: renaming one silently resets the stored
// value to its default.
const (
	prefKeySettings = "settings"
	prefKeyUI       = "ui"
)

// PrefRepository persists settings and UI preferences as JSON values in a
// key-value table. Malformed stored values are discarded in favor of
// defaults, never surfaced as errors.
type PrefRepository struct {
	db *DB
}

// NewPrefRepository creates a new PrefRepository.
func NewPrefRepository(db *DB) *PrefRepository {
	return &PrefRepository{db: db}
}

// Settings returns the stored chart bounds, or defaults when absent or
// malformed.
func (r *PrefRepository) Settings(ctx context.Context) (models.Settings, error) {
	raw, ok, err := r.load(ctx, prefKeySettings)
	if err != nil {
		return models.DefaultSettings(), err
	}
	settings := models.DefaultSettings()
	if ok {
		var stored models.Settings
		if jsonErr := json.Unmarshal([]byte(raw), &stored); jsonErr == nil {
			settings = stored
		}
	}
	return settings, nil
}

// SaveSettings stores the chart bounds.
func (r *PrefRepository) SaveSettings(ctx context.Context, settings models.Settings) error {
	return r.save(ctx, prefKeySettings, settings)
}

// UIPreferences returns the stored view preferences, or defaults when absent
// or malformed. An invalid stored zoom level also falls back to the default.
func (r *PrefRepository) UIPreferences(ctx context.Context) (models.UIPreferences, error) {
	raw, ok, err := r.load(ctx, prefKeyUI)
	if err != nil {
		return models.DefaultUIPreferences(), err
	}
	prefs := models.DefaultUIPreferences()
	if ok {
		var stored models.UIPreferences
		if jsonErr := json.Unmarshal([]byte(raw), &stored); jsonErr == nil {
			prefs = stored
		}
	}
	if !prefs.Zoom.Valid() {
		prefs.Zoom = models.ZoomDay
	}
	if prefs.Lang == "" {
		prefs.Lang = models.DefaultUIPreferences().Lang
	}
	return prefs, nil
}

// SaveUIPreferences stores the view preferences.
func (r *PrefRepository) SaveUIPreferences(ctx context.Context, prefs models.UIPreferences) error {
	return r.save(ctx, prefKeyUI, prefs)
}

// load returns the raw stored JSON for key; ok is false when the key is
// absent. A value that no longer unmarshals is treated by callers as absent.
func (r *PrefRepository) load(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := r.db.QueryRowContext(ctx,
		`SELECT value_json FROM prefs WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to load preference %q: %w", key, err)
	}
	return value, true, nil
}

func (r *PrefRepository) save(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal preference %q: %w", key, err)
	}
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO prefs (key, value_json) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value_json = excluded.value_json
	`, key, string(data))
	if err != nil {
		return fmt.Errorf("failed to save preference %q: %w", key, err)
	}
	return nil
}
