package models

// Settings holds the user-declared visible bounds of the chart. The bounds
// may be narrower than the actual task span; the effective range always
// widens to cover every task.
type Settings struct {
	// StartDate is the configured left bound (YYYY-MM-DD).
	StartDate string `json:"startDate"`

	// EndDate is the configured right bound (YYYY-MM-DD).
	EndDate string `json:"endDate"`
}

// DefaultSettings returns the bounds a fresh project starts with.
func DefaultSettings() Settings {
	return Settings{
		StartDate: "2025-01-01",
		EndDate:   "2025-12-31",
	}
}

// UIPreferences are per-user view preferences, persisted alongside the
// project but never part of the exported document unless asked for.
type UIPreferences struct {
	// Lang selects the active locale ("en", "sk").
	Lang string `json:"lang"`

	// Theme is "light" or "dark".
	Theme string `json:"theme"`

	// Zoom is the last active zoom level.
	Zoom ZoomLevel `json:"zoom"`

	// PrintShowDate controls whether rendered output includes today's date.
	PrintShowDate bool `json:"printShowDate"`

	// ScrollPos is the horizontal scroll position in percent.
	ScrollPos float64 `json:"scrollPos"`
}

// DefaultUIPreferences returns the preferences a fresh install starts with.
func DefaultUIPreferences() UIPreferences {
	return UIPreferences{
		Lang:          "en",
		Theme:         "light",
		Zoom:          ZoomDay,
		PrintShowDate: true,
		ScrollPos:     0,
	}
}
