// Package cli implements the planline command line interface.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/planline/planline/internal/config"
	"github.com/planline/planline/internal/i18n"
	"github.com/planline/planline/internal/logging"
	"github.com/planline/planline/internal/models"
	"github.com/planline/planline/internal/store"
)

var (
	cfg        *config.Config
	configFile string
	flagLocale string
)

var rootCmd = &cobra.Command{
	Use:   "planline",
	Short: "Gantt chart planning from the terminal",
	Long: `planline keeps a project plan as a list of dated tasks and renders it
as a Gantt chart: in the terminal, interactively, or as an SVG file.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loader := config.NewLoader()
		if configFile != "" {
			loader.SetConfigFile(configFile)
		}

		loaded, err := loader.Load()
		if err != nil {
			return err
		}
		cfg = loaded

		logging.Init(logging.Config{
			Level:        cfg.Logging.Level,
			Format:       cfg.Logging.Format,
			EnableCaller: cfg.Logging.EnableCaller,
		})
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path")
	rootCmd.PersistentFlags().StringVar(&flagLocale, "locale", "", "label language (en, sk)")
}

// Execute runs the CLI.
func Execute(version string) error {
	rootCmd.Version = version
	return rootCmd.Execute()
}

// GetConfig returns the loaded configuration, or defaults before loading.
func GetConfig() *config.Config {
	if cfg == nil {
		return config.DefaultConfig()
	}
	return cfg
}

// openDatabase opens and migrates the configured database.
func openDatabase(ctx context.Context) (*store.DB, error) {
	conf := GetConfig()
	if err := conf.EnsureDirectories(); err != nil {
		return nil, err
	}
	database, err := store.Open(conf.DatabasePath())
	if err != nil {
		return nil, err
	}
	if err := database.Migrate(ctx); err != nil {
		database.Close()
		return nil, err
	}
	return database, nil
}

// activeBundle resolves the label bundle from flag, stored preference, then
// config default.
func activeBundle(ctx context.Context, prefs *store.PrefRepository) *i18n.Bundle {
	if flagLocale != "" {
		return i18n.NewBundle(flagLocale)
	}
	if prefs != nil {
		if ui, err := prefs.UIPreferences(ctx); err == nil && ui.Lang != "" {
			return i18n.NewBundle(ui.Lang)
		}
	}
	return i18n.NewBundle(GetConfig().Chart.Locale)
}

// loadSettings returns stored bounds, falling back to the configured chart
// defaults when nothing is stored yet.
func loadSettings(ctx context.Context, prefs *store.PrefRepository) models.Settings {
	settings, err := prefs.Settings(ctx)
	if err != nil {
		logging.Logger.Warn().Err(err).Msg("failed to load settings, using defaults")
		chart := GetConfig().Chart
		return models.Settings{StartDate: chart.StartDate, EndDate: chart.EndDate}
	}
	return settings
}
