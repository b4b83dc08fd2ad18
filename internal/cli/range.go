package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/planline/planline/internal/models"
	"github.com/planline/planline/internal/store"
	"github.com/planline/planline/internal/timeline"
)

func init() {
	rangeCmd.AddCommand(rangeShowCmd, rangeSetCmd)
	rootCmd.AddCommand(rangeCmd)
}

var rangeCmd = &cobra.Command{
	Use:   "range",
	Short: "Manage the visible date range",
}

var rangeShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show configured and effective date range",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		database, err := openDatabase(ctx)
		if err != nil {
			return err
		}
		defer database.Close()

		prefs := store.NewPrefRepository(database)
		settings := loadSettings(ctx, prefs)
		tasks, err := store.NewTaskRepository(database).List(ctx)
		if err != nil {
			return err
		}

		fmt.Printf("Configured: %s .. %s\n", settings.StartDate, settings.EndDate)
		rng, ok := timeline.Resolve(settings, tasks)
		if !ok {
			fmt.Println("Effective:  (nothing to render)")
			return nil
		}
		fmt.Printf("Effective:  %s .. %s (%d days)\n",
			rng.Start.Format(models.DateFormat), rng.End.Format(models.DateFormat),
			rng.TotalDays())
		return nil
	},
}

var rangeSetCmd = &cobra.Command{
	Use:   "set <start> <end>",
	Short: "Set the visible date range",
	Long: `Set the configured chart bounds. Inverted bounds are swapped rather
than rejected.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		start, end := args[0], args[1]
		if _, ok := timeline.ParseDate(start); !ok {
			return fmt.Errorf("invalid start date %q", start)
		}
		if _, ok := timeline.ParseDate(end); !ok {
			return fmt.Errorf("invalid end date %q", end)
		}
		if end < start {
			start, end = end, start
		}

		ctx := context.Background()
		database, err := openDatabase(ctx)
		if err != nil {
			return err
		}
		defer database.Close()

		settings := models.Settings{StartDate: start, EndDate: end}
		if err := store.NewPrefRepository(database).SaveSettings(ctx, settings); err != nil {
			return err
		}
		fmt.Printf("Range set to %s .. %s\n", start, end)
		return nil
	},
}
