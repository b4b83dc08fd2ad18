package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/planline/planline/internal/models"
	"github.com/planline/planline/internal/render"
	"github.com/planline/planline/internal/store"
	"github.com/planline/planline/internal/timeline"
)

var (
	showZoom     string
	showSearch   string
	showTag      string
	showWidth    int
	showDateLine bool
)

func init() {
	showCmd.Flags().StringVar(&showZoom, "zoom", "", "zoom level (day, week, month, quarter)")
	showCmd.Flags().StringVar(&showSearch, "search", "", "filter by name/tag substring")
	showCmd.Flags().StringVar(&showTag, "tag", "", "filter by tag")
	showCmd.Flags().IntVar(&showWidth, "width", 0, "output width in columns (default: terminal width)")
	showCmd.Flags().BoolVar(&showDateLine, "show-date", true, "print today's date above the chart")
	rootCmd.AddCommand(showCmd)
}

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the chart",
	Long:  "Render the Gantt chart to stdout, the print output of planline.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		database, err := openDatabase(ctx)
		if err != nil {
			return err
		}
		defer database.Close()

		prefs := store.NewPrefRepository(database)
		tasks, err := store.NewTaskRepository(database).List(ctx)
		if err != nil {
			return err
		}
		legend, err := store.NewLegendRepository(database).List(ctx)
		if err != nil {
			return err
		}
		settings := loadSettings(ctx, prefs)
		ui, err := prefs.UIPreferences(ctx)
		if err != nil {
			ui = models.DefaultUIPreferences()
		}

		zoom := ui.Zoom
		if showZoom != "" {
			zoom, err = models.ParseZoomLevel(showZoom)
			if err != nil {
				return err
			}
		}

		width := showWidth
		if width <= 0 {
			width = 100
			if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
				width = w
			}
		}

		showDate := ui.PrintShowDate && showDateLine
		if cmd.Flags().Changed("show-date") {
			showDate = showDateLine
		}

		out := render.Chart(tasks, settings, legend, render.Options{
			Zoom:     zoom,
			Filter:   timeline.Filter{Search: showSearch, Tag: showTag},
			Now:      time.Now(),
			Width:    width,
			ShowDate: showDate,
			Bundle:   activeBundle(ctx, prefs),
			Theme:    ui.Theme,
		})
		fmt.Print(out)
		return nil
	},
}
