package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/planline/planline/internal/logging"
	"github.com/planline/planline/internal/models"
	"github.com/planline/planline/internal/project"
	"github.com/planline/planline/internal/render"
	"github.com/planline/planline/internal/store"
)

var (
	exportFormat    string
	exportOut       string
	exportIncludeUI bool
)

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "json", "output format (json, svg)")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output file (default: stdout for svg, gantt-project.json for json)")
	exportCmd.Flags().BoolVar(&exportIncludeUI, "include-ui", false, "include view preferences in the JSON document")
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the project",
	Long:  "Export tasks, settings and legend as a JSON document, or render the chart to SVG.",
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

		switch exportFormat {
		case "json":
			var ui *models.UIPreferences
			if exportIncludeUI {
				stored, err := prefs.UIPreferences(ctx)
				if err != nil {
					return err
				}
				ui = &stored
			}
			doc := project.Build(tasks, settings, legend, ui)

			out := exportOut
			if out == "" {
				out = project.DefaultFileName
			}
			file, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", out, err)
			}
			defer file.Close()
			if err := doc.Encode(file); err != nil {
				return err
			}
			fmt.Printf("Exported %d tasks to %s\n", len(tasks), out)
			return nil

		case "svg":
			ui, err := prefs.UIPreferences(ctx)
			if err != nil {
				ui = models.DefaultUIPreferences()
			}
			opts := render.SVGOptions{
				Zoom:     ui.Zoom,
				Now:      time.Now(),
				ShowDate: ui.PrintShowDate,
				Bundle:   activeBundle(ctx, prefs),
			}
			if exportOut == "" {
				return render.WriteSVG(os.Stdout, tasks, settings, legend, opts)
			}
			file, err := os.Create(exportOut)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", exportOut, err)
			}
			defer file.Close()
			if err := render.WriteSVG(file, tasks, settings, legend, opts); err != nil {
				return err
			}
			fmt.Printf("Exported chart to %s\n", exportOut)
			return nil

		default:
			return fmt.Errorf("unknown export format %q (json, svg)", exportFormat)
		}
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a project document",
	Long: `Import a JSON project document. Sections that fail validation are
skipped with a notice; valid sections replace the current state.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", args[0], err)
		}

		result, err := project.Parse(data)
		if err != nil {
			return err
		}
		for _, notice := range result.Notices {
			fmt.Fprintf(os.Stderr, "Warning: %s\n", notice)
		}

		ctx := context.Background()
		database, err := openDatabase(ctx)
		if err != nil {
			return err
		}
		defer database.Close()
		prefs := store.NewPrefRepository(database)

		if result.HasTasks {
			if err := store.NewTaskRepository(database).ReplaceAll(ctx, result.Tasks); err != nil {
				return err
			}
			fmt.Printf("Imported %d tasks\n", len(result.Tasks))
		}
		if result.HasLegend {
			if err := store.NewLegendRepository(database).ReplaceAll(ctx, result.Legend); err != nil {
				return err
			}
			fmt.Printf("Imported %d legend entries\n", len(result.Legend))
		}
		if result.HasSettings {
			if err := prefs.SaveSettings(ctx, *result.Settings); err != nil {
				return err
			}
			fmt.Println("Imported settings")
		}
		if result.HasUI {
			if err := prefs.SaveUIPreferences(ctx, *result.UI); err != nil {
				return err
			}
		}

		logging.Logger.Info().Str("file", args[0]).Msg("project imported")
		return nil
	},
}
