package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/planline/planline/internal/tui"
)

func init() {
	rootCmd.AddCommand(uiCmd)
}

var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Launch the interactive chart",
	Long:  "Launch the interactive terminal chart with filtering, zoom and reordering.",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !hasTTY() {
			return fmt.Errorf("the interactive chart requires a terminal; use 'planline show' instead")
		}

		db, err := openDatabase(cmd.Context())
		if err != nil {
			return err
		}
		defer db.Close()

		tuiConfig := tui.Config{Locale: flagLocale}
		if cfg := GetConfig(); cfg != nil {
			tuiConfig.Theme = cfg.Chart.Theme
		}
		return tui.Run(db, tuiConfig)
	},
}

func hasTTY() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}
