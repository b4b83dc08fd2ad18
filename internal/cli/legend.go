package cli

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/planline/planline/internal/models"
	"github.com/planline/planline/internal/store"
)

var legendAddColor string

func init() {
	legendAddCmd.Flags().StringVar(&legendAddColor, "color", "", "swatch color (hex)")
	legendCmd.AddCommand(legendAddCmd, legendListCmd, legendRmCmd)
	rootCmd.AddCommand(legendCmd)
}

var legendCmd = &cobra.Command{
	Use:   "legend",
	Short: "Manage the chart legend",
}

var legendAddCmd = &cobra.Command{
	Use:   "add <label>",
	Short: "Add a legend entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		database, err := openDatabase(ctx)
		if err != nil {
			return err
		}
		defer database.Close()

		item := models.NewLegendItem(legendAddColor, args[0])
		if err := store.NewLegendRepository(database).Create(ctx, item); err != nil {
			return err
		}
		fmt.Printf("Added legend entry %s (%s)\n", item.Label, item.ID)
		return nil
	},
}

var legendListCmd = &cobra.Command{
	Use:   "list",
	Short: "List legend entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		database, err := openDatabase(ctx)
		if err != nil {
			return err
		}
		defer database.Close()

		items, err := store.NewLegendRepository(database).List(ctx)
		if err != nil {
			return err
		}
		if len(items) == 0 {
			fmt.Println("Legend is empty.")
			return nil
		}

		writer := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
		fmt.Fprintln(writer, "ID\tCOLOR\tLABEL")
		for _, item := range items {
			fmt.Fprintf(writer, "%s\t%s\t%s\n", item.ID, item.Color, item.Label)
		}
		return writer.Flush()
	},
}

var legendRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a legend entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		database, err := openDatabase(ctx)
		if err != nil {
			return err
		}
		defer database.Close()

		if err := store.NewLegendRepository(database).Delete(ctx, args[0]); err != nil {
			return err
		}
		fmt.Printf("Deleted legend entry %s\n", args[0])
		return nil
	},
}
