package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/planline/planline/internal/logging"
	"github.com/planline/planline/internal/models"
	"github.com/planline/planline/internal/store"
	"github.com/planline/planline/internal/timeline"
)

var (
	taskAddStart    string
	taskAddEnd      string
	taskAddColor    string
	taskAddProgress int
	taskAddTags     string

	taskEditName     string
	taskEditStart    string
	taskEditEnd      string
	taskEditColor    string
	taskEditProgress int
	taskEditTags     string

	taskListSearch string
	taskListTag    string
)

func init() {
	taskAddCmd.Flags().StringVar(&taskAddStart, "start", "", "start date (YYYY-MM-DD)")
	taskAddCmd.Flags().StringVar(&taskAddEnd, "end", "", "end date (YYYY-MM-DD)")
	taskAddCmd.Flags().StringVar(&taskAddColor, "color", "", "bar color (hex)")
	taskAddCmd.Flags().IntVar(&taskAddProgress, "progress", 0, "progress percent (0-100)")
	taskAddCmd.Flags().StringVar(&taskAddTags, "tags", "", "comma-separated tags")
	_ = taskAddCmd.MarkFlagRequired("start")
	_ = taskAddCmd.MarkFlagRequired("end")

	taskEditCmd.Flags().StringVar(&taskEditName, "name", "", "new name")
	taskEditCmd.Flags().StringVar(&taskEditStart, "start", "", "new start date")
	taskEditCmd.Flags().StringVar(&taskEditEnd, "end", "", "new end date")
	taskEditCmd.Flags().StringVar(&taskEditColor, "color", "", "new bar color")
	taskEditCmd.Flags().IntVar(&taskEditProgress, "progress", -1, "new progress percent")
	taskEditCmd.Flags().StringVar(&taskEditTags, "tags", "", "new comma-separated tags")

	taskListCmd.Flags().StringVar(&taskListSearch, "search", "", "filter by name/tag substring")
	taskListCmd.Flags().StringVar(&taskListTag, "tag", "", "filter by tag")

	taskCmd.AddCommand(taskAddCmd, taskListCmd, taskEditCmd, taskRmCmd, taskMoveCmd)
	rootCmd.AddCommand(taskCmd)
}

var taskCmd = &cobra.Command{
	Use:   "task",
	Short: "Manage tasks",
}

var taskAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		database, err := openDatabase(ctx)
		if err != nil {
			return err
		}
		defer database.Close()

		task := models.NewTask(args[0], taskAddStart, taskAddEnd,
			taskAddColor, taskAddProgress, models.ParseTags(taskAddTags))
		if err := store.NewTaskRepository(database).Create(ctx, task); err != nil {
			return err
		}

		logging.Logger.Info().Str("task", task.ID).Msg("task created")
		fmt.Printf("Created task %s (%s)\n", task.Name, task.ID)
		return nil
	},
}

var taskListCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks in canonical order",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		database, err := openDatabase(ctx)
		if err != nil {
			return err
		}
		defer database.Close()

		tasks, err := store.NewTaskRepository(database).List(ctx)
		if err != nil {
			return err
		}
		visible := timeline.Visible(tasks, timeline.Filter{
			Search: taskListSearch,
			Tag:    taskListTag,
		})

		if len(visible) == 0 {
			fmt.Println("No tasks.")
			return nil
		}

		writer := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
		fmt.Fprintln(writer, "ID\tNAME\tSTART\tEND\tPROGRESS\tTAGS")
		for _, task := range visible {
			fmt.Fprintf(writer, "%s\t%s\t%s\t%s\t%d%%\t%s\n",
				task.ID, task.Name, task.Start, task.End,
				task.Progress, strings.Join(task.Tags, ","))
		}
		return writer.Flush()
	},
}

var taskEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		database, err := openDatabase(ctx)
		if err != nil {
			return err
		}
		defer database.Close()

		repo := store.NewTaskRepository(database)
		task, err := repo.Get(ctx, args[0])
		if err != nil {
			return err
		}

		if taskEditName != "" {
			task.Name = taskEditName
		}
		if taskEditStart != "" {
			task.Start = taskEditStart
		}
		if taskEditEnd != "" {
			task.End = taskEditEnd
		}
		if taskEditColor != "" {
			task.Color = taskEditColor
		}
		if taskEditProgress >= 0 {
			task.Progress = models.ClampProgress(taskEditProgress)
		}
		if cmd.Flags().Changed("tags") {
			task.Tags = models.ParseTags(taskEditTags)
		}

		if err := repo.Update(ctx, task); err != nil {
			return err
		}
		fmt.Printf("Updated task %s\n", task.ID)
		return nil
	},
}

var taskRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		database, err := openDatabase(ctx)
		if err != nil {
			return err
		}
		defer database.Close()

		if err := store.NewTaskRepository(database).Delete(ctx, args[0]); err != nil {
			return err
		}
		fmt.Printf("Deleted task %s\n", args[0])
		return nil
	},
}

var (
	taskMoveSearch string
	taskMoveTag    string
)

var taskMoveCmd = &cobra.Command{
	Use:   "move <source-id> <target-id>",
	Short: "Move a task before another task",
	Long: `Move a task to the position of another task, the command form of
dragging a row. When a filter is given the move is interpreted within the
filtered sequence, and tasks hidden by the filter keep their positions.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		database, err := openDatabase(ctx)
		if err != nil {
			return err
		}
		defer database.Close()

		repo := store.NewTaskRepository(database)
		tasks, err := repo.List(ctx)
		if err != nil {
			return err
		}
		visible := timeline.Visible(tasks, timeline.Filter{
			Search: taskMoveSearch,
			Tag:    taskMoveTag,
		})

		var drag timeline.Drag
		if !drag.Start(args[0], timeline.DragContextRow) {
			return fmt.Errorf("cannot start move for %q", args[0])
		}
		reordered := drag.Drop(tasks, visible, args[1])

		if err := repo.SaveOrder(ctx, reordered); err != nil {
			return err
		}
		fmt.Println("Order updated.")
		return nil
	},
}

func init() {
	taskMoveCmd.Flags().StringVar(&taskMoveSearch, "search", "", "interpret the move within this search filter")
	taskMoveCmd.Flags().StringVar(&taskMoveTag, "tag", "", "interpret the move within this tag filter")
}
