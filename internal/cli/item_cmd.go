package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/alexanderramin/todo/internal/cli/formatter"
	"github.com/alexanderramin/todo/internal/domain"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Priority binds straight to --priority.
var _ pflag.Value = (*domain.Priority)(nil)

func newAddCmd(app *App) *cobra.Command {
	var description, dueDate string
	priority := domain.DefaultPriority

	cmd := &cobra.Command{
		Use:   "add [title]",
		Short: "Add a new todo item",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			title := ""
			if len(args) == 1 {
				title = args[0]
			}
			if title == "" {
				if !app.Interactive {
					return errors.New("a title is required")
				}
				var err error
				title, description, dueDate, priority, err = runAddForm(description, dueDate, priority)
				if err != nil {
					return err
				}
			}

			// Date validation happens here, before the item exists.
			var due *time.Time
			if dueDate != "" {
				parsed, err := time.Parse(domain.DueDateLayout, dueDate)
				if err != nil {
					fmt.Fprintln(out, "Error: Invalid date format. Please use YYYY-MM-DD.")
					return nil
				}
				due = &parsed
			}

			item, err := app.List.Add(cmd.Context(), title, description, due, priority)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Added new todo item (ID: %d): %s\n", item.ID, item.Title)
			return nil
		},
	}

	cmd.Flags().StringVarP(&description, "description", "d", "", "Description of the todo item")
	cmd.Flags().StringVar(&dueDate, "due_date", "", "Due date (YYYY-MM-DD)")
	cmd.Flags().VarP(&priority, "priority", "p", "Priority (1: High, 2: Medium, 3: Low)")

	return cmd
}

func newListCmd(app *App) *cobra.Command {
	var showAll, interactive bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List todo items",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if interactive {
				if !app.Interactive {
					return errors.New("--interactive requires a terminal")
				}
				return runListTUI(cmd.Context(), app.List)
			}

			out := cmd.OutOrStdout()
			items := app.List.Items(showAll)
			if len(items) == 0 {
				fmt.Fprintln(out, "No todo items found.")
				return nil
			}
			fmt.Fprint(out, formatter.FormatList(items))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&showAll, "all", "a", false, "Show all items including completed")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Browse and edit items in an interactive list")

	return cmd
}

func newCompleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "complete ID",
		Short: "Mark an item as completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			id, ok := parseItemID(out, args[0])
			if !ok {
				return nil
			}

			done, err := app.List.Complete(cmd.Context(), id)
			if err != nil {
				return err
			}
			if !done {
				printNotFound(out, id)
				return nil
			}
			fmt.Fprintf(out, "Marked item %d as completed.\n", id)
			return nil
		},
	}
}

func newRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Remove a todo item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			id, ok := parseItemID(out, args[0])
			if !ok {
				return nil
			}

			removed, err := app.List.Remove(cmd.Context(), id)
			if err != nil {
				return err
			}
			if !removed {
				printNotFound(out, id)
				return nil
			}
			fmt.Fprintf(out, "Removed item with ID %d.\n", id)
			return nil
		},
	}
}

func newViewCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "view ID",
		Short: "View details of a specific todo item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			id, ok := parseItemID(out, args[0])
			if !ok {
				return nil
			}

			item := app.List.Get(id)
			if item == nil {
				printNotFound(out, id)
				return nil
			}
			fmt.Fprintln(out, formatter.RenderBox("Todo Item Details", formatter.FormatItem(*item)))
			return nil
		},
	}
}

// parseItemID converts a raw id argument; a bad id is a user-facing
// message, not a command error.
func parseItemID(out io.Writer, raw string) (int, bool) {
	id, err := strconv.Atoi(raw)
	if err != nil || id < 1 {
		fmt.Fprintf(out, "Error: Item ID must be a positive number, got %q.\n", raw)
		return 0, false
	}
	return id, true
}

func printNotFound(out io.Writer, id int) {
	fmt.Fprintf(out, "Error: Item with ID %d not found.\n", id)
}
