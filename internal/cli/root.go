package cli

import (
	"github.com/alexanderramin/todo/internal/service"
	"github.com/spf13/cobra"
)

// App holds what the CLI commands need: the single list service and
// whether the process is attached to an interactive terminal.
type App struct {
	List        *service.TodoList
	Interactive bool
}

// NewRootCmd creates the top-level "todo" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:          "todo",
		Short:        "Personal todo list manager",
		SilenceUsage: true,
	}

	root.AddCommand(
		newAddCmd(app),
		newListCmd(app),
		newCompleteCmd(app),
		newRemoveCmd(app),
		newViewCmd(app),
	)

	return root
}
