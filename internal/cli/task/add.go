package task

import (
	"context"
	"errors"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/twodo/internal/cli"
	"github.com/thenoetrevino/twodo/internal/cli/handler"
)

// AddCmd returns the add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <text...>",
		Short: "Add a task to the active list",
		Long: `Add a task. With --category the active list is switched first,
just like pressing tab in the TUI.

Examples:
  twodo add Buy milk
  twodo add --category travel Book flight

  # Quiet mode for bash capture
  ID=$(twodo add Call Bob --quiet)
`,
		Args: cobra.MinimumNArgs(1),
		RunE: handler.Command(handler.Func(runAdd)),
	}

	cmd.Flags().String("category", "", "Switch to this list before adding: work or travel")
	addOutputFlags(cmd)

	return cmd
}

func runAdd(_ context.Context, c *cli.CLI, args *handler.Arguments) (any, error) {
	store := c.Store()

	text, err := cli.JoinText(args.Args)
	if err != nil {
		return nil, err
	}

	if args.Has("category") {
		category, err := cli.ParseCategory(args.GetString("category", ""))
		if err != nil {
			return nil, err
		}
		store.SetCategory(category)
	}

	task, ok := store.AddTask(text)
	if !ok {
		return nil, cli.Fail(cli.ExitError, "ADD_ERROR", errors.New("task could not be added"))
	}

	return newActionResult("added", task, store.Tasks().All()), nil
}
