package task

import (
	"context"
	"errors"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/twodo/internal/cli"
	"github.com/thenoetrevino/twodo/internal/cli/handler"
	"github.com/thenoetrevino/twodo/internal/services/todo"
)

// EditCmd returns the edit subcommand
func EditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit <task_id> <text...>",
		Short: "Replace a task's text",
		Long: `Replace the text of a task. Completion and list are kept.

Examples:
  twodo edit 0199a1b2 Buy oat milk
`,
		Args: cobra.MinimumNArgs(2),
		RunE: handler.Command(handler.Func(runEdit)),
	}

	addOutputFlags(cmd)

	return cmd
}

func runEdit(_ context.Context, c *cli.CLI, args *handler.Arguments) (any, error) {
	store := c.Store()

	task, err := cli.ResolveTask(store, args.Args[0])
	if err != nil {
		return nil, err
	}
	text, err := cli.JoinText(args.Args[1:])
	if err != nil {
		return nil, err
	}

	if err := store.BeginEdit(task.ID); err != nil {
		if errors.Is(err, todo.ErrTaskNotFound) {
			return nil, cli.Fail(cli.ExitNotFound, "TASK_NOT_FOUND", err)
		}
		return nil, err
	}
	store.UpdateDraft(text)
	store.CommitEdit()

	task, _ = store.Task(task.ID)
	return newActionResult("edited", task, store.Tasks().All()), nil
}
