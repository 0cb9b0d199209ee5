package task

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/twodo/internal/cli"
	"github.com/thenoetrevino/twodo/internal/cli/handler"
)

// DoneCmd returns the done subcommand
func DoneCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "done <task_id>",
		Short: "Toggle a task's completion",
		Long: `Mark a task done, or open again if it already is.
Any unique prefix of the id works.

Examples:
  twodo done 0199a1b2
  twodo done 0199a1b2 --json
`,
		Args: cobra.ExactArgs(1),
		RunE: handler.Command(handler.Func(runDone)),
	}

	addOutputFlags(cmd)

	return cmd
}

func runDone(_ context.Context, c *cli.CLI, args *handler.Arguments) (any, error) {
	store := c.Store()

	task, err := cli.ResolveTask(store, args.Args[0])
	if err != nil {
		return nil, err
	}

	store.ToggleComplete(task.ID)
	task, _ = store.Task(task.ID)

	action := "reopened"
	if task.IsComplete {
		action = "completed"
	}
	return newActionResult(action, task, store.Tasks().All()), nil
}
