package task

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/twodo/internal/cli"
	"github.com/thenoetrevino/twodo/internal/cli/handler"
)

// DeleteCmd returns the delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <task_id>",
		Short: "Delete a task",
		Long:  "Delete a task by ID (requires confirmation unless --force or --quiet).",
		Args:  cobra.ExactArgs(1),
		RunE:  handler.Command(handler.Func(runDelete)),
	}

	cmd.Flags().Bool("force", false, "Skip confirmation")
	addOutputFlags(cmd)

	return cmd
}

// cancelled is printed when the confirmation is declined
type cancelled struct {
	Cancelled bool `json:"cancelled"`
	Task      View `json:"task"`
}

func (c cancelled) Human() string {
	return "Deletion cancelled"
}

func runDelete(_ context.Context, c *cli.CLI, args *handler.Arguments) (any, error) {
	store := c.Store()

	task, err := cli.ResolveTask(store, args.Args[0])
	if err != nil {
		return nil, err
	}
	all := store.Tasks().All()

	if _, ok := store.RequestDelete(task.ID); !ok {
		return nil, cli.Fail(cli.ExitNotFound, "TASK_NOT_FOUND", fmt.Errorf("task %q not found", args.Args[0]))
	}

	// Ask for confirmation unless force or quiet mode
	confirmed := args.GetBool("force") || args.GetBool("quiet")
	if !confirmed {
		cmd := args.GetCmd()
		fmt.Fprintf(cmd.ErrOrStderr(), "Delete '%s'? (y/N): ", task.Text)
		var response string
		// an empty line is an error here; treat it as no
		_, _ = fmt.Fscanln(cmd.InOrStdin(), &response)
		response = strings.ToLower(strings.TrimSpace(response))
		confirmed = response == "y" || response == "yes"
	}

	if !store.ResolveDelete(confirmed) {
		return cancelled{Cancelled: true, Task: newView(task)}, nil
	}
	return newActionResult("deleted", task, all), nil
}
