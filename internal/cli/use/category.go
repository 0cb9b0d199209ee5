// Package use holds the cli commands that set contextual information
// e.g., twodo use ...
package use

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/twodo/internal/cli"
	"github.com/thenoetrevino/twodo/internal/cli/handler"
	"github.com/thenoetrevino/twodo/internal/cli/styles"
	"github.com/thenoetrevino/twodo/internal/models"
)

// CategoryCmd returns the use subcommand
func CategoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "use [work|travel]",
		Short: "Switch the active list",
		Long: `Switch the list new tasks go to. The choice is saved and the TUI
opens on it next time. Without an argument the active list is shown.

Examples:
  twodo use travel
  twodo use
`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"work", "travel"},
		RunE:      handler.Command(handler.Func(runUse)),
	}

	cmd.Flags().Bool("json", false, "Output in JSON format")

	return cmd
}

type activeResult struct {
	Active  models.Category `json:"active"`
	Changed bool            `json:"changed"`
}

func (r activeResult) Human() string {
	return "Active list: " + styles.TitleStyle.Render(r.Active.Title())
}

func runUse(_ context.Context, c *cli.CLI, args *handler.Arguments) (any, error) {
	store := c.Store()

	if len(args.Args) == 0 {
		return activeResult{Active: store.ActiveCategory()}, nil
	}

	category, err := cli.ParseCategory(args.Args[0])
	if err != nil {
		return nil, err
	}
	changed := category != store.ActiveCategory()
	store.SetCategory(category)

	return activeResult{Active: category, Changed: changed}, nil
}
