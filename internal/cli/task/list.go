package task

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/twodo/internal/cli"
	"github.com/thenoetrevino/twodo/internal/cli/handler"
	"github.com/thenoetrevino/twodo/internal/models"
)

// ListCmd returns the list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Long: `List the tasks of the active list, another list, or both.

Examples:
  # Active list as a rendered checklist
  twodo list

  # Both lists without styling
  twodo list --all --plain

  # JSON output for agents
  twodo list --category travel --json
`,
		Args: cobra.NoArgs,
		RunE: handler.Command(handler.Func(runList)),
	}

	cmd.Flags().String("category", "", "List to show: work or travel (defaults to the active list)")
	cmd.Flags().Bool("all", false, "Show both lists")
	cmd.Flags().Bool("plain", false, "Plain text output without markdown rendering")
	addOutputFlags(cmd)

	return cmd
}

// listResult is the output of list
type listResult struct {
	Active   models.Category `json:"active"`
	Sections []sectionView   `json:"lists"`

	sections []cli.Section
	all      []models.Task
	plain    bool
}

type sectionView struct {
	Category models.Category `json:"category"`
	Tasks    []View          `json:"tasks"`
}

func (r listResult) GetIDs() []string {
	var ids []string
	for _, s := range r.Sections {
		for _, t := range s.Tasks {
			ids = append(ids, t.ID)
		}
	}
	return ids
}

func (r listResult) Human() string {
	if r.plain {
		return cli.RenderPlain(r.sections, r.all)
	}
	return cli.RenderMarkdown(r.sections, r.all, cli.DefaultRenderWidth)
}

func runList(_ context.Context, c *cli.CLI, args *handler.Arguments) (any, error) {
	store := c.Store()

	categories := []models.Category{store.ActiveCategory()}
	switch {
	case args.GetBool("all"):
		categories = []models.Category{models.CategoryWork, models.CategoryTravel}
	case args.Has("category"):
		category, err := cli.ParseCategory(args.GetString("category", ""))
		if err != nil {
			return nil, err
		}
		categories = []models.Category{category}
	}

	result := listResult{
		Active: store.ActiveCategory(),
		all:    store.Tasks().All(),
		plain:  args.GetBool("plain"),
	}
	for _, category := range categories {
		tasks := store.VisibleIn(category)
		views := make([]View, 0, len(tasks))
		for _, t := range tasks {
			views = append(views, newView(t))
		}
		result.sections = append(result.sections, cli.Section{Category: category, Tasks: tasks})
		result.Sections = append(result.Sections, sectionView{Category: category, Tasks: views})
	}

	return result, nil
}
