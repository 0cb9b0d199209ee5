// Package task holds the cli commands that read and change tasks
// e.g., twodo add ..., twodo list
package task

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/twodo/internal/cli"
	"github.com/thenoetrevino/twodo/internal/cli/styles"
	"github.com/thenoetrevino/twodo/internal/models"
)

// Commands returns every task subcommand
func Commands() []*cobra.Command {
	return []*cobra.Command{
		ListCmd(),
		AddCmd(),
		DoneCmd(),
		EditCmd(),
		DeleteCmd(),
	}
}

// addOutputFlags adds the agent-friendly flags every command carries
func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")
}

// View is the JSON shape of a task
type View struct {
	ID         string          `json:"id"`
	Text       string          `json:"text"`
	Category   models.Category `json:"category"`
	IsComplete bool            `json:"isComplete"`
}

func newView(t models.Task) View {
	return View{ID: t.ID, Text: t.Text, Category: t.Category, IsComplete: t.IsComplete}
}

// GetID returns the full task id for quiet output
func (v View) GetID() string {
	return v.ID
}

// actionResult reports a single-task change
type actionResult struct {
	Action string `json:"action"`
	Task   View   `json:"task"`

	shortID string
}

func newActionResult(action string, task models.Task, all []models.Task) actionResult {
	return actionResult{Action: action, Task: newView(task), shortID: cli.ShortID(task.ID, all)}
}

func (r actionResult) GetID() string {
	return r.Task.ID
}

func (r actionResult) Human() string {
	return fmt.Sprintf("%s %s  %s %s",
		styles.SuccessStyle.Render(r.Action),
		styles.IDStyle.Render(r.shortID),
		r.Task.Text,
		styles.SubtitleStyle.Render("("+r.Task.Category.String()+")"))
}
