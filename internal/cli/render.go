package cli

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/thenoetrevino/twodo/internal/models"
)

// DefaultRenderWidth is the word wrap width for markdown output
const DefaultRenderWidth = 80

// Section is one titled list of tasks in list output
type Section struct {
	Category models.Category
	Tasks    []models.Task
}

// Cache glamour renderers by width to avoid expensive re-creation
var rendererCache sync.Map // map[int]*glamour.TermRenderer

func getRenderer(width int) (*glamour.TermRenderer, error) {
	if cached, ok := rendererCache.Load(width); ok {
		return cached.(*glamour.TermRenderer), nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}

	rendererCache.Store(width, renderer)
	return renderer, nil
}

// Markdown writes sections as a markdown checklist.
// all is used to compute short ids that stay unique across both lists.
func Markdown(sections []Section, all []models.Task) string {
	var b strings.Builder
	for i, section := range sections {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "## %s\n\n", section.Category.Title())
		if len(section.Tasks) == 0 {
			b.WriteString("_No tasks yet_\n")
			continue
		}
		for _, task := range section.Tasks {
			box := " "
			text := escapeMarkdown(task.Text)
			if task.IsComplete {
				box = "x"
				text = "~~" + text + "~~"
			}
			fmt.Fprintf(&b, "- [%s] %s `%s`\n", box, text, ShortID(task.ID, all))
		}
	}
	return b.String()
}

// RenderMarkdown renders sections through glamour.
// If glamour fails the raw markdown is returned.
func RenderMarkdown(sections []Section, all []models.Task, width int) string {
	md := Markdown(sections, all)

	renderer, err := getRenderer(width)
	if err != nil {
		return md
	}
	rendered, err := renderer.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimRight(rendered, "\n")
}

// RenderPlain renders sections without styling, one task per line
//
//	Work
//	  [ ] 0199a1b2  Buy milk
//	  [x] 0199a1c3  Call Bob
func RenderPlain(sections []Section, all []models.Task) string {
	var b strings.Builder
	for i, section := range sections {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(section.Category.Title() + "\n")
		if len(section.Tasks) == 0 {
			b.WriteString("  (no tasks)\n")
			continue
		}
		for _, task := range section.Tasks {
			box := "[ ]"
			if task.IsComplete {
				box = "[x]"
			}
			fmt.Fprintf(&b, "  %s %s  %s\n", box, ShortID(task.ID, all), task.Text)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`,
	"*", `\*`,
	"_", `\_`,
	"`", "\\`",
	"~", `\~`,
	"[", `\[`,
	"]", `\]`,
	"#", `\#`,
	"<", `\<`,
)

// escapeMarkdown keeps task text from being read as markdown syntax
func escapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}
