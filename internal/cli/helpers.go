package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/thenoetrevino/twodo/internal/models"
	"github.com/thenoetrevino/twodo/internal/services/todo"
)

// shortIDLength is the minimum id prefix shown to users
const shortIDLength = 8

// ResolveTask expands an id prefix and returns the task.
// Unknown ids exit with ExitNotFound, ambiguous prefixes with ExitUsage.
func ResolveTask(store *todo.Store, prefix string) (models.Task, error) {
	id, err := store.ResolveID(prefix)
	switch {
	case errors.Is(err, todo.ErrAmbiguousID):
		return models.Task{}, Fail(ExitUsage, "AMBIGUOUS_ID", err).
			WithSuggestion("Give more characters of the id")
	case err != nil:
		return models.Task{}, Fail(ExitNotFound, "TASK_NOT_FOUND", fmt.Errorf("task %q not found", prefix)).
			WithSuggestion("Run 'twodo list --all' to see task ids")
	}

	task, ok := store.Task(id)
	if !ok {
		return models.Task{}, Fail(ExitNotFound, "TASK_NOT_FOUND", fmt.Errorf("task %q not found", prefix))
	}
	return task, nil
}

// ParseCategory parses a category argument, exiting with ExitValidation when unknown
func ParseCategory(s string) (models.Category, error) {
	category, err := models.ParseCategory(s)
	if err != nil {
		return models.CategoryWork, Fail(ExitValidation, "INVALID_CATEGORY", err).
			WithSuggestion("Use one of: work, travel")
	}
	return category, nil
}

// JoinText joins positional arguments into task text.
// Blank text exits with ExitUsage.
func JoinText(args []string) (string, error) {
	text := strings.TrimSpace(strings.Join(args, " "))
	if text == "" {
		return "", Fail(ExitUsage, "INVALID_TEXT", errors.New("task text must not be blank"))
	}
	return text, nil
}

// ShortID returns the shortest prefix of id, at least shortIDLength long,
// that no other task in tasks shares
func ShortID(id string, tasks []models.Task) string {
	n := min(shortIDLength, len(id))
	for _, other := range tasks {
		if other.ID == id {
			continue
		}
		if shared := commonPrefixLen(id, other.ID); shared >= n {
			n = min(shared+1, len(id))
		}
	}
	return id[:n]
}

func commonPrefixLen(a, b string) int {
	n := 0
	for n < len(a) && n < len(b) && a[n] == b[n] {
		n++
	}
	return n
}
