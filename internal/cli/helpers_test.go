package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/twodo/internal/models"
	"github.com/thenoetrevino/twodo/internal/services/todo"
)

func storeWith(t *testing.T, tasks ...models.Task) *todo.Store {
	t.Helper()
	collection, err := models.NewTaskCollection(tasks...)
	require.NoError(t, err)
	store := todo.New(nil)
	store.Restore(todo.Snapshot{Tasks: collection})
	return store
}

func TestResolveTask(t *testing.T) {
	store := storeWith(t,
		models.Task{ID: "abc123", Text: "one"},
		models.Task{ID: "abd456", Text: "two"},
	)

	task, err := ResolveTask(store, "abc")
	require.NoError(t, err)
	assert.Equal(t, "one", task.Text)

	_, err = ResolveTask(store, "ab")
	assert.Equal(t, ExitUsage, ExitCode(err))
	assert.ErrorIs(t, err, todo.ErrAmbiguousID)

	_, err = ResolveTask(store, "zzz")
	assert.Equal(t, ExitNotFound, ExitCode(err))
}

func TestParseCategory(t *testing.T) {
	category, err := ParseCategory("Travel")
	require.NoError(t, err)
	assert.Equal(t, models.CategoryTravel, category)

	_, err = ParseCategory("home")
	assert.Equal(t, ExitValidation, ExitCode(err))
	assert.ErrorIs(t, err, models.ErrInvalidCategory)
}

func TestJoinText(t *testing.T) {
	text, err := JoinText([]string{" Buy", "milk "})
	require.NoError(t, err)
	assert.Equal(t, "Buy milk", text)

	_, err = JoinText([]string{" ", ""})
	assert.Equal(t, ExitUsage, ExitCode(err))
}

func TestShortID(t *testing.T) {
	tasks := []models.Task{
		{ID: "0199a1b2c3d4-aaaa"},
		{ID: "0199a1b2c3ff-bbbb"},
		{ID: "77"},
	}

	assert.Equal(t, "0199a1b2c3d", ShortID(tasks[0].ID, tasks))
	assert.Equal(t, "0199a1b2c3f", ShortID(tasks[1].ID, tasks))
	assert.Equal(t, "77", ShortID("77", tasks))

	for _, task := range tasks {
		short := ShortID(task.ID, tasks)
		for _, other := range tasks {
			if other.ID != task.ID {
				assert.False(t, strings.HasPrefix(other.ID, short), "%s is not unique", short)
			}
		}
	}
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, ExitSuccess, ExitCode(nil))
	assert.Equal(t, ExitError, ExitCode(errors.New("boom")))
	assert.Equal(t, ExitNotFound, ExitCode(fmt.Errorf("wrapped: %w", Fail(ExitNotFound, "X", errors.New("gone")))))
}

func TestGetCLIFromContext(t *testing.T) {
	_, err := GetCLIFromContext(context.Background())
	assert.ErrorIs(t, err, ErrNoCLI)

	c := &CLI{}
	got, err := GetCLIFromContext(WithCLI(context.Background(), c))
	require.NoError(t, err)
	assert.Same(t, c, got)
}

func TestRenderPlain(t *testing.T) {
	tasks := []models.Task{
		{ID: "abc123", Text: "Buy milk", Category: models.CategoryWork},
		{ID: "xyz789", Text: "Call Bob", Category: models.CategoryWork, IsComplete: true},
	}
	out := RenderPlain([]Section{
		{Category: models.CategoryWork, Tasks: tasks},
		{Category: models.CategoryTravel},
	}, tasks)

	assert.Equal(t, "Work\n  [ ] abc123  Buy milk\n  [x] xyz789  Call Bob\n\nTravel\n  (no tasks)", out)
}

func TestMarkdown(t *testing.T) {
	tasks := []models.Task{
		{ID: "abc123", Text: "use *stars*", Category: models.CategoryWork},
		{ID: "xyz789", Text: "done", Category: models.CategoryWork, IsComplete: true},
	}
	md := Markdown([]Section{{Category: models.CategoryWork, Tasks: tasks}}, tasks)

	assert.Contains(t, md, "## Work")
	assert.Contains(t, md, "- [ ] use \\*stars\\* `abc123`")
	assert.Contains(t, md, "- [x] ~~done~~ `xyz789`")
}
