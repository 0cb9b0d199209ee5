package task

import (
	"context"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/twodo/internal/app"
	"github.com/thenoetrevino/twodo/internal/cli"
	"github.com/thenoetrevino/twodo/internal/config"
	"github.com/thenoetrevino/twodo/internal/database"
	"github.com/thenoetrevino/twodo/internal/logging"
	"github.com/thenoetrevino/twodo/internal/models"
	"github.com/thenoetrevino/twodo/internal/services/todo"
	"github.com/thenoetrevino/twodo/internal/testutil"
)

const seededTasks = `{
	"abc123": {"text": "Buy milk", "category": "work", "isComplete": false},
	"abd456": {"text": "Book flight", "category": "travel", "isComplete": false},
	"xyz789": {"text": "Call Bob", "category": "work", "isComplete": true}
}`

// seededKV returns a memory store holding three tasks with the work list active
func seededKV(t *testing.T) *database.MemoryStore {
	t.Helper()
	kv := database.NewMemoryStore()
	testutil.Seed(t, kv, map[string]string{
		todo.DefaultTasksKey:    seededTasks,
		todo.DefaultCategoryKey: `"work"`,
	})
	return kv
}

// openCLI loads a CLI over kv. Closing it leaves kv usable.
func openCLI(t *testing.T, kv database.KVStore) *cli.CLI {
	t.Helper()

	cfg := config.Default()
	cfg.Storage.Backend = config.BackendMemory

	c, err := cli.NewCLI(context.Background(), cfg,
		app.WithKVStore(testutil.KeepOpen{KVStore: kv}),
		app.WithLogger(logging.Discard()))
	require.NoError(t, err)
	return c
}

// run executes cmd against kv
func run(t *testing.T, kv database.KVStore, cmd *cobra.Command, stdin string, args ...string) (testutil.CommandOutput, error) {
	t.Helper()
	ctx := cli.WithCLI(context.Background(), openCLI(t, kv))
	return testutil.ExecuteCommand(t, ctx, cmd, stdin, args...)
}

// reload reads kv back into a fresh store
func reload(t *testing.T, kv database.KVStore) *todo.Store {
	t.Helper()
	c := openCLI(t, kv)
	t.Cleanup(func() { _ = c.Close(context.Background()) })
	return c.Store()
}

// ============================================================================
// add
// ============================================================================

func TestAdd_JoinsArgsIntoActiveList(t *testing.T) {
	kv := seededKV(t)

	out, err := run(t, kv, AddCmd(), "", "Buy", "oat", "milk", "--json")
	require.NoError(t, err)

	result := testutil.ParseJSON(t, out.Stdout)
	assert.Equal(t, true, result["success"])
	data := result["data"].(map[string]any)
	task := data["task"].(map[string]any)
	assert.Equal(t, "added", data["action"])
	assert.Equal(t, "Buy oat milk", task["text"])
	assert.Equal(t, "work", task["category"])

	store := reload(t, kv)
	assert.Len(t, store.VisibleIn(models.CategoryWork), 3)
	assert.Len(t, store.VisibleIn(models.CategoryTravel), 1)
}

func TestAdd_CategorySwitchesFirst(t *testing.T) {
	kv := seededKV(t)

	out, err := run(t, kv, AddCmd(), "", "--category", "travel", "Pack", "bags", "--quiet")
	require.NoError(t, err)

	store := reload(t, kv)
	assert.Equal(t, models.CategoryTravel, store.ActiveCategory())
	travel := store.VisibleIn(models.CategoryTravel)
	require.Len(t, travel, 2)
	assert.Equal(t, "Pack bags", travel[1].Text)
	assert.Equal(t, travel[1].ID+"\n", out.Stdout)
}

func TestAdd_Errors(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantCode int
		wantKind string
	}{
		{"blank text", []string{"   ", "--json"}, cli.ExitUsage, "INVALID_TEXT"},
		{"unknown category", []string{"--category", "home", "Mow", "--json"}, cli.ExitValidation, "INVALID_CATEGORY"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kv := seededKV(t)

			out, err := run(t, kv, AddCmd(), "", tt.args...)
			require.Error(t, err)
			assert.Equal(t, tt.wantCode, cli.ExitCode(err))

			result := testutil.ParseJSON(t, out.Stdout)
			assert.Equal(t, false, result["success"])
			assert.Equal(t, tt.wantKind, result["error"].(map[string]any)["code"])

			assert.Equal(t, 3, reload(t, kv).Tasks().Len())
		})
	}
}

// ============================================================================
// list
// ============================================================================

func TestList_Plain(t *testing.T) {
	kv := seededKV(t)

	out, err := run(t, kv, ListCmd(), "", "--plain")
	require.NoError(t, err)

	assert.Contains(t, out.Stdout, "Work")
	assert.Contains(t, out.Stdout, "[ ] abc123  Buy milk")
	assert.Contains(t, out.Stdout, "[x] xyz789  Call Bob")
	assert.NotContains(t, out.Stdout, "Book flight")
}

func TestList_AllAndCategory(t *testing.T) {
	kv := seededKV(t)

	out, err := run(t, kv, ListCmd(), "", "--all", "--plain")
	require.NoError(t, err)
	assert.Contains(t, out.Stdout, "Buy milk")
	assert.Contains(t, out.Stdout, "Book flight")

	out, err = run(t, kv, ListCmd(), "", "--category", "travel", "--plain")
	require.NoError(t, err)
	assert.Contains(t, out.Stdout, "Book flight")
	assert.NotContains(t, out.Stdout, "Buy milk")
}

func TestList_JSON(t *testing.T) {
	kv := seededKV(t)

	out, err := run(t, kv, ListCmd(), "", "--json")
	require.NoError(t, err)

	result := testutil.ParseJSON(t, out.Stdout)
	data := result["data"].(map[string]any)
	assert.Equal(t, "work", data["active"])

	lists := data["lists"].([]any)
	require.Len(t, lists, 1)
	tasks := lists[0].(map[string]any)["tasks"].([]any)
	require.Len(t, tasks, 2)
	first := tasks[0].(map[string]any)
	assert.Equal(t, "abc123", first["id"])
	assert.Equal(t, false, first["isComplete"])
}

func TestList_Quiet(t *testing.T) {
	kv := seededKV(t)

	out, err := run(t, kv, ListCmd(), "", "--all", "--quiet")
	require.NoError(t, err)
	assert.Equal(t, "abc123\nxyz789\nabd456\n", out.Stdout)
}

func TestList_Markdown(t *testing.T) {
	kv := seededKV(t)

	out, err := run(t, kv, ListCmd(), "")
	require.NoError(t, err)
	for _, want := range []string{"Work", "Buy", "milk", "abc123"} {
		assert.Contains(t, out.Stdout, want)
	}
}

func TestList_DoesNotWrite(t *testing.T) {
	kv := testutil.NewFlakyStore()
	testutil.Seed(t, kv, map[string]string{todo.DefaultTasksKey: seededTasks})

	_, err := run(t, kv, ListCmd(), "", "--all", "--plain")
	require.NoError(t, err)
	assert.Equal(t, 0, kv.SetCalls())
}

// ============================================================================
// done / edit
// ============================================================================

func TestDone_TogglesByPrefix(t *testing.T) {
	kv := seededKV(t)

	out, err := run(t, kv, DoneCmd(), "", "abc", "--json")
	require.NoError(t, err)
	data := testutil.ParseJSON(t, out.Stdout)["data"].(map[string]any)
	assert.Equal(t, "completed", data["action"])

	task, ok := reload(t, kv).Task("abc123")
	require.True(t, ok)
	assert.True(t, task.IsComplete)

	out, err = run(t, kv, DoneCmd(), "", "abc123", "--json")
	require.NoError(t, err)
	data = testutil.ParseJSON(t, out.Stdout)["data"].(map[string]any)
	assert.Equal(t, "reopened", data["action"])
}

func TestIDErrors(t *testing.T) {
	tests := []struct {
		name     string
		cmd      func() *cobra.Command
		args     []string
		wantCode int
	}{
		{"done unknown", DoneCmd, []string{"nope"}, cli.ExitNotFound},
		{"done ambiguous", DoneCmd, []string{"ab"}, cli.ExitUsage},
		{"edit unknown", EditCmd, []string{"nope", "text"}, cli.ExitNotFound},
		{"delete unknown", DeleteCmd, []string{"nope", "--force"}, cli.ExitNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kv := seededKV(t)
			before := reload(t, kv).Tasks()

			_, err := run(t, kv, tt.cmd(), "", tt.args...)
			require.Error(t, err)
			assert.Equal(t, tt.wantCode, cli.ExitCode(err))
			assert.True(t, before.Equal(reload(t, kv).Tasks()))
		})
	}
}

func TestEdit_ReplacesTextOnly(t *testing.T) {
	kv := seededKV(t)

	_, err := run(t, kv, EditCmd(), "", "xyz", "Call", "Robert", "--quiet")
	require.NoError(t, err)

	task, ok := reload(t, kv).Task("xyz789")
	require.True(t, ok)
	assert.Equal(t, "Call Robert", task.Text)
	assert.True(t, task.IsComplete)
	assert.Equal(t, models.CategoryWork, task.Category)
}

func TestEdit_BlankTextRejected(t *testing.T) {
	kv := seededKV(t)

	_, err := run(t, kv, EditCmd(), "", "abc123", " ")
	require.Error(t, err)
	assert.Equal(t, cli.ExitUsage, cli.ExitCode(err))

	task, _ := reload(t, kv).Task("abc123")
	assert.Equal(t, "Buy milk", task.Text)
}

// ============================================================================
// delete
// ============================================================================

func TestDelete_Confirmation(t *testing.T) {
	tests := []struct {
		name       string
		stdin      string
		args       []string
		wantExists bool
	}{
		{"yes", "y\n", nil, false},
		{"full yes", "YES\n", nil, false},
		{"no", "n\n", nil, true},
		{"empty answer", "\n", nil, true},
		{"force", "", []string{"--force"}, false},
		{"quiet", "", []string{"--quiet"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kv := seededKV(t)

			args := append([]string{"abc123"}, tt.args...)
			out, err := run(t, kv, DeleteCmd(), tt.stdin, args...)
			require.NoError(t, err)

			if len(tt.args) == 0 {
				assert.Contains(t, out.Stderr, "Delete 'Buy milk'? (y/N)")
			}

			store := reload(t, kv)
			_, exists := store.Task("abc123")
			assert.Equal(t, tt.wantExists, exists)
			assert.Equal(t, 3-boolToInt(!tt.wantExists), store.Tasks().Len())
		})
	}
}

func TestDelete_DeclinedReportsCancel(t *testing.T) {
	kv := seededKV(t)

	out, err := run(t, kv, DeleteCmd(), "n\n", "abc123", "--json")
	require.NoError(t, err)

	data := testutil.ParseJSON(t, out.Stdout)["data"].(map[string]any)
	assert.Equal(t, true, data["cancelled"])
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// ============================================================================
// loading
// ============================================================================

func TestCorruptDataRefused(t *testing.T) {
	kv := database.NewMemoryStore()
	testutil.Seed(t, kv, map[string]string{todo.DefaultTasksKey: `{"broken":`})

	cfg := config.Default()
	_, err := cli.NewCLI(context.Background(), cfg,
		app.WithKVStore(testutil.KeepOpen{KVStore: kv}),
		app.WithLogger(logging.Discard()))
	require.Error(t, err)
	assert.Equal(t, cli.ExitDataErr, cli.ExitCode(err))

	raw, _, _ := kv.Get(context.Background(), todo.DefaultTasksKey)
	assert.Equal(t, `{"broken":`, raw, "stored data must be left alone")
}
