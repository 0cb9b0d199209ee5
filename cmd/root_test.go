package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/twodo/internal/cli"
	"github.com/thenoetrevino/twodo/internal/config"
)

// isolate points config and data lookups at a temp dir
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("HOME", dir)
	t.Setenv("TWODO_DB", "")
	t.Setenv("TWODO_THEME_FILE", "")
	return dir
}

func execute(t *testing.T, args ...string) (string, string, int) {
	t.Helper()
	opts := &rootOptions{}
	t.Cleanup(opts.close)

	rootCmd := newRootCmd(opts)
	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)

	code := run(context.Background(), rootCmd, args)
	return stdout.String(), stderr.String(), code
}

func TestRun_AddThenListSQLite(t *testing.T) {
	dir := isolate(t)
	db := filepath.Join(dir, "tasks.db")

	_, stderr, code := execute(t, "--db", db, "add", "Buy", "milk")
	require.Equal(t, cli.ExitSuccess, code, stderr)

	_, stderr, code = execute(t, "--db", db, "add", "--category", "travel", "Book", "flight")
	require.Equal(t, cli.ExitSuccess, code, stderr)

	stdout, stderr, code := execute(t, "--db", db, "list", "--all", "--plain")
	require.Equal(t, cli.ExitSuccess, code, stderr)
	assert.Contains(t, stdout, "Buy milk")
	assert.Contains(t, stdout, "Book flight")

	stdout, _, code = execute(t, "--db", db, "use")
	require.Equal(t, cli.ExitSuccess, code)
	assert.Contains(t, stdout, "Travel")
}

func TestRun_Ephemeral(t *testing.T) {
	isolate(t)

	_, _, code := execute(t, "--ephemeral", "add", "gone soon")
	require.Equal(t, cli.ExitSuccess, code)

	stdout, _, code := execute(t, "--ephemeral", "list", "--plain")
	require.Equal(t, cli.ExitSuccess, code)
	assert.NotContains(t, stdout, "gone soon")
}

func TestRun_ExitCodes(t *testing.T) {
	isolate(t)

	tests := []struct {
		name string
		args []string
		want int
	}{
		{"unknown command", []string{"frobnicate"}, cli.ExitUsage},
		{"missing argument", []string{"--ephemeral", "done"}, cli.ExitUsage},
		{"unknown task", []string{"--ephemeral", "done", "nope"}, cli.ExitNotFound},
		{"invalid category", []string{"--ephemeral", "use", "home"}, cli.ExitValidation},
		{"invalid backend", []string{"--backend", "cassandra", "list"}, cli.ExitValidation},
		{"missing config file", []string{"--config", "/nonexistent/twodo.yaml", "list"}, cli.ExitError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, code := execute(t, tt.args...)
			assert.Equal(t, tt.want, code)
		})
	}
}

func TestRun_InvalidConfigFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("storage:\n  backend: redis\n"), 0o644))

	_, stderr, code := execute(t, "--config", path, "list")
	assert.Equal(t, cli.ExitValidation, code)
	assert.True(t, strings.Contains(stderr, "redis_url"), stderr)
}

func TestApplyOverrides(t *testing.T) {
	tests := []struct {
		name        string
		opts        rootOptions
		wantBackend string
		wantPath    string
	}{
		{"none", rootOptions{}, config.BackendSQLite, ""},
		{"db implies sqlite", rootOptions{dbPath: "/tmp/x.db", backend: ""}, config.BackendSQLite, "/tmp/x.db"},
		{"backend", rootOptions{backend: config.BackendMemory}, config.BackendMemory, ""},
		{"ephemeral wins", rootOptions{backend: config.BackendSQLite, ephemeral: true}, config.BackendMemory, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			defaultPath := cfg.Storage.Path

			require.NoError(t, tt.opts.applyOverrides(cfg))
			assert.Equal(t, tt.wantBackend, cfg.Storage.Backend)
			if tt.wantPath == "" {
				assert.Equal(t, defaultPath, cfg.Storage.Path)
			} else {
				assert.Equal(t, tt.wantPath, cfg.Storage.Path)
			}
		})
	}
}
