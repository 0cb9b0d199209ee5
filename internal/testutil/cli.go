package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

// CommandOutput holds what a command wrote
type CommandOutput struct {
	Stdout string
	Stderr string
}

// ExecuteCommand runs cmd in ctx with args, feeding stdin, and captures its output
func ExecuteCommand(t *testing.T, ctx context.Context, cmd *cobra.Command, stdin string, args ...string) (CommandOutput, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(stdin))
	SetupCobraCommand(cmd, args)

	err := cmd.ExecuteContext(ctx)
	return CommandOutput{Stdout: stdout.String(), Stderr: stderr.String()}, err
}

// ParseJSON parses JSON output from CLI commands
func ParseJSON(t *testing.T, output string) map[string]any {
	t.Helper()

	var result map[string]any
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Fatalf("Failed to parse JSON output: %v\nOutput: %s", err, output)
	}

	return result
}

// SetupCobraCommand sets up a cobra command with args for testing
func SetupCobraCommand(cmd *cobra.Command, args []string) {
	cmd.SetArgs(args)
	// Disable usage output on error for cleaner test output
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
}
