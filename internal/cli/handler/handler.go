// Package handler provides command execution abstraction to reduce boilerplate
package handler

import (
	"context"
	"errors"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/thenoetrevino/twodo/internal/cli"
)

// Handler defines the interface for command execution
type Handler interface {
	// Execute runs the command against a loaded CLI and returns the data to print
	Execute(ctx context.Context, c *cli.CLI, args *Arguments) (any, error)
}

// Func adapts an ordinary function to Handler
type Func func(ctx context.Context, c *cli.CLI, args *Arguments) (any, error)

// Execute calls f
func (f Func) Execute(ctx context.Context, c *cli.CLI, args *Arguments) (any, error) {
	return f(ctx, c, args)
}

// Arguments captures parsed CLI arguments and flags
type Arguments struct {
	Flags map[string]any
	Args  []string
	cmd   *cobra.Command
}

// GetCmd returns the cobra command for access to its streams and flags
func (a *Arguments) GetCmd() *cobra.Command {
	return a.cmd
}

// Command wraps common command execution logic: it takes the CLI from the
// command context, runs the handler, prints the result or the error and
// closes the CLI so pending writes are flushed.
// Returns a cobra RunE compatible function
func Command(h Handler) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		formatter := cli.NewFormatter(cmd)

		cliInstance, err := cli.GetCLIFromContext(ctx)
		if err != nil {
			return report(formatter, cli.Fail(cli.ExitError, "INITIALIZATION_ERROR", err))
		}

		arguments := &Arguments{
			Flags: parseFlagsToMap(cmd),
			Args:  args,
			cmd:   cmd,
		}

		result, err := h.Execute(ctx, cliInstance, arguments)
		closeErr := cliInstance.Close(ctx)
		if err != nil {
			if closeErr != nil {
				slog.Error("Error closing CLI", "error", closeErr)
			}
			return report(formatter, err)
		}
		if closeErr != nil {
			return report(formatter, cli.Fail(cli.ExitError, "WRITE_ERROR", closeErr))
		}

		return formatter.Success(result)
	}
}

// report prints err through the formatter and returns it as a *cli.Error
func report(formatter *cli.OutputFormatter, err error) error {
	var cliErr *cli.Error
	if !errors.As(err, &cliErr) {
		cliErr = cli.Fail(cli.ExitError, "ERROR", err)
	}
	if fmtErr := formatter.ErrorWithSuggestion(cliErr.Kind, cliErr.Error(), cliErr.Suggestion); fmtErr != nil {
		slog.Error("Error formatting error message", "error", fmtErr)
	}
	return cliErr
}

// parseFlagsToMap converts cobra command flags to a map
func parseFlagsToMap(cmd *cobra.Command) map[string]any {
	flags := make(map[string]any)

	// Visit all flags that were explicitly set
	cmd.Flags().Visit(func(f *pflag.Flag) {
		switch f.Value.Type() {
		case "string":
			if v, err := cmd.Flags().GetString(f.Name); err == nil {
				flags[f.Name] = v
			}
		case "int":
			if v, err := cmd.Flags().GetInt(f.Name); err == nil {
				flags[f.Name] = v
			}
		case "bool":
			if v, err := cmd.Flags().GetBool(f.Name); err == nil {
				flags[f.Name] = v
			}
		default:
			slog.Debug("unsupported flag type", "flag", f.Name, "type", f.Value.Type())
		}
	})

	return flags
}

// GetString retrieves a string flag with default
func (a *Arguments) GetString(name string, defaultVal string) string {
	v, ok := a.Flags[name]
	if !ok {
		return defaultVal
	}
	val, ok := v.(string)
	if !ok {
		return defaultVal
	}
	return val
}

// GetBool retrieves a bool flag
func (a *Arguments) GetBool(name string) bool {
	v, ok := a.Flags[name]
	if !ok {
		return false
	}
	val, ok := v.(bool)
	if !ok {
		return false
	}
	return val
}

// Has reports whether the flag was set on the command line
func (a *Arguments) Has(name string) bool {
	_, ok := a.Flags[name]
	return ok
}
