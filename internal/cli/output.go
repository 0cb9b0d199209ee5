package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// OutputFormatter handles three output modes: JSON, quiet, and human-readable
type OutputFormatter struct {
	JSON  bool
	Quiet bool

	// Out and Err default to os.Stdout and os.Stderr
	Out io.Writer
	Err io.Writer
}

// NewFormatter builds a formatter from the command's --json and --quiet flags
func NewFormatter(cmd *cobra.Command) *OutputFormatter {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	return &OutputFormatter{
		JSON:  jsonOutput,
		Quiet: quietMode,
		Out:   cmd.OutOrStdout(),
		Err:   cmd.ErrOrStderr(),
	}
}

// Success outputs successful operation result
func (f *OutputFormatter) Success(data any) error {
	if f.Quiet {
		switch v := data.(type) {
		case interface{ GetIDs() []string }:
			for _, id := range v.GetIDs() {
				fmt.Fprintln(f.stdout(), id)
			}
			return nil
		case interface{ GetID() string }:
			fmt.Fprintln(f.stdout(), v.GetID())
			return nil
		}
	}

	if f.JSON {
		return json.NewEncoder(f.stdout()).Encode(map[string]any{
			"success": true,
			"data":    data,
		})
	}

	return f.prettyPrint(data)
}

// Error outputs error information
func (f *OutputFormatter) Error(code string, message string) error {
	return f.ErrorWithSuggestion(code, message, "")
}

// ErrorWithSuggestion outputs error information with an optional suggestion
func (f *OutputFormatter) ErrorWithSuggestion(code string, message string, suggestion string) error {
	if f.JSON {
		errData := map[string]any{
			"code":    code,
			"message": message,
		}
		if suggestion != "" {
			errData["suggestion"] = suggestion
		}
		return json.NewEncoder(f.stdout()).Encode(map[string]any{
			"success": false,
			"error":   errData,
		})
	}

	// Human-readable error
	fmt.Fprintf(f.stderr(), "❌ Error: %s\n", message)
	if suggestion != "" {
		fmt.Fprintf(f.stderr(), "💡 Suggestion: %s\n", suggestion)
	}
	return nil
}

// prettyPrint formats data for human-readable output
func (f *OutputFormatter) prettyPrint(data any) error {
	switch v := data.(type) {
	case nil:
		return nil
	case interface{ Human() string }:
		_, err := fmt.Fprintln(f.stdout(), v.Human())
		return err
	case fmt.Stringer:
		_, err := fmt.Fprintln(f.stdout(), v.String())
		return err
	}
	_, err := fmt.Fprintf(f.stdout(), "%+v\n", data)
	return err
}

func (f *OutputFormatter) stdout() io.Writer {
	if f.Out == nil {
		return os.Stdout
	}
	return f.Out
}

func (f *OutputFormatter) stderr() io.Writer {
	if f.Err == nil {
		return os.Stderr
	}
	return f.Err
}
