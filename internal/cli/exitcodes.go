package cli

import "errors"

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: storage errors, unexpected failures,
	// or any error that doesn't fit the specific categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: missing arguments, blank task text, ambiguous id prefixes.
	ExitUsage = 2

	// ExitNotFound indicates a requested task was not found.
	ExitNotFound = 3

	// ExitDataErr indicates invalid or malformed data.
	// Use for: saved tasks that cannot be read or decoded.
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: unknown categories, invalid configuration.
	ExitValidation = 5
)

// Error is a command failure carrying its exit code and a machine readable kind
type Error struct {
	Code       int
	Kind       string
	Suggestion string
	Err        error
}

// Fail wraps err with an exit code and kind
func Fail(code int, kind string, err error) *Error {
	return &Error{Code: code, Kind: kind, Err: err}
}

// WithSuggestion attaches a hint shown below the error message
func (e *Error) WithSuggestion(s string) *Error {
	e.Suggestion = s
	return e
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Kind
	}
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// ExitCode maps err to a process exit code. Errors not built by Fail exit with ExitError.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var cliErr *Error
	if errors.As(err, &cliErr) {
		return cliErr.Code
	}
	return ExitError
}
