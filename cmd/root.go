// Package cmd wires the twodo command tree
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/twodo/internal/app"
	"github.com/thenoetrevino/twodo/internal/cli"
	"github.com/thenoetrevino/twodo/internal/cli/styles"
	"github.com/thenoetrevino/twodo/internal/cli/task"
	"github.com/thenoetrevino/twodo/internal/cli/use"
	"github.com/thenoetrevino/twodo/internal/config"
	"github.com/thenoetrevino/twodo/internal/launcher"
	"github.com/thenoetrevino/twodo/internal/logging"
)

// rootOptions holds the global flags
type rootOptions struct {
	configPath string
	dbPath     string
	backend    string
	ephemeral  bool

	cfg       *config.Config
	logCloser io.Closer
}

// NewRootCmd builds the command tree. Running it without a subcommand starts the TUI.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}
	return newRootCmd(opts)
}

func newRootCmd(opts *rootOptions) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "twodo",
		Short: "twodo - work and travel to-do lists in the terminal",
		Long: `twodo keeps two to-do lists, Work and Travel, and remembers which one
you used last. Run it without arguments for the interactive view, or use
the subcommands from scripts.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := opts.setup(cmd); err != nil {
				return reportError(cmd, err)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := launcher.Launch(cmd.Context(), opts.cfg, app.WithLogger(slog.Default())); err != nil {
				return reportError(cmd, cli.Fail(cli.ExitError, "TUI_ERROR", err))
			}
			return nil
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "Config file (default $XDG_CONFIG_HOME/twodo/config.yaml)")
	flags.StringVar(&opts.dbPath, "db", "", "SQLite database path (overrides storage.path)")
	flags.StringVar(&opts.backend, "backend", "", "Storage backend: sqlite, redis or memory")
	flags.BoolVar(&opts.ephemeral, "ephemeral", false, "Keep tasks in memory only; nothing is saved")

	rootCmd.AddCommand(task.Commands()...)
	rootCmd.AddCommand(use.CategoryCmd())

	return rootCmd
}

// setup loads the configuration, starts logging and, for subcommands,
// puts a loaded CLI into the command context
func (o *rootOptions) setup(cmd *cobra.Command) error {
	cfg, err := o.loadConfig()
	if err != nil {
		return err
	}
	o.cfg = cfg

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return cli.Fail(cli.ExitValidation, "INVALID_CONFIG", err)
	}
	closer, err := logging.Init(cfg.DataDir, level)
	if err != nil {
		// logging is not worth refusing to start over
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	} else {
		o.logCloser = closer
	}

	styles.Init(cfg.ColorScheme)

	if cmd == cmd.Root() {
		return nil
	}
	ctx := cmd.Context()
	if _, err := cli.GetCLIFromContext(ctx); err == nil {
		return nil
	}
	c, err := cli.NewCLI(ctx, cfg, app.WithLogger(slog.Default()))
	if err != nil {
		return err
	}
	cmd.SetContext(cli.WithCLI(ctx, c))
	return nil
}

// loadConfig reads the config file and applies the global flag overrides
func (o *rootOptions) loadConfig() (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if o.configPath != "" {
		cfg, err = config.LoadFrom(o.configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, configError(err)
	}

	if err := o.applyOverrides(cfg); err != nil {
		return nil, configError(err)
	}
	return cfg, nil
}

// applyOverrides applies --backend, --db and --ephemeral, then validates again
func (o *rootOptions) applyOverrides(cfg *config.Config) error {
	if o.backend != "" {
		cfg.Storage.Backend = o.backend
	}
	if o.dbPath != "" {
		cfg.Storage.Path = o.dbPath
		if o.backend == "" {
			cfg.Storage.Backend = config.BackendSQLite
		}
	}
	if o.ephemeral {
		cfg.Storage.Backend = config.BackendMemory
	}
	return cfg.Validate()
}

func (o *rootOptions) close() {
	if o.logCloser != nil {
		_ = o.logCloser.Close()
		o.logCloser = nil
	}
}

func configError(err error) error {
	if errors.Is(err, config.ErrInvalidConfig) {
		return cli.Fail(cli.ExitValidation, "INVALID_CONFIG", err)
	}
	return cli.Fail(cli.ExitError, "CONFIG_ERROR", err)
}

// reportError prints err the way subcommands do and returns it as a *cli.Error
func reportError(cmd *cobra.Command, err error) error {
	var cliErr *cli.Error
	if !errors.As(err, &cliErr) {
		cliErr = cli.Fail(cli.ExitError, "ERROR", err)
	}
	formatter := cli.NewFormatter(cmd)
	if fmtErr := formatter.ErrorWithSuggestion(cliErr.Kind, cliErr.Error(), cliErr.Suggestion); fmtErr != nil {
		slog.Error("Error formatting error message", "error", fmtErr)
	}
	return cliErr
}

// Execute runs the command tree and returns the process exit code
func Execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := &rootOptions{}
	defer opts.close()

	return run(ctx, newRootCmd(opts), os.Args[1:])
}

func run(ctx context.Context, rootCmd *cobra.Command, args []string) int {
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(ctx)
	if err == nil {
		return cli.ExitSuccess
	}

	var cliErr *cli.Error
	if errors.As(err, &cliErr) {
		// already reported
		return cliErr.Code
	}

	// cobra's own failures: unknown command or flag, wrong argument count
	fmt.Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", err)
	return cli.ExitUsage
}
