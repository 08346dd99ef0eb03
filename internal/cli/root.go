package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/linkset/internal/config"
	"github.com/roach88/linkset/internal/report"
	"github.com/roach88/linkset/internal/store"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose    bool
	Format     string // "text" | "json" | "yaml"
	ConfigPath string
	Database   string
	Comment    string
	Strict     bool
	Normalize  bool

	// IDGenerator allows overriding the run ID generator (for testing).
	// If nil, defaults to store.UUIDv7Generator.
	IDGenerator store.RunIDGenerator

	// Settings is the effective configuration: config file values with
	// explicitly set flags applied on top. Resolved before any command runs.
	Settings config.Config
}

// NewRootCommand creates the root command for the linkset CLI.
// Run with a single input path it analyzes that file.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&RootOptions{})
}

func newRootCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "linkset <input>",
		Short: "linkset - find columns that encode the same identity",
		Long: `Detect linked columns in a whitespace-separated table.

Two columns are linked when their values are in one-to-one correspondence
across every row. Linked columns are grouped into sets; columns without a
partner are reported as free variables.

The first non-blank line (after stripping # comments) is the header.

Examples:
  linkset data.txt
  linkset data.txt --format json
  linkset data.txt --db runs.db
  linkset pairs data.txt`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true, // Don't print usage on errors - we handle our own error output
		SilenceErrors: true, // Don't print errors - main reports them
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return resolveSettings(opts, cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(opts, args[0], cmd)
		},
	}

	// Global flags
	flags := cmd.PersistentFlags()
	flags.BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	flags.StringVar(&opts.Format, "format", "text", "output format (text|json|yaml)")
	flags.StringVar(&opts.ConfigPath, "config", "", "config file (.cue, .yaml or .yml)")
	flags.StringVar(&opts.Database, "db", "", "path to SQLite run history database")
	flags.StringVar(&opts.Comment, "comment", "#", "comment marker")
	flags.BoolVar(&opts.Strict, "strict", false, "reject rows whose width differs from the header")
	flags.BoolVar(&opts.Normalize, "normalize", false, "NFC-normalize names and values")

	cmd.AddCommand(NewPairsCommand(opts))
	cmd.AddCommand(NewHistoryCommand(opts))
	cmd.AddCommand(NewShowCommand(opts))

	return cmd
}

// resolveSettings loads the config file, applies explicitly set flags, and
// configures logging.
func resolveSettings(opts *RootOptions, cmd *cobra.Command) error {
	settings := config.Default()
	if opts.ConfigPath != "" {
		loaded, err := config.Load(opts.ConfigPath)
		if err != nil {
			return WrapExitError(ExitCommandError, ErrCodeConfig+": loading config", err)
		}
		settings = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("format") {
		settings.Format = opts.Format
	}
	if flags.Changed("db") {
		settings.Database = opts.Database
	}
	if flags.Changed("comment") {
		settings.Comment = opts.Comment
	}
	if flags.Changed("strict") {
		settings.StrictRows = opts.Strict
	}
	if flags.Changed("normalize") {
		settings.Normalize = opts.Normalize
	}

	if !report.IsValidFormat(settings.Format) {
		return NewExitError(ExitCommandError,
			fmt.Sprintf("invalid format %q: must be one of %v", settings.Format, report.ValidFormats))
	}
	if settings.Comment == "" {
		return NewExitError(ExitCommandError, "comment marker must not be empty")
	}
	opts.Settings = settings

	// Diagnostics go to stderr so they never mix with the report.
	logLevel := slog.LevelInfo
	if opts.Verbose {
		logLevel = slog.LevelDebug
	}
	handler := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: logLevel,
	})
	slog.SetDefault(slog.New(handler))

	return nil
}
