package cli

import (
	"errors"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/linkset/internal/report"
	"github.com/roach88/linkset/internal/store"
)

// NewShowCommand creates the show command.
func NewShowCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show <run-id>",
		Short: "Print the report of a recorded run",
		Long: `Print the report of a recorded run exactly as it was produced.

Examples:
  linkset show --db runs.db 01890a5d-ac96-774b-bcce-b302099a8057
  linkset show --db runs.db 01890a5d-ac96-774b-bcce-b302099a8057 --format yaml`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(rootOpts, args[0], cmd)
		},
	}
}

func runShow(opts *RootOptions, runID string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{Format: opts.Settings.Format, Writer: cmd.OutOrStdout()}

	st, err := openHistory(opts, formatter)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := st.Close(); closeErr != nil {
			slog.Error("error closing database", "error", closeErr)
		}
	}()

	run, err := st.ReadRun(commandContext(cmd), runID)
	if errors.Is(err, store.ErrRunNotFound) {
		return formatter.fail(ExitCommandError, ErrCodeRunMissing, "showing run", err)
	}
	if err != nil {
		return formatter.fail(ExitCommandError, ErrCodeStore, "showing run", err)
	}

	return report.Write(cmd.OutOrStdout(), &run.Report, opts.Settings.Format)
}
