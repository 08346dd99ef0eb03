package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/roach88/linkset/internal/ir"
	"github.com/roach88/linkset/internal/store"
	datatable "github.com/roach88/linkset/internal/table"
)

// HistoryOptions holds flags for the history command.
type HistoryOptions struct {
	*RootOptions
	Dataset string // only runs over the same data as this input
	Column  string // only runs that linked this column
}

// NewHistoryCommand creates the history command.
func NewHistoryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &HistoryOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded runs",
		Long: `List runs recorded with --db, oldest first.

Examples:
  linkset history --db runs.db
  linkset history --db runs.db --dataset data.txt
  linkset history --db runs.db --column customer_id --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Dataset, "dataset", "", "only runs over the same data as this input")
	cmd.Flags().StringVar(&opts.Column, "column", "", "only runs that linked this column")

	return cmd
}

func runHistory(opts *HistoryOptions, cmd *cobra.Command) error {
	formatter := &OutputFormatter{Format: opts.Settings.Format, Writer: cmd.OutOrStdout()}
	ctx := commandContext(cmd)

	st, err := openHistory(opts.RootOptions, formatter)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := st.Close(); closeErr != nil {
			slog.Error("error closing database", "error", closeErr)
		}
	}()

	runs, err := queryHistory(ctx, opts, st, formatter)
	if err != nil {
		return err
	}

	if opts.Settings.Format != "text" {
		return formatter.Encode(runs)
	}

	if len(runs) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No runs recorded")
		return nil
	}
	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Seq", "ID", "Source", "Columns", "Sets", "Linked", "Free"})
	for _, run := range runs {
		r := run.Report
		t.AppendRow(table.Row{run.Seq, run.ID, run.Source, r.Total, r.SetCount, r.LinkedCount, r.FreeCount})
	}
	t.Render()
	return nil
}

func queryHistory(ctx context.Context, opts *HistoryOptions, st *store.Store, formatter *OutputFormatter) ([]ir.RunRecord, error) {
	switch {
	case opts.Dataset != "" && opts.Column != "":
		return nil, NewExitError(ExitCommandError, "--dataset and --column are mutually exclusive")
	case opts.Dataset != "":
		tbl, err := datatable.Load(ctx, opts.Dataset, opts.Settings.TableOptions())
		if err != nil {
			return nil, formatter.fail(ExitCommandError, ErrCodeGeneric, "loading dataset", err)
		}
		hash, err := ir.DatasetHash(tbl.Header, tbl.Rows)
		if err != nil {
			return nil, formatter.fail(ExitCommandError, ErrCodeGeneric, "hashing dataset", err)
		}
		runs, err := st.RunsForDataset(ctx, hash)
		if err != nil {
			return nil, formatter.fail(ExitCommandError, ErrCodeStore, "querying runs", err)
		}
		return runs, nil
	case opts.Column != "":
		runs, err := st.RunsLinking(ctx, opts.Column)
		if err != nil {
			return nil, formatter.fail(ExitCommandError, ErrCodeStore, "querying runs", err)
		}
		return runs, nil
	default:
		runs, err := st.ListRuns(ctx)
		if err != nil {
			return nil, formatter.fail(ExitCommandError, ErrCodeStore, "listing runs", err)
		}
		return runs, nil
	}
}

// openHistory opens the configured database, which must be set.
func openHistory(opts *RootOptions, formatter *OutputFormatter) (*store.Store, error) {
	if opts.Settings.Database == "" {
		return nil, NewExitError(ExitCommandError, "no database: pass --db or set database in the config file")
	}
	st, err := store.Open(opts.Settings.Database)
	if err != nil {
		return nil, formatter.fail(ExitCommandError, ErrCodeStore, "opening database", err)
	}
	return st, nil
}
