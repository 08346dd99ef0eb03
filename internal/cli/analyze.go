package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/linkset/internal/ir"
	"github.com/roach88/linkset/internal/linkage"
	"github.com/roach88/linkset/internal/report"
	"github.com/roach88/linkset/internal/store"
	"github.com/roach88/linkset/internal/table"
)

func runAnalyze(opts *RootOptions, input string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{Format: opts.Settings.Format, Writer: cmd.OutOrStdout()}
	ctx := commandContext(cmd)

	tbl, analysis, err := loadAndRun(ctx, opts, input, formatter)
	if err != nil {
		return err
	}
	rep := analysis.Report(tbl)

	// Record before printing so a database failure never follows a report.
	if opts.Settings.Database != "" {
		if err := recordRun(ctx, opts, tbl, rep); err != nil {
			return formatter.fail(ExitCommandError, ErrCodeStore, "recording run", err)
		}
	}

	return report.Write(cmd.OutOrStdout(), rep, opts.Settings.Format)
}

// loadAndRun loads input and runs the analysis, mapping failures to exit codes.
func loadAndRun(ctx context.Context, opts *RootOptions, input string, formatter *OutputFormatter) (*table.Table, *linkage.Analysis, error) {
	slog.Debug("loading input", "source", input)
	tbl, err := table.Load(ctx, input, opts.Settings.TableOptions())
	if err != nil {
		code := ErrCodeGeneric
		var loadErr *table.LoadError
		if errors.As(err, &loadErr) {
			code = loadErr.Code
		}
		return nil, nil, formatter.fail(ExitCommandError, code, "loading input", err)
	}
	slog.Debug("input loaded", "columns", tbl.Width(), "rows", len(tbl.Rows))

	analysis, err := linkage.Run(tbl)
	if err != nil {
		code := ErrCodeGeneric
		if errors.Is(err, linkage.ErrDegeneratePair) {
			code = ErrCodeDegenerate
		}
		return nil, nil, formatter.fail(ExitFailure, code, "analyzing input", err)
	}
	return tbl, analysis, nil
}

// recordRun writes the run to the history database.
func recordRun(ctx context.Context, opts *RootOptions, tbl *table.Table, rep *ir.Report) error {
	run, err := newRunRecord(opts.idGenerator(), tbl, rep)
	if err != nil {
		return err
	}

	st, err := store.Open(opts.Settings.Database)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := st.Close(); closeErr != nil {
			slog.Error("error closing database", "error", closeErr)
		}
	}()

	seq, err := st.WriteRun(ctx, run)
	if err != nil {
		return err
	}
	slog.Info("run recorded", "id", run.ID, "seq", seq, "db", opts.Settings.Database)
	return nil
}

func newRunRecord(gen store.RunIDGenerator, tbl *table.Table, rep *ir.Report) (ir.RunRecord, error) {
	datasetHash, err := ir.DatasetHash(tbl.Header, tbl.Rows)
	if err != nil {
		return ir.RunRecord{}, fmt.Errorf("hashing dataset: %w", err)
	}
	reportHash, err := ir.ReportHash(rep)
	if err != nil {
		return ir.RunRecord{}, fmt.Errorf("hashing report: %w", err)
	}
	return ir.RunRecord{
		ID:          gen.Generate(),
		Source:      tbl.Source,
		DatasetHash: datasetHash,
		ReportHash:  reportHash,
		Version:     ir.ToolVersion,
		Report:      *rep,
	}, nil
}

func (o *RootOptions) idGenerator() store.RunIDGenerator {
	if o.IDGenerator != nil {
		return o.IDGenerator
	}
	return store.UUIDv7Generator{}
}

// commandContext returns the command's context, or Background if unset.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
