package cli

import (
	"github.com/spf13/cobra"

	"github.com/roach88/linkset/internal/report"
)

// NewPairsCommand creates the pairs command.
func NewPairsCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "pairs <input>",
		Short: "Show the bijection verdict for every ordered column pair",
		Long: `Show the bijection verdict for every ordered column pair.

For each pair (A, B) the table lists the contributing rows, the number of
distinct (A, B) value pairs, the distinct values on each side, and whether
the pair is a bijection. Pairs appear in header order.

Examples:
  linkset pairs data.txt
  linkset pairs data.txt --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPairs(rootOpts, args[0], cmd)
		},
	}
}

func runPairs(opts *RootOptions, input string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{Format: opts.Settings.Format, Writer: cmd.OutOrStdout()}

	_, analysis, err := loadAndRun(commandContext(cmd), opts, input, formatter)
	if err != nil {
		return err
	}

	format := opts.Settings.Format
	if format == report.FormatYAML {
		return formatter.Encode(analysis.Verdicts)
	}
	return report.WritePairs(cmd.OutOrStdout(), analysis.Verdicts, format)
}
