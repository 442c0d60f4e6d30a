package cmd

import (
	"github.com/spf13/cobra"

	"github.com/conneroisu/subsea/internal/diagnostic"
	"github.com/conneroisu/subsea/internal/input"
)

var diagnosticTrace bool

var diagnosticCmd = &cobra.Command{
	Use:     "diagnostic [file]",
	Aliases: []string{"diag"},
	Short:   "Print the full binary diagnostic report",
	Long: `Diagnostic decodes the day 3 report and prints every derived value:
gamma and epsilon rates, power consumption, both filter ratings and the
life support rating. With --trace each filter round is listed as well.

Examples:
  subsea diagnostic                 # Uses the configured day 3 input
  subsea diagnostic report.txt --trace
  subsea diagnostic -o yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDiagnostic,
}

func init() {
	rootCmd.AddCommand(diagnosticCmd)

	diagnosticCmd.Flags().BoolVarP(&diagnosticTrace, "trace", "t", false, "Include every filter round")
}

func runDiagnostic(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	day := diagnostic.Solver{}.Day()
	path := a.inputPath(day, args)

	lines, err := input.ReadLines(path)
	if err != nil {
		return err
	}
	records, err := diagnostic.ParseRecords(lines)
	if err != nil {
		return withInputPath(err, path)
	}

	report, err := diagnostic.Analyze(ctx, records, diagnostic.WithLogger(a.logger.WithComponent("diagnostic")))
	if err != nil {
		return err
	}

	return renderReport(cmd.OutOrStdout(), a.cfg.Output.Format, report, diagnosticTrace)
}
