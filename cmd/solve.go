package cmd

import (
	"github.com/spf13/cobra"
)

var solveCmd = &cobra.Command{
	Use:     "solve <day> [file]",
	Aliases: []string{"s"},
	Short:   "Solve one day's puzzle",
	Long: `Solve reads the input for a day and prints every answer.

Without a file argument the input path comes from configuration: an entry
in input.files for the day, or input.pattern expanded inside input.dir.

Examples:
  subsea solve 1                   # Uses inputs/day01.txt
  subsea solve 3 diagnostic.txt    # Uses an explicit file
  subsea solve 4 -o json           # JSON output`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runSolve,
}

func init() {
	rootCmd.AddCommand(solveCmd)
}

func runSolve(cmd *cobra.Command, args []string) error {
	day, err := parseDay(args[0])
	if err != nil {
		return err
	}

	a, err := newApp(cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	result, err := a.solve(cmd.Context(), day, a.inputPath(day, args[1:]))
	if err != nil {
		return err
	}

	return renderResult(cmd.OutOrStdout(), a.cfg.Output.Format, result)
}
