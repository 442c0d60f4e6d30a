package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"l"},
	Short:   "List the available days",
	Long: `List every registered solver with its day, name and the input file
it reads by default. Missing input files are marked.

Examples:
  subsea list           # Table output
  subsea list -o json   # Output as JSON`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

type listEntry struct {
	Day     int    `json:"day" yaml:"day"`
	Name    string `json:"name" yaml:"name"`
	Input   string `json:"input" yaml:"input"`
	Present bool   `json:"present" yaml:"present"`
}

func runList(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	var entries []listEntry
	for _, solver := range a.registry.Solvers() {
		path := a.cfg.InputPath(solver.Day())
		_, statErr := os.Stat(path)
		entries = append(entries, listEntry{
			Day:     solver.Day(),
			Name:    solver.Name(),
			Input:   path,
			Present: statErr == nil,
		})
	}

	out := cmd.OutOrStdout()
	if done, err := writeStructured(out, a.cfg.Output.Format, entries); done {
		return err
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DAY\tNAME\tINPUT")
	for _, e := range entries {
		input := e.Input
		if !e.Present {
			input += " (missing)"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\n", e.Day, e.Name, input)
	}
	return w.Flush()
}
