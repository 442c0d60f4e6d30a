package cmd

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/conneroisu/subsea/internal/watcher"
)

var watchCmd = &cobra.Command{
	Use:   "watch <day> [file]",
	Short: "Re-solve a day whenever its input file changes",
	Long: `Watch solves a day once, then watches its input file and prints
fresh answers after every change. Solver errors are reported and watching
continues, so a half-saved file does not end the session.

Examples:
  subsea watch 3                   # Watch the configured day 3 input
  subsea watch 2 moves.txt -v      # Watch a file, listing change events`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runWatch,
}

var (
	watchVerbose  bool
	watchDebounce time.Duration
)

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().BoolVarP(&watchVerbose, "verbose", "v", false, "Verbose output")
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", 300*time.Millisecond, "Delay before re-solving after a change")
}

func runWatch(cmd *cobra.Command, args []string) error {
	day, err := parseDay(args[0])
	if err != nil {
		return err
	}

	a, err := newApp(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	if _, err := a.registry.Get(day); err != nil {
		return err
	}
	path := a.inputPath(day, args[1:])

	fileWatcher, err := watcher.NewFileWatcher(watchDebounce, a.logger)
	if err != nil {
		return err
	}
	if err := fileWatcher.AddFile(path); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	resolve := resolveHandler(a, day, path, out)
	fileWatcher.SetHandler(resolve)

	// The first run happens before any change so the current answers show.
	_ = resolve(cmd.Context(), nil)

	fmt.Fprintf(out, "Watching %s for changes... (Press Ctrl+C to stop)\n", path)
	return fileWatcher.Run(cmd.Context())
}

// resolveHandler returns a change handler that solves day from path and
// writes the result to out. Solver failures are printed, not returned.
func resolveHandler(a *app, day int, path string, out io.Writer) watcher.ChangeHandler {
	return func(ctx context.Context, events []watcher.ChangeEvent) error {
		if watchVerbose {
			for _, event := range events {
				fmt.Fprintf(out, "%s: %s\n", event.Type, event.Path)
			}
		}

		result, err := a.solve(ctx, day, path)
		if err != nil {
			fmt.Fprintf(out, "Error: %v\n", err)
			return nil
		}
		return renderResult(out, a.cfg.Output.Format, result)
	}
}
