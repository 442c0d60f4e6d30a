package cmd

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/conneroisu/subsea/internal/bingo"
	"github.com/conneroisu/subsea/internal/config"
	"github.com/conneroisu/subsea/internal/diagnostic"
	"github.com/conneroisu/subsea/internal/dive"
	suberrors "github.com/conneroisu/subsea/internal/errors"
	"github.com/conneroisu/subsea/internal/input"
	"github.com/conneroisu/subsea/internal/logging"
	"github.com/conneroisu/subsea/internal/puzzle"
	"github.com/conneroisu/subsea/internal/sonar"
)

// app carries what every command needs once configuration is loaded.
type app struct {
	cfg      *config.Config
	logger   logging.Logger
	registry *puzzle.Registry
}

// newApp loads configuration and builds the logger and solver registry.
func newApp(logOutput io.Writer) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	lc, err := cfg.LoggerConfig()
	if err != nil {
		return nil, err
	}
	if logOutput == nil {
		logOutput = os.Stderr
	}
	lc.Output = logOutput
	logger := logging.NewLogger(lc)

	return &app{
		cfg:      cfg,
		logger:   logger,
		registry: newRegistry(logger),
	}, nil
}

// newRegistry registers every solver shipped with subsea.
func newRegistry(logger logging.Logger) *puzzle.Registry {
	return puzzle.NewRegistry(
		sonar.Solver{Logger: logger.WithComponent("sonar")},
		dive.Solver{Logger: logger.WithComponent("dive")},
		diagnostic.Solver{Logger: logger.WithComponent("diagnostic")},
		bingo.Solver{Logger: logger.WithComponent("bingo")},
	)
}

// inputPath returns the explicit file argument if given, else the
// configured path for day.
func (a *app) inputPath(day int, args []string) string {
	if len(args) > 0 && args[0] != "" {
		return args[0]
	}
	return a.cfg.InputPath(day)
}

// withInputPath attaches path to a line-numbered error that lacks a file.
func withInputPath(err error, path string) error {
	var se *suberrors.SubseaError
	if errors.As(err, &se) && se.Line > 0 && se.FilePath == "" {
		se.WithLocation(path, se.Line)
	}
	return err
}

// solve reads path and runs the solver for day over it.
func (a *app) solve(ctx context.Context, day int, path string) (*puzzle.Result, error) {
	solver, err := a.registry.Get(day)
	if err != nil {
		return nil, err
	}

	lines, err := input.ReadLines(path)
	if err != nil {
		return nil, err
	}

	perf := logging.StartOperation(a.logger, "solve")
	result, err := solver.Solve(ctx, lines)
	if err != nil {
		err = withInputPath(err, path)
		perf.EndWithError(ctx, err)
		return nil, err
	}
	perf.End(ctx)

	a.logger.Debug(ctx, "solved", "day", day, "file", path, "lines", len(lines))
	return result, nil
}
