package diagnostic

import (
	"context"

	"github.com/conneroisu/subsea/internal/logging"
	"github.com/conneroisu/subsea/internal/puzzle"
)

// Solver is the day 3 solver.
type Solver struct {
	Logger logging.Logger
}

func (Solver) Day() int     { return 3 }
func (Solver) Name() string { return "Binary Diagnostic" }

// Solve reports power consumption and the life support rating.
func (s Solver) Solve(ctx context.Context, lines []string) (*puzzle.Result, error) {
	records, err := ParseRecords(lines)
	if err != nil {
		return nil, err
	}

	report, err := Analyze(ctx, records, WithLogger(s.Logger))
	if err != nil {
		return nil, err
	}

	return puzzle.NewResult(s).
		Add("Power consumption", int64(report.PowerConsumption)).
		Add("Life support rating", int64(report.LifeSupportRating)), nil
}
