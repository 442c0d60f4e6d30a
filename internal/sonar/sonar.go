// Package sonar counts depth increases in a sonar sweep report.
package sonar

import (
	"context"
	"strconv"
	"strings"

	"github.com/conneroisu/subsea/internal/logging"
	"github.com/conneroisu/subsea/internal/puzzle"
)

// ParseDepths reads one measurement per line. Lines that are not integers
// are skipped.
func ParseDepths(lines []string) []int {
	depths := make([]int, 0, len(lines))
	for _, line := range lines {
		n, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			continue
		}
		depths = append(depths, n)
	}
	return depths
}

// CountIncreases counts measurements strictly larger than the one before.
func CountIncreases(depths []int) int {
	count := 0
	for i := 1; i < len(depths); i++ {
		if depths[i] > depths[i-1] {
			count++
		}
	}
	return count
}

// WindowSums returns the sums of every sliding window of size n.
func WindowSums(depths []int, n int) []int {
	if n <= 0 || len(depths) < n {
		return nil
	}

	sums := make([]int, 0, len(depths)-n+1)
	sum := 0
	for i, d := range depths {
		sum += d
		if i >= n {
			sum -= depths[i-n]
		}
		if i >= n-1 {
			sums = append(sums, sum)
		}
	}
	return sums
}

// Solver is the day 1 solver.
type Solver struct {
	Logger logging.Logger
}

func (Solver) Day() int     { return 1 }
func (Solver) Name() string { return "Sonar Sweep" }

// Solve counts raw increases and increases of three-measurement windows.
func (s Solver) Solve(ctx context.Context, lines []string) (*puzzle.Result, error) {
	depths := ParseDepths(lines)
	logging.OrNop(s.Logger).Debug(ctx, "parsed depths", "count", len(depths), "skipped", len(lines)-len(depths))

	return puzzle.NewResult(s).
		Add("Increases", int64(CountIncreases(depths))).
		Add("Window increases", int64(CountIncreases(WindowSums(depths, 3)))), nil
}
