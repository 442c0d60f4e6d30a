// Package bingo plays giant squid bingo: a draw order followed by 5x5
// boards, where a board wins once any full row or column is marked.
package bingo

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	suberrors "github.com/conneroisu/subsea/internal/errors"
	"github.com/conneroisu/subsea/internal/logging"
	"github.com/conneroisu/subsea/internal/puzzle"
)

// Size is the side length of a board.
const Size = 5

// Board is a 5x5 grid of numbers in row-major order.
type Board struct {
	Cells [Size * Size]int
}

// Game is the parsed input: the draw order and every board.
type Game struct {
	Draw   []int
	Boards []Board
}

func malformed(line int, format string, args ...interface{}) *suberrors.SubseaError {
	return suberrors.NewValidationError(suberrors.ErrCodeMalformedBoard, fmt.Sprintf(format, args...)).
		WithComponent("bingo").
		WithLine(line)
}

// Parse reads the comma-separated draw from the first line and then the
// boards, which are separated by blank lines.
func Parse(lines []string) (*Game, error) {
	if len(lines) == 0 || strings.TrimSpace(lines[0]) == "" {
		return nil, malformed(1, "missing draw line")
	}

	game := &Game{}
	for _, field := range strings.Split(strings.TrimSpace(lines[0]), ",") {
		n, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return nil, malformed(1, "draw value %q is not a number", field)
		}
		game.Draw = append(game.Draw, n)
	}

	var rows []string
	start := 0
	flush := func() error {
		if len(rows) == 0 {
			return nil
		}
		board, err := parseBoard(rows, start)
		if err != nil {
			return err
		}
		game.Boards = append(game.Boards, board)
		rows = rows[:0]
		return nil
	}

	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "" {
			if err := flush(); err != nil {
				return nil, err
			}
			continue
		}
		if len(rows) == 0 {
			start = i + 1
		}
		rows = append(rows, lines[i])
	}
	if err := flush(); err != nil {
		return nil, err
	}

	if len(game.Boards) == 0 {
		return nil, malformed(len(lines), "no boards found")
	}
	return game, nil
}

// parseBoard parses rows that start at 1-based line first.
func parseBoard(rows []string, first int) (Board, error) {
	var board Board
	if len(rows) != Size {
		return board, malformed(first, "board has %d rows, expected %d", len(rows), Size)
	}

	for r, row := range rows {
		fields := strings.Fields(row)
		if len(fields) != Size {
			return board, malformed(first+r, "row has %d numbers, expected %d", len(fields), Size)
		}
		for c, field := range fields {
			n, err := strconv.Atoi(field)
			if err != nil {
				return board, malformed(first+r, "cell %q is not a number", field)
			}
			board.Cells[r*Size+c] = n
		}
	}
	return board, nil
}

// card tracks the marked cells of one board during play.
type card struct {
	board  *Board
	marked [Size * Size]bool
	won    bool
}

func (c *card) mark(n int) bool {
	for i, v := range c.board.Cells {
		if v == n {
			c.marked[i] = true
		}
	}
	return c.complete()
}

func (c *card) complete() bool {
	for i := 0; i < Size; i++ {
		row, col := true, true
		for j := 0; j < Size; j++ {
			row = row && c.marked[i*Size+j]
			col = col && c.marked[j*Size+i]
		}
		if row || col {
			return true
		}
	}
	return false
}

func (c *card) unmarkedSum() int {
	sum := 0
	for i, v := range c.board.Cells {
		if !c.marked[i] {
			sum += v
		}
	}
	return sum
}

// Win is a board completing on a drawn number.
type Win struct {
	Board int
	Last  int
	Score int
}

// Play draws every number and returns the wins in the order they happen.
// Each board wins at most once.
func (g *Game) Play() []Win {
	cards := make([]card, len(g.Boards))
	for i := range g.Boards {
		cards[i].board = &g.Boards[i]
	}

	var wins []Win
	for _, n := range g.Draw {
		for i := range cards {
			c := &cards[i]
			if c.won {
				continue
			}
			if c.mark(n) {
				c.won = true
				wins = append(wins, Win{Board: i, Last: n, Score: c.unmarkedSum() * n})
			}
		}
		if len(wins) == len(cards) {
			break
		}
	}
	return wins
}

// Solver is the day 4 solver.
type Solver struct {
	Logger logging.Logger
}

func (Solver) Day() int     { return 4 }
func (Solver) Name() string { return "Giant Squid" }

// Solve scores the first and the last board to win.
func (s Solver) Solve(ctx context.Context, lines []string) (*puzzle.Result, error) {
	game, err := Parse(lines)
	if err != nil {
		return nil, err
	}

	wins := game.Play()
	logging.OrNop(s.Logger).Debug(ctx, "played bingo",
		"draws", len(game.Draw), "boards", len(game.Boards), "winners", len(wins))
	if len(wins) == 0 {
		return nil, suberrors.NewValidationError(suberrors.ErrCodeMalformedBoard, "no board wins with the given draw").
			WithComponent("bingo")
	}

	return puzzle.NewResult(s).
		Add("First winner score", int64(wins[0].Score)).
		Add("Last winner score", int64(wins[len(wins)-1].Score)), nil
}
