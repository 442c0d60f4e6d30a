// Package dive pilots the submarine through a list of movement commands.
package dive

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"

	suberrors "github.com/conneroisu/subsea/internal/errors"
	"github.com/conneroisu/subsea/internal/logging"
	"github.com/conneroisu/subsea/internal/puzzle"
)

// Direction of a command.
type Direction int

const (
	Forward Direction = iota
	Down
	Up
)

func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Down:
		return "down"
	case Up:
		return "up"
	default:
		return "unknown"
	}
}

// Command moves the submarine Count units in Direction.
type Command struct {
	Direction Direction
	Count     int
}

var commandPattern = regexp.MustCompile(`(forward|down|up) (\d+)`)

// ParseCommand parses "forward 5" style text. ok is false when the line
// holds no command.
func ParseCommand(text string) (cmd Command, ok bool, err error) {
	m := commandPattern.FindStringSubmatch(text)
	if m == nil {
		return Command{}, false, nil
	}

	count, err := strconv.Atoi(m[2])
	if err != nil {
		return Command{}, false, suberrors.NewValidationError(suberrors.ErrCodeMalformedCommand,
			fmt.Sprintf("command count %q out of range", m[2])).WithComponent("dive")
	}

	switch m[1] {
	case "down":
		cmd.Direction = Down
	case "up":
		cmd.Direction = Up
	default:
		cmd.Direction = Forward
	}
	cmd.Count = count
	return cmd, true, nil
}

// ParseCommands parses every line, skipping lines without a command.
func ParseCommands(lines []string) ([]Command, int, error) {
	cmds := make([]Command, 0, len(lines))
	skipped := 0
	for i, line := range lines {
		cmd, ok, err := ParseCommand(line)
		if err != nil {
			var se *suberrors.SubseaError
			if errors.As(err, &se) {
				se.WithLine(i + 1)
			}
			return nil, skipped, err
		}
		if !ok {
			skipped++
			continue
		}
		cmds = append(cmds, cmd)
	}
	return cmds, skipped, nil
}

// Location is the submarine's horizontal position, depth and aim.
type Location struct {
	Position int
	Depth    int
	Aim      int
}

// Result is position multiplied by depth.
func (l Location) Result() int {
	return l.Position * l.Depth
}

// Navigate applies commands where down and up change depth directly.
func Navigate(cmds []Command) Location {
	var loc Location
	for _, c := range cmds {
		switch c.Direction {
		case Forward:
			loc.Position += c.Count
		case Down:
			loc.Depth += c.Count
		case Up:
			loc.Depth -= c.Count
		}
	}
	return loc
}

// NavigateWithAim applies commands where down and up change the aim and
// forward dives by aim times the distance travelled.
func NavigateWithAim(cmds []Command) Location {
	var loc Location
	for _, c := range cmds {
		switch c.Direction {
		case Forward:
			loc.Position += c.Count
			loc.Depth += loc.Aim * c.Count
		case Down:
			loc.Aim += c.Count
		case Up:
			loc.Aim -= c.Count
		}
	}
	return loc
}

// Solver is the day 2 solver.
type Solver struct {
	Logger logging.Logger
}

func (Solver) Day() int     { return 2 }
func (Solver) Name() string { return "Dive!" }

func (s Solver) Solve(ctx context.Context, lines []string) (*puzzle.Result, error) {
	cmds, skipped, err := ParseCommands(lines)
	if err != nil {
		return nil, err
	}
	logging.OrNop(s.Logger).Debug(ctx, "parsed commands", "count", len(cmds), "skipped", skipped)

	return puzzle.NewResult(s).
		Add("Position x depth", int64(Navigate(cmds).Result())).
		Add("Position x depth with aim", int64(NavigateWithAim(cmds).Result())), nil
}
