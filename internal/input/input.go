// Package input loads puzzle input files and splits them into lines.
package input

import (
	"os"
	"strings"

	suberrors "github.com/conneroisu/subsea/internal/errors"
)

// ReadLines reads path and returns its lines as SplitLines does.
func ReadLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, suberrors.NewIOError(suberrors.ErrCodeInputRead, "failed to read input", err).
			WithComponent("input").
			WithLocation(path, 0)
	}
	return SplitLines(string(data)), nil
}

// SplitLines splits text on newlines, strips trailing whitespace (including
// '\r') from every line and drops trailing empty lines. Interior empty
// lines are kept because some formats use them as separators.
func SplitLines(text string) []string {
	raw := strings.Split(text, "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		lines = append(lines, strings.TrimRight(line, " \t\r"))
	}

	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
