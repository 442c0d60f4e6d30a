package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorSuggestion represents a suggestion for fixing an error
type ErrorSuggestion struct {
	Title       string
	Description string
	Command     string
	Example     string
}

// Suggest returns fix-up hints for err based on its code. Errors that are
// not a SubseaError, or carry a code without hints, yield nil.
func Suggest(err error) []ErrorSuggestion {
	var se *SubseaError
	if !errors.As(err, &se) {
		return nil
	}

	switch se.Code {
	case ErrCodeEmptyInput:
		return []ErrorSuggestion{{
			Title:       "Check the input file has content",
			Description: "The file was read but held no records",
			Command:     "subsea list",
		}}
	case ErrCodeMalformedRecord:
		suggestions := []ErrorSuggestion{{
			Title:       "Records are binary strings of equal width",
			Description: "Every line must contain only '0' and '1' characters and match the first line's length",
			Example:     "00100\n11110\n10110",
		}}
		if se.Line > 0 {
			suggestions = append(suggestions, ErrorSuggestion{
				Title: fmt.Sprintf("Inspect line %d", se.Line),
				Command: fmt.Sprintf("sed -n '%dp' %s", se.Line,
					orDefault(se.FilePath, "<input>")),
			})
		}
		return suggestions
	case ErrCodeExhaustedColumns:
		return []ErrorSuggestion{{
			Title:       "Remove duplicate records",
			Description: "More than one identical record survived every column, so no single rating exists",
			Command:     "sort <input> | uniq -d",
		}}
	case ErrCodeInputRead:
		return []ErrorSuggestion{
			{
				Title:   "Pass the input file explicitly",
				Command: "subsea solve <day> path/to/input.txt",
			},
			{
				Title:       "Check the configured input location",
				Description: "input.dir and input.pattern decide where a day's input lives",
				Command:     "subsea config show",
			},
		}
	case ErrCodeUnknownDay:
		return []ErrorSuggestion{{
			Title:   "List the available days",
			Command: "subsea list",
		}}
	case ErrCodeConfigInvalid:
		return []ErrorSuggestion{{
			Title:   "Validate the configuration file",
			Command: "subsea config validate",
			Example: "input:\n  dir: ./inputs\n  pattern: day%02d.txt\noutput:\n  format: text",
		}}
	case ErrCodeMalformedCommand:
		return []ErrorSuggestion{{
			Title:   "Commands are a direction and a distance",
			Example: "forward 5",
		}}
	case ErrCodeMalformedBoard:
		return []ErrorSuggestion{{
			Title:       "Boards are five rows of five numbers",
			Description: "The first line holds the comma separated draw and boards are separated by blank lines",
		}}
	default:
		return nil
	}
}

func orDefault(value, def string) string {
	if value == "" {
		return def
	}
	return value
}

// FormatSuggestions formats suggestions into a user-friendly string
func FormatSuggestions(title string, suggestions []ErrorSuggestion) string {
	if len(suggestions) == 0 {
		return title
	}

	var output strings.Builder
	output.WriteString(title + "\n\n")
	output.WriteString("Suggestions:\n")

	for i, suggestion := range suggestions {
		output.WriteString(fmt.Sprintf("  %d. %s\n", i+1, suggestion.Title))
		if suggestion.Description != "" {
			output.WriteString(fmt.Sprintf("     %s\n", suggestion.Description))
		}
		if suggestion.Command != "" {
			output.WriteString(fmt.Sprintf("     Run: %s\n", suggestion.Command))
		}
		if suggestion.Example != "" {
			output.WriteString(fmt.Sprintf("     Example: %s\n",
				strings.ReplaceAll(suggestion.Example, "\n", "\n              ")))
		}
	}

	return output.String()
}
