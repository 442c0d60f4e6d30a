package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuggest(t *testing.T) {
	t.Run("malformed record points at its line", func(t *testing.T) {
		err := NewValidationError(ErrCodeMalformedRecord, "bad bit").
			WithLocation("inputs/day03.txt", 7)

		suggestions := Suggest(fmt.Errorf("solving: %w", err))
		require.Len(t, suggestions, 2)
		assert.Equal(t, "Inspect line 7", suggestions[1].Title)
		assert.Equal(t, "sed -n '7p' inputs/day03.txt", suggestions[1].Command)
	})

	t.Run("every domain code has a hint", func(t *testing.T) {
		for _, code := range []string{
			ErrCodeEmptyInput, ErrCodeMalformedRecord, ErrCodeExhaustedColumns,
			ErrCodeInputRead, ErrCodeUnknownDay, ErrCodeConfigInvalid,
			ErrCodeMalformedCommand, ErrCodeMalformedBoard,
		} {
			assert.NotEmpty(t, Suggest(NewValidationError(code, "x")), code)
		}
	})

	t.Run("unknown errors have none", func(t *testing.T) {
		assert.Nil(t, Suggest(fmt.Errorf("plain")))
		assert.Nil(t, Suggest(NewInternalError(ErrCodeInternalError, "boom", nil)))
	})
}

func TestFormatSuggestions(t *testing.T) {
	assert.Equal(t, "title", FormatSuggestions("title", nil))

	out := FormatSuggestions("Error: no solver", []ErrorSuggestion{{
		Title:   "List the available days",
		Command: "subsea list",
	}})
	assert.Equal(t, "Error: no solver\n\nSuggestions:\n  1. List the available days\n     Run: subsea list\n", out)
}
