package diagnostic

import (
	"fmt"

	suberrors "github.com/conneroisu/subsea/internal/errors"
)

const component = "diagnostic"

// Sentinels for errors.Is. Returned errors are fresh values carrying line
// and column context; they compare equal to these by type and code.
var (
	ErrEmptyInput       = suberrors.NewValidationError(suberrors.ErrCodeEmptyInput, "no diagnostic records")
	ErrMalformedRecord  = suberrors.NewValidationError(suberrors.ErrCodeMalformedRecord, "malformed diagnostic record")
	ErrExhaustedColumns = suberrors.NewValidationError(suberrors.ErrCodeExhaustedColumns, "filter ran out of columns")
)

func emptyInput() *suberrors.SubseaError {
	return suberrors.NewValidationError(suberrors.ErrCodeEmptyInput, "no diagnostic records").
		WithComponent(component)
}

func malformed(msg string) *suberrors.SubseaError {
	return suberrors.NewValidationError(suberrors.ErrCodeMalformedRecord, msg).
		WithComponent(component)
}

func widthMismatch(record Record, width int) *suberrors.SubseaError {
	return malformed(fmt.Sprintf("record %q is %d bits wide, expected %d", record.String(), record.Width(), width)).
		WithContext("expected", width).
		WithContext("actual", record.Width())
}

func exhaustedColumns(width int, surviving uint64) *suberrors.SubseaError {
	return suberrors.NewValidationError(
		suberrors.ErrCodeExhaustedColumns,
		fmt.Sprintf("%d records still survive after all %d columns", surviving, width),
	).
		WithComponent(component).
		WithContext("surviving", surviving)
}
