package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/conneroisu/subsea/internal/config"
	suberrors "github.com/conneroisu/subsea/internal/errors"
)

// formatValue is a pflag.Value that only accepts the supported output formats.
type formatValue struct {
	value string
}

var _ pflag.Value = (*formatValue)(nil)

func newFormatValue(def string) *formatValue {
	return &formatValue{value: def}
}

func (f *formatValue) String() string { return f.value }

func (f *formatValue) Set(val string) error {
	val = strings.ToLower(strings.TrimSpace(val))
	if err := ValidateFormat(val, config.OutputFormats); err != nil {
		return err
	}
	f.value = val
	return nil
}

func (f *formatValue) Type() string { return "format" }

// ValidateFormat checks format against allowed and suggests the closest
// match when a prefix was typed.
func ValidateFormat(format string, allowed []string) error {
	for _, a := range allowed {
		if format == a {
			return nil
		}
	}
	for _, a := range allowed {
		if format != "" && strings.HasPrefix(a, format) {
			return fmt.Errorf("invalid format %q, did you mean %q?", format, a)
		}
	}
	return fmt.Errorf("invalid format %q, must be one of: %s", format, strings.Join(allowed, ", "))
}

// AddFlagValidation adds validation for a specific flag
func AddFlagValidation(cmd *cobra.Command, flagName string, validator func(string) error) {
	flag := cmd.Flags().Lookup(flagName)
	if flag == nil {
		return
	}

	flag.Value = &validatingValue{
		Value:     flag.Value,
		validator: validator,
	}
}

type validatingValue struct {
	pflag.Value
	validator func(string) error
}

func (v *validatingValue) Set(val string) error {
	if v.validator != nil {
		if err := v.validator(val); err != nil {
			return err
		}
	}
	return v.Value.Set(val)
}

// parseDay parses a day argument in the range 1-25.
func parseDay(arg string) (int, error) {
	day, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil || day < 1 || day > 25 {
		return 0, suberrors.NewValidationError(suberrors.ErrCodeUnknownDay,
			fmt.Sprintf("day must be a number between 1 and 25, got %q", arg)).
			WithComponent("cli")
	}
	return day, nil
}
