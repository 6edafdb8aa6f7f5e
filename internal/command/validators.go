package command

import (
	"fmt"

	"github.com/vegasq/pqtool/internal/output"
)

type FlagValidatorType func(any) error

func FlagValidators(value any, validators ...FlagValidatorType) error {
	for _, v := range validators {
		if err := v(value); err != nil {
			return err
		}
	}
	return nil
}

// FormatValidator accepts format names from the allowed set.
func FormatValidator(allowed []output.Format) FlagValidatorType {
	return func(value any) error {
		_, err := output.ParseFormatIn(value.(string), allowed)
		return err
	}
}

// MinValidator accepts integers of at least lower.
func MinValidator(lower int) FlagValidatorType {
	return func(value any) error {
		if v := value.(int); v < lower {
			return fmt.Errorf("must be at least %d, got %d", lower, v)
		}
		return nil
	}
}
