package command

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vegasq/pqtool/internal/output"
)

func TestFlagValidators(t *testing.T) {
	assert.NoError(t, FlagValidators("csv", FormatValidator(output.TableFormats)))
	assert.NoError(t, FlagValidators("TOML", FormatValidator(output.MetaFormats)))
	assert.Error(t, FlagValidators("yaml", FormatValidator(output.TableFormats)))

	assert.NoError(t, FlagValidators(0, MinValidator(0)))
	assert.NoError(t, FlagValidators(-1, MinValidator(-1)))
	assert.EqualError(t, FlagValidators(-3, MinValidator(-1)), "must be at least -1, got -3")
}
