package output

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{in: "pretty", want: FormatPretty},
		{in: "csv", want: FormatCSV},
		{in: "JSON", want: FormatJSON},
		{in: " jsonl ", want: FormatJSONL},
		{in: "toml", want: FormatTOML},
		{in: "yaml", want: FormatYAML},
		{in: "xml", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnsupportedFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseFormatIn(t *testing.T) {
	f, err := ParseFormatIn("jsonl", TableFormats)
	require.NoError(t, err)
	assert.Equal(t, FormatJSONL, f)

	_, err = ParseFormatIn("toml", TableFormats)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
	assert.Contains(t, err.Error(), "pretty,csv,json,jsonl")

	_, err = ParseFormatIn("csv", MetaFormats)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestFormat_String(t *testing.T) {
	for i, name := range formatNames {
		assert.Equal(t, name, Format(i).String())
	}
	assert.Equal(t, "Format(-1)", Format(-1).String())
}
