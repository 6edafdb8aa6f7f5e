package output

import (
	"fmt"
	"io"
	"strings"
)

// Relation is a handle to tabular data. Columns reports the column order,
// Records materializes every row in memory and Render draws the relation as
// a text table.
type Relation interface {
	Columns() []string
	Records() ([]map[string]any, error)
	Render(w io.Writer) error
}

// Formatter defines the interface for row formatters.
//
// Implementers must provide Format to write rows in the target format and
// SetOutput to change the output destination.
type Formatter interface {
	// Format writes rows in the formatter's specific format, with columns
	// emitted in the given order
	Format(columns []string, rows []map[string]any) error

	// SetOutput changes the output writer
	SetOutput(w io.Writer)
}

// Render converts rel into a single string in format f.
//
// Pretty output is produced by the relation itself. Every other format
// materializes the relation first. Formats that are not tabular (toml,
// yaml) return ErrUnsupportedFormat.
func Render(rel Relation, f Format) (string, error) {
	var buf strings.Builder

	var formatter Formatter
	switch f {
	case FormatPretty:
		if err := rel.Render(&buf); err != nil {
			return "", fmt.Errorf("failed to render table: %w", err)
		}
		return strings.TrimRight(buf.String(), "\n"), nil
	case FormatCSV:
		formatter = NewCSVFormatter(&buf)
	case FormatJSON:
		formatter = NewJSONFormatter(&buf)
	case FormatJSONL:
		formatter = NewJSONLinesFormatter(&buf)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, f)
	}

	rows, err := rel.Records()
	if err != nil {
		return "", fmt.Errorf("failed to materialize records: %w", err)
	}

	if err := formatter.Format(rel.Columns(), rows); err != nil {
		return "", fmt.Errorf("failed to format %s output: %w", f, err)
	}

	return strings.TrimRight(buf.String(), "\n"), nil
}
