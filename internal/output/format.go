package output

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnsupportedFormat is returned when a format is not handled by the
// requested encoder.
var ErrUnsupportedFormat = errors.New("unsupported format")

// Format enumerates every textual encoding the tool can produce. Not every
// encoder accepts every format: tabular output takes pretty, csv, json and
// jsonl while metadata output takes json, toml and yaml.
type Format int

const (
	FormatPretty Format = iota
	FormatCSV
	FormatJSON
	FormatJSONL
	FormatTOML
	FormatYAML
)

var formatNames = [...]string{
	FormatPretty: "pretty",
	FormatCSV:    "csv",
	FormatJSON:   "json",
	FormatJSONL:  "jsonl",
	FormatTOML:   "toml",
	FormatYAML:   "yaml",
}

// TableFormats are the formats accepted by Render.
var TableFormats = []Format{FormatPretty, FormatCSV, FormatJSON, FormatJSONL}

// MetaFormats are the formats accepted by EncodeMeta.
var MetaFormats = []Format{FormatJSON, FormatTOML, FormatYAML}

func (f Format) String() string {
	if f < 0 || int(f) >= len(formatNames) {
		return fmt.Sprintf("Format(%d)", int(f))
	}
	return formatNames[f]
}

// ParseFormat maps a flag value onto a Format. Matching is case-insensitive.
func ParseFormat(s string) (Format, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range formatNames {
		if n == name {
			return Format(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// ParseFormatIn is ParseFormat restricted to the allowed set.
func ParseFormatIn(s string, allowed []Format) (Format, error) {
	f, err := ParseFormat(s)
	if err != nil {
		return 0, fmt.Errorf("%w (must be one of %s)", err, FormatNames(allowed))
	}
	for _, a := range allowed {
		if a == f {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%w: %q (must be one of %s)", ErrUnsupportedFormat, s, FormatNames(allowed))
}

// FormatNames joins the flag spellings of formats with commas.
func FormatNames(formats []Format) string {
	names := make([]string, len(formats))
	for i, f := range formats {
		names[i] = f.String()
	}
	return strings.Join(names, ",")
}
