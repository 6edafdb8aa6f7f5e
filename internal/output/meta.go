package output

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// EncodeMeta serializes a metadata mapping as indented JSON, TOML or YAML.
// Run Sanitize first when the mapping may hold nil or empty values and the
// target is TOML.
func EncodeMeta(m map[string]any, f Format) (string, error) {
	var (
		b   []byte
		err error
	)

	switch f {
	case FormatJSON:
		b, err = json.MarshalIndent(m, "", "  ")
	case FormatTOML:
		b, err = toml.Marshal(m)
	case FormatYAML:
		b, err = yaml.Marshal(m)
	default:
		return "", fmt.Errorf("%w for metadata: %s", ErrUnsupportedFormat, f)
	}
	if err != nil {
		return "", fmt.Errorf("failed to encode metadata as %s: %w", f, err)
	}

	return strings.TrimRight(string(b), "\n"), nil
}
