package output

import (
	"bytes"
	"encoding/json"
	"io"
	"math"
)

// JSONFormatter outputs rows either as a single JSON array of objects or,
// in lines mode, as JSON Lines (one object per line).
type JSONFormatter struct {
	writer io.Writer
	lines  bool
}

// NewJSONFormatter creates a formatter that writes one JSON array.
func NewJSONFormatter(w io.Writer) *JSONFormatter {
	return &JSONFormatter{writer: w}
}

// NewJSONLinesFormatter creates a JSON Lines formatter
func NewJSONLinesFormatter(w io.Writer) *JSONFormatter {
	return &JSONFormatter{writer: w, lines: true}
}

// SetOutput sets the output writer
func (j *JSONFormatter) SetOutput(w io.Writer) {
	j.writer = w
}

// Format writes rows as JSON objects whose keys follow the column order.
func (j *JSONFormatter) Format(columns []string, rows []map[string]any) error {
	var buf bytes.Buffer

	if !j.lines {
		buf.WriteByte('[')
	}
	for i, row := range rows {
		if i > 0 {
			if j.lines {
				buf.WriteByte('\n')
			} else {
				buf.WriteByte(',')
			}
		}
		if err := writeObject(&buf, columns, row); err != nil {
			return err
		}
	}
	if !j.lines {
		buf.WriteByte(']')
	} else if len(rows) > 0 {
		buf.WriteByte('\n')
	}

	_, err := j.writer.Write(buf.Bytes())
	return err
}

func writeObject(buf *bytes.Buffer, columns []string, row map[string]any) error {
	buf.WriteByte('{')
	for i, col := range columns {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeValue(buf, col); err != nil {
			return err
		}
		buf.WriteByte(':')
		if err := writeValue(buf, jsonValue(row[col])); err != nil {
			return err
		}
	}
	buf.WriteByte('}')
	return nil
}

func writeValue(buf *bytes.Buffer, v any) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return err
	}
	// Encode terminates every value with a newline
	buf.Truncate(buf.Len() - 1)
	return nil
}

// jsonValue replaces values JSON cannot represent. NaN and infinities
// become null, matching what most dataframe tools emit.
func jsonValue(v any) any {
	switch val := v.(type) {
	case float64:
		if math.IsNaN(val) || math.IsInf(val, 0) {
			return nil
		}
	case float32:
		if math.IsNaN(float64(val)) || math.IsInf(float64(val), 0) {
			return nil
		}
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, e := range val {
			out[k] = jsonValue(e)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, e := range val {
			out[i] = jsonValue(e)
		}
		return out
	}
	return v
}
