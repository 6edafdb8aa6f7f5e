package output

import (
	"bytes"
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONLinesFormatter_Format(t *testing.T) {
	tests := []struct {
		name    string
		columns []string
		rows    []map[string]any
	}{
		{
			name:    "empty rows",
			columns: []string{"id"},
			rows:    []map[string]any{},
		},
		{
			name:    "single row",
			columns: []string{"id", "name", "age"},
			rows: []map[string]any{
				{"id": int64(1), "name": "alice", "age": int32(30)},
			},
		},
		{
			name:    "multiple rows",
			columns: []string{"id", "name", "age"},
			rows: []map[string]any{
				{"id": int64(1), "name": "alice", "age": int32(30)},
				{"id": int64(2), "name": "bob", "age": int32(25)},
			},
		},
		{
			name:    "nil values",
			columns: []string{"id", "name"},
			rows: []map[string]any{
				{"id": int64(1), "name": nil},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, NewJSONLinesFormatter(&buf).Format(tt.columns, tt.rows))

			output := buf.String()
			if len(tt.rows) == 0 {
				assert.Empty(t, output, "empty rows should produce no output")
				return
			}

			lines := strings.Split(strings.TrimSuffix(output, "\n"), "\n")
			require.Len(t, lines, len(tt.rows))
			for i, line := range lines {
				var got map[string]any
				require.NoError(t, json.Unmarshal([]byte(line), &got), "line %d is not valid JSON", i)
				assert.Len(t, got, len(tt.columns))
			}
		})
	}
}

func TestJSONFormatter_Array(t *testing.T) {
	rows := []map[string]any{
		{"id": int64(1), "score": 95.5},
		{"id": int64(2), "score": 82.25},
	}

	var buf bytes.Buffer
	require.NoError(t, NewJSONFormatter(&buf).Format([]string{"id", "score"}, rows))
	assert.Equal(t, `[{"id":1,"score":95.5},{"id":2,"score":82.25}]`, buf.String())

	buf.Reset()
	require.NoError(t, NewJSONFormatter(&buf).Format([]string{"id"}, nil))
	assert.Equal(t, "[]", buf.String())
}

func TestJSONFormatter_KeyOrderAndEscaping(t *testing.T) {
	rows := []map[string]any{{"b": "<tag>&", "a": true}}

	var buf bytes.Buffer
	require.NoError(t, NewJSONLinesFormatter(&buf).Format([]string{"b", "a"}, rows))
	assert.Equal(t, "{\"b\":\"<tag>&\",\"a\":true}\n", buf.String())
}

func TestJSONFormatter_NonFiniteFloats(t *testing.T) {
	rows := []map[string]any{{
		"nan":    math.NaN(),
		"inf":    float32(math.Inf(1)),
		"nested": []any{math.Inf(-1), 1.5},
	}}

	var buf bytes.Buffer
	require.NoError(t, NewJSONLinesFormatter(&buf).Format([]string{"nan", "inf", "nested"}, rows))
	assert.Equal(t, "{\"nan\":null,\"inf\":null,\"nested\":[null,1.5]}\n", buf.String())
}
