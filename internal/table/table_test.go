package table

import (
	"bytes"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable_Render(t *testing.T) {
	tbl := New([]string{"id", "Name"}, []map[string]any{
		{"id": int64(1), "Name": "alice"},
		{"id": int64(2), "Name": nil},
	})

	var buf bytes.Buffer
	require.NoError(t, tbl.Render(&buf))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 6) // border, header, border, 2 rows, border
	assert.Contains(t, lines[1], "Name", "header case is preserved")
	assert.Contains(t, lines[3], "alice")
	assert.Contains(t, lines[4], "NULL")
}

func TestTable_Records(t *testing.T) {
	rows := []map[string]any{{"a": int64(1)}}
	tbl := New([]string{"a"}, rows)

	got, err := tbl.Records()
	require.NoError(t, err)
	assert.Equal(t, rows, got)
	assert.Equal(t, []string{"a"}, tbl.Columns())
	assert.Equal(t, 1, tbl.Len())
}

func TestText(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"nil", nil, ""},
		{"string", "abc", "abc"},
		{"bytes", []byte{0xff, 0x00}, "/wA="},
		{"bool", false, "false"},
		{"int32", int32(-5), "-5"},
		{"int64", int64(1) << 40, "1099511627776"},
		{"uint8", uint8(200), "200"},
		{"float64", 0.1, "0.1"},
		{"float64 whole", 3.0, "3"},
		{"float32", float32(0.1), "0.1"},
		{"nan", math.NaN(), "NaN"},
		{"time", time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC), "2024-01-02T03:04:05Z"},
		{"map", map[string]any{"k": "v"}, `{"k":"v"}`},
		{"slice", []any{int64(1), "x"}, `[1,"x"]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Text(tt.in))
		})
	}
}
