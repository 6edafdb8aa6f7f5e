package command

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/parquet-go/parquet-go"

	"github.com/vegasq/pqtool/internal/config"
)

type sampleRow struct {
	RandomInts   int64   `parquet:"random_ints"`
	RandomFloats float64 `parquet:"random_floats"`
	Category     string  `parquet:"A_B_or_C"`
}

func sampleRows(n int) []sampleRow {
	rows := make([]sampleRow, n)
	for i := range rows {
		rows[i] = sampleRow{
			RandomInts:   int64(i*7) % 100,
			RandomFloats: float64(i) / 8,
			Category:     string(rune('A' + i%3)),
		}
	}
	return rows
}

type unsignedRow struct {
	U   uint32 `parquet:"u"`
	U64 uint64 `parquet:"u64"`
	Raw []byte `parquet:"raw"`
}

func unsignedRows() []unsignedRow {
	return []unsignedRow{
		{U: 1, U64: 1, Raw: []byte("plain")},
		{U: 4000000000, U64: 18000000000000000000, Raw: []byte{0xff, 0x00}},
	}
}

// writeSample writes n sample rows to a fresh file and returns its path.
func writeSample(t *testing.T, n int, options ...parquet.WriterOption) string {
	t.Helper()
	return writeRows(t, sampleRows(n), options...)
}

// writeRows writes rows to a fresh file and returns its path.
func writeRows[T any](t *testing.T, rows []T, options ...parquet.WriterOption) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sample.parquet")

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}
	w := parquet.NewGenericWriter[T](f, options...)
	if _, err := w.Write(rows); err != nil {
		t.Fatalf("failed to write test data: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("failed to close writer: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("failed to close file: %v", err)
	}
	return path
}

// run executes the app with args and returns what was written to stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	return runWithConfig(t, config.Type{}, args...)
}

func runWithConfig(t *testing.T, cfg config.Type, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	env := &Env{Config: cfg, Out: &out, Err: &errOut}

	app := InitApp(context.Background(), env)
	err := app.Run(context.Background(), append([]string{"pqtool"}, args...))
	return out.String(), err
}
