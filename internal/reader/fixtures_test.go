package reader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/parquet-go/parquet-go"
)

// sampleRow mirrors the frame used across the tool's tests: an int column,
// a float column and a string category column.
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

// writeParquetFile writes rows to dir/filename and returns the path.
func writeParquetFile[T any](t *testing.T, dir, filename string, rows []T, options ...parquet.WriterOption) string {
	t.Helper()
	testFile := filepath.Join(dir, filename)

	f, err := os.Create(testFile)
	if err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}

	writer := parquet.NewGenericWriter[T](f, options...)
	if _, err := writer.Write(rows); err != nil {
		t.Fatalf("failed to write test data: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("failed to close writer: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("failed to close file: %v", err)
	}

	return testFile
}

func openReader(t *testing.T, path string) *Reader {
	t.Helper()
	r, err := NewReader(path)
	if err != nil {
		t.Fatalf("NewReader() error = %v", err)
	}
	t.Cleanup(func() { _ = r.Close() })
	return r
}

// unsignedRow carries unsigned integers above the signed maximum and an
// unannotated byte array column.
type unsignedRow struct {
	U    uint32 `parquet:"u"`
	U64  uint64 `parquet:"u64"`
	Raw  []byte `parquet:"raw"`
	Name string `parquet:"name"`
}

func unsignedRows() []unsignedRow {
	return []unsignedRow{
		{U: 1, U64: 1, Raw: []byte("plain"), Name: "a"},
		{U: 4000000000, U64: 18000000000000000000, Raw: []byte{0xff, 0x00}, Name: "b"},
	}
}
