package reader

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/apex/log"
	"github.com/parquet-go/parquet-go"

	"github.com/vegasq/pqtool/internal/table"
)

// footerTrailer is the 4-byte footer length plus the "PAR1" magic.
const footerTrailer = 8

// Reader gives read access to one parquet file: its rows, schema and
// footer metadata.
//
// It maintains both an OS file handle and a parquet file handle to enable
// proper resource cleanup.
type Reader struct {
	path       string
	file       *os.File
	pqFile     *parquet.File
	footerSize int64
}

// NewReader opens the parquet file at path.
//
// The file is opened and validated as a parquet file. Returns an error if
// the file doesn't exist or is not a valid parquet file.
func NewReader(path string) (*Reader, error) {
	log.WithField("path", path).Debug("opening parquet file")

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	stat, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	pqFile, err := parquet.OpenFile(file, stat.Size())
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("failed to open parquet file: %w", err)
	}

	footerSize, err := readFooterSize(file, stat.Size())
	if err != nil {
		_ = file.Close()
		return nil, err
	}

	return &Reader{
		path:       path,
		file:       file,
		pqFile:     pqFile,
		footerSize: footerSize,
	}, nil
}

func readFooterSize(r io.ReaderAt, size int64) (int64, error) {
	if size < footerTrailer {
		return 0, fmt.Errorf("file too small to be parquet: %d bytes", size)
	}
	var trailer [footerTrailer]byte
	if _, err := r.ReadAt(trailer[:], size-footerTrailer); err != nil {
		return 0, fmt.Errorf("failed to read footer: %w", err)
	}
	return int64(binary.LittleEndian.Uint32(trailer[:4])), nil
}

// Path returns the path the reader was opened with.
func (r *Reader) Path() string {
	return r.path
}

// NumRows returns the row count recorded in the footer. No data pages are
// read.
func (r *Reader) NumRows() int64 {
	return r.pqFile.NumRows()
}

// Columns returns the top-level field names in schema order. These are the
// keys of the records produced by Scan.
func (r *Reader) Columns() []string {
	fields := r.pqFile.Schema().Fields()
	columns := make([]string, len(fields))
	for i, field := range fields {
		columns[i] = field.Name()
	}
	return columns
}

// Scan returns a lazy relation over the first limit rows of the file. A
// negative limit selects every row. Nothing is read until the relation is
// materialized or rendered.
func (r *Reader) Scan(limit int64) *Relation {
	return &Relation{reader: r, limit: limit}
}

// read reads up to limit rows into memory, or every row when limit is
// negative.
//
// Each row is returned as a map where keys are column names and values are
// the column values.
func (r *Reader) read(limit int64) ([]map[string]any, error) {
	n := r.NumRows()
	if limit >= 0 && limit < n {
		n = limit
	}
	log.WithFields(log.Fields{"path": r.path, "limit": limit, "rows": n}).Debug("scanning rows")

	rows := make([]map[string]any, 0, n)
	if n == 0 {
		return rows, nil
	}

	types := r.columnTypes()
	reader := parquet.NewReader(r.pqFile)
	defer func() { _ = reader.Close() }()

	for int64(len(rows)) < n {
		row := make(map[string]any)
		err := reader.Read(&row)
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("failed to read row %d: %w", len(rows), err)
		}
		convertRow(row, "", types)
		rows = append(rows, row)
	}

	return rows, nil
}

// convertRow rewrites the leaf values of row in place to the types their
// columns declare. Nested groups are walked with their dotted path.
func convertRow(row map[string]any, prefix string, types map[string]columnType) {
	for name, v := range row {
		path := prefix + name
		if ct, ok := types[path]; ok {
			row[name] = ct.convertValue(v)
			continue
		}
		switch x := v.(type) {
		case map[string]any:
			convertRow(x, path+".", types)
		case []any:
			for _, e := range x {
				if m, ok := e.(map[string]any); ok {
					convertRow(m, path+".", types)
				}
			}
		}
	}
}

// Close closes the underlying file. It is safe to call Close multiple
// times.
func (r *Reader) Close() error {
	if r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}

// Relation is a lazily evaluated scan of a parquet file. Records are read
// on first use and kept for later calls.
type Relation struct {
	reader *Reader
	limit  int64
	rows   []map[string]any
	read   bool
}

// Columns returns the column names in schema order.
func (rel *Relation) Columns() []string {
	return rel.reader.Columns()
}

// Records materializes the scan.
func (rel *Relation) Records() ([]map[string]any, error) {
	if !rel.read {
		rows, err := rel.reader.read(rel.limit)
		if err != nil {
			return nil, err
		}
		rel.rows = rows
		rel.read = true
	}
	return rel.rows, nil
}

// Render materializes the scan and draws it as a text table.
func (rel *Relation) Render(w io.Writer) error {
	rows, err := rel.Records()
	if err != nil {
		return err
	}
	return table.Render(w, rel.Columns(), rows)
}
