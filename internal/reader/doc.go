// Package reader opens Apache Parquet files and exposes what the inspection
// commands need from them: the row count, lazy limited scans, the flattened
// schema, key/value metadata, footer metadata and column statistics.
//
// # Basic Usage
//
// Previewing the first rows of a file:
//
//	r, err := reader.NewReader("data.parquet")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer r.Close()
//
//	rows, err := r.Scan(10).Records()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Scan never reads more rows than requested, and NumRows comes straight
// from the footer, so checking the size of a file is cheap:
//
//	if r.NumRows() > limit {
//	    return errTooLarge
//	}
//
// # Schema Introspection
//
// Schema flattens nested groups into leaf columns with dot-separated paths:
//
//	for _, col := range r.Schema() {
//	    fmt.Printf("%s: %s\n", col.Path, col.PhysicalType)
//	}
//
// # Metadata
//
// Metadata returns the footer as a nested map[string]any with nil for
// absent attributes. Byte-valued attributes are decoded with DecodeText;
// values that are not UTF-8 are emitted with a "base64:" prefix.
//
// # Resource Management
//
// Always call Close() when done reading to release file handles.
//
// The package uses github.com/parquet-go/parquet-go for the underlying
// parquet file operations.
package reader
