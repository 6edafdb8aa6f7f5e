// Package table holds materialized tabular results and draws them as text
// tables.
package table

import (
	"io"

	"github.com/olekukonko/tablewriter"
)

// Table is a fully materialized relation: an ordered list of columns and
// rows keyed by column name.
type Table struct {
	columns []string
	rows    []map[string]any
}

// New returns a Table over columns and rows. Rows are not copied.
func New(columns []string, rows []map[string]any) *Table {
	return &Table{columns: columns, rows: rows}
}

// Columns returns the column names in display order.
func (t *Table) Columns() []string {
	return t.columns
}

// Records returns the rows. It never fails.
func (t *Table) Records() ([]map[string]any, error) {
	return t.rows, nil
}

// Len reports the number of rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// Render draws the table to w.
func (t *Table) Render(w io.Writer) error {
	return Render(w, t.columns, t.rows)
}

// Render draws rows as a bordered text table with one header line. Header
// names are printed as-is and nil cells show as NULL.
func Render(w io.Writer, columns []string, rows []map[string]any) error {
	tw := tablewriter.NewWriter(w)
	tw.SetHeader(columns)
	tw.SetAutoFormatHeaders(false)
	tw.SetAutoWrapText(false)
	tw.SetAlignment(tablewriter.ALIGN_LEFT)

	for _, row := range rows {
		cells := make([]string, len(columns))
		for i, col := range columns {
			v := row[col]
			if v == nil {
				cells[i] = "NULL"
				continue
			}
			cells[i] = Text(v)
		}
		tw.Append(cells)
	}

	tw.Render()
	return nil
}
