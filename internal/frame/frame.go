// Package frame holds the flat (rows x named statistics) table that
// collections export for downstream feature-engineering consumers.
package frame

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// Frame is an ordered table indexed by entity key. Cells are nil for null,
// or int64/float64/string per the declared attribute kind.
type Frame struct {
	indexName string
	columns   []string
	index     []string
	rows      []map[string]interface{}
}

// New creates an empty frame with a fixed column set. indexName labels the
// identity-key column on CSV output.
func New(indexName string, columns []string) *Frame {
	cols := make([]string, len(columns))
	copy(cols, columns)
	return &Frame{indexName: indexName, columns: cols}
}

// Append adds one entity's row. Row order is append order.
func (f *Frame) Append(key string, row map[string]interface{}) {
	f.index = append(f.index, key)
	f.rows = append(f.rows, row)
}

// Len returns the number of rows.
func (f *Frame) Len() int {
	return len(f.rows)
}

// Columns returns the fixed column set in declaration order.
func (f *Frame) Columns() []string {
	cols := make([]string, len(f.columns))
	copy(cols, f.columns)
	return cols
}

// Index returns the identity keys in row order.
func (f *Frame) Index() []string {
	keys := make([]string, len(f.index))
	copy(keys, f.index)
	return keys
}

// Row returns the i-th row.
func (f *Frame) Row(i int) map[string]interface{} {
	return f.rows[i]
}

// Records returns the rows with the index key folded in, ready for JSON
// encoding.
func (f *Frame) Records() []map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(f.rows))
	for i, row := range f.rows {
		rec := make(map[string]interface{}, len(row)+1)
		rec[f.indexName] = f.index[i]
		for k, v := range row {
			rec[k] = v
		}
		out = append(out, rec)
	}
	return out
}

// WriteCSV writes the frame with the index as the first column. Null cells
// are empty, so a missing stat stays distinguishable from a zero.
func (f *Frame) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)

	header := append([]string{f.indexName}, f.columns...)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	record := make([]string, len(header))
	for i, row := range f.rows {
		record[0] = f.index[i]
		for j, col := range f.columns {
			record[j+1] = formatCell(row[col])
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing row %s: %w", f.index[i], err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func formatCell(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case string:
		return val
	default:
		return fmt.Sprint(val)
	}
}
