// Package table provides a small in-memory tabular data model: ordered
// columns, nullable scalar cells, projection, filtering, and a hash-based
// full outer join. Column names may repeat; by-name lookups resolve to the
// first occurrence.
package table

import (
	"fmt"
	"strings"
)

// SchemaError reports a column required by an operation that is not present
// in the table.
type SchemaError struct {
	Column string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("table: column %q not present", e.Column)
}

// Table is an ordered sequence of rows sharing a column schema.
type Table struct {
	cols []string
	rows [][]Value
}

// New returns an empty table with the given column schema.
func New(cols ...string) *Table {
	return &Table{cols: append([]string(nil), cols...)}
}

// Columns returns the column names in order. The caller must not modify
// the returned slice.
func (t *Table) Columns() []string {
	return t.cols
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// Row returns row i. The caller must not modify the returned slice.
func (t *Table) Row(i int) []Value {
	return t.rows[i]
}

// Append adds a row, which must match the column arity.
func (t *Table) Append(row []Value) {
	if len(row) != len(t.cols) {
		panic(fmt.Sprintf("table: row has %d cells, schema has %d columns", len(row), len(t.cols)))
	}
	t.rows = append(t.rows, row)
}

// Index returns the position of the first column named col.
func (t *Table) Index(col string) (int, bool) {
	for i, c := range t.cols {
		if c == col {
			return i, true
		}
	}
	return 0, false
}

// Cell returns the value at row i in the first column named col.
func (t *Table) Cell(i int, col string) (Value, bool) {
	idx, ok := t.Index(col)
	if !ok {
		return Null(), false
	}
	return t.rows[i][idx], true
}

// Select projects the table onto the given columns, in the given order.
// Rows are copied, so mutating the result leaves the receiver untouched.
func (t *Table) Select(cols ...string) (*Table, error) {
	idx := make([]int, len(cols))
	for i, col := range cols {
		j, ok := t.Index(col)
		if !ok {
			return nil, &SchemaError{Column: col}
		}
		idx[i] = j
	}

	out := New(cols...)
	for _, row := range t.rows {
		proj := make([]Value, len(idx))
		for i, j := range idx {
			proj[i] = row[j]
		}
		out.rows = append(out.rows, proj)
	}
	return out, nil
}

// FilterEqFold keeps rows whose col equals val under case-insensitive
// comparison, preserving relative order. Null and numeric cells never match.
// An empty result keeps the schema. The result shares row storage with the
// receiver; Select before mutating cells.
func (t *Table) FilterEqFold(col, val string) (*Table, error) {
	idx, ok := t.Index(col)
	if !ok {
		return nil, &SchemaError{Column: col}
	}

	out := New(t.cols...)
	for _, row := range t.rows {
		s, ok := row[idx].Text()
		if ok && strings.EqualFold(s, val) {
			out.rows = append(out.rows, row)
		}
	}
	return out, nil
}

// MapColumn replaces every cell of col with fn(cell), in place.
func (t *Table) MapColumn(col string, fn func(Value) Value) error {
	idx, ok := t.Index(col)
	if !ok {
		return &SchemaError{Column: col}
	}
	for _, row := range t.rows {
		row[idx] = fn(row[idx])
	}
	return nil
}

// Rename renames the first column named old to new.
func (t *Table) Rename(old, new string) error {
	idx, ok := t.Index(old)
	if !ok {
		return &SchemaError{Column: old}
	}
	t.cols[idx] = new
	return nil
}

// AppendColumn adds a column whose cell for each row is fn(row index).
func (t *Table) AppendColumn(col string, fn func(i int) Value) {
	t.cols = append(t.cols, col)
	for i := range t.rows {
		t.rows[i] = append(t.rows[i], fn(i))
	}
}
