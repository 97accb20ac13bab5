package datasource

import (
	"fmt"
	"sort"

	"github.com/hupe1980/plotspec/property"
)

// ColumnSource is the tabular collaborator consumed by data-bound
// annotations: named columns of equal length.
//
// Sources are read-shared. Multiple annotations may reference the same
// source concurrently; none of them owns it.
type ColumnSource interface {
	// GetColumn returns the named column, or false if it does not exist.
	GetColumn(name string) ([]property.Value, bool)
	// RowCount returns the number of rows in the source.
	RowCount() int
}

// ErrColumnLengthMismatch indicates columns of unequal length.
type ErrColumnLengthMismatch struct {
	Column   string
	Expected int
	Actual   int
}

func (e *ErrColumnLengthMismatch) Error() string {
	return fmt.Sprintf("column %q has %d rows, expected %d", e.Column, e.Actual, e.Expected)
}

// ColumnDataSource is an in-memory ColumnSource.
type ColumnDataSource struct {
	cols map[string][]property.Value
	rows int
}

// NewColumnDataSource builds a source from plain Go columns. All columns
// must have equal length; values convert the same way property
// assignment does (numeric widths collapse to float64).
func NewColumnDataSource(data map[string][]any) (*ColumnDataSource, error) {
	ds := &ColumnDataSource{cols: make(map[string][]property.Value, len(data))}

	// Deterministic iteration so length-mismatch errors are stable.
	names := make([]string, 0, len(data))
	for name := range data {
		names = append(names, name)
	}
	sort.Strings(names)

	for i, name := range names {
		raw := data[name]
		if i == 0 {
			ds.rows = len(raw)
		} else if len(raw) != ds.rows {
			return nil, &ErrColumnLengthMismatch{Column: name, Expected: ds.rows, Actual: len(raw)}
		}
		col := make([]property.Value, len(raw))
		for j, v := range raw {
			val, ok := property.FromInterface(v)
			if !ok {
				return nil, fmt.Errorf("column %q row %d: unsupported type %T", name, j, v)
			}
			col[j] = val
		}
		ds.cols[name] = col
	}
	return ds, nil
}

// GetColumn returns the named column.
func (ds *ColumnDataSource) GetColumn(name string) ([]property.Value, bool) {
	col, ok := ds.cols[name]
	return col, ok
}

// RowCount returns the number of rows.
func (ds *ColumnDataSource) RowCount() int { return ds.rows }

// ColumnNames returns the column names in sorted order.
func (ds *ColumnDataSource) ColumnNames() []string {
	names := make([]string, 0, len(ds.cols))
	for name := range ds.cols {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// AddColumn adds or replaces a column. The column must match the current
// row count unless the source is empty.
func (ds *ColumnDataSource) AddColumn(name string, values []property.Value) error {
	if len(ds.cols) > 0 && len(values) != ds.rows {
		return &ErrColumnLengthMismatch{Column: name, Expected: ds.rows, Actual: len(values)}
	}
	if len(ds.cols) == 0 {
		ds.rows = len(values)
	}
	col := make([]property.Value, len(values))
	copy(col, values)
	ds.cols[name] = col
	return nil
}
