package annotations

import "github.com/hupe1980/plotspec/property"

// Resolve returns the effective value of a field.
//
// Literal fields return their literal, with or without a row index.
// Column-backed fields require a row index and a bound source; the
// lookup happens here, at read time, never at assignment.
func (in *Instance) Resolve(name string, rowIndex ...int) (property.Value, error) {
	spec, ok := in.cells[name]
	if !ok {
		return property.Value{}, &ErrInvalidField{Variant: in.schema.Variant(), Field: name}
	}

	if !spec.IsField() {
		return spec.Value(), nil
	}

	if len(rowIndex) == 0 {
		return property.Value{}, ErrRowIndexRequired
	}
	if in.source == nil {
		return property.Value{}, ErrSourceRequired
	}

	col, ok := in.source.GetColumn(spec.FieldName())
	if !ok {
		return property.Value{}, &ErrMissingColumn{Field: name, Column: spec.FieldName()}
	}

	row := rowIndex[0]
	if row < 0 || row >= len(col) {
		return property.Value{}, &ErrRowOutOfRange{Row: row, Rows: len(col)}
	}
	return col[row], nil
}
