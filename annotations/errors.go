package annotations

import (
	"errors"
	"fmt"
)

var (
	// ErrRowIndexRequired is returned when a column-backed field is
	// resolved without a row index.
	ErrRowIndexRequired = errors.New("row index required for column-backed field")

	// ErrSourceRequired is returned when a column-backed field is
	// resolved on an instance with no bound data source.
	ErrSourceRequired = errors.New("no data source bound")
)

// ErrInvalidField indicates a field name outside the variant's field set.
type ErrInvalidField struct {
	Variant string
	Field   string
}

func (e *ErrInvalidField) Error() string {
	return fmt.Sprintf("unknown field %q on %s", e.Field, e.Variant)
}

// ErrMissingColumn indicates a column reference that is absent from the
// bound data source.
type ErrMissingColumn struct {
	Field  string
	Column string
}

func (e *ErrMissingColumn) Error() string {
	return fmt.Sprintf("field %q references missing column %q", e.Field, e.Column)
}

// ErrRowOutOfRange indicates a row index beyond the bound source.
type ErrRowOutOfRange struct {
	Row  int
	Rows int
}

func (e *ErrRowOutOfRange) Error() string {
	return fmt.Sprintf("row %d out of range (source has %d rows)", e.Row, e.Rows)
}
