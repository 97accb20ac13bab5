package plotspec

import (
	"errors"
	"fmt"

	"github.com/hupe1980/plotspec/annotations"
	"github.com/hupe1980/plotspec/property"
)

var (
	// ErrRowIndexRequired is returned when a column-backed field is
	// resolved without a row index.
	ErrRowIndexRequired = errors.New("row index required for column-backed field")

	// ErrSourceRequired is returned when a column-backed field is
	// resolved on an instance with no bound data source.
	ErrSourceRequired = errors.New("no data source bound")
)

// ErrUnknownVariant indicates a variant name outside the registry.
type ErrUnknownVariant struct {
	Variant string
}

func (e *ErrUnknownVariant) Error() string {
	return fmt.Sprintf("unknown variant: %q", e.Variant)
}

// ErrInvalidField indicates a field name outside a variant's field set.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrInvalidField struct {
	Variant string
	Field   string
	cause   error
}

func (e *ErrInvalidField) Error() string {
	return fmt.Sprintf("invalid field %q on %s", e.Field, e.Variant)
}

func (e *ErrInvalidField) Unwrap() error { return e.cause }

// ErrInvalidValue indicates a value violating its field's type, enum or
// non-null constraint.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrInvalidValue struct {
	Field  string
	Reason string
	cause  error
}

func (e *ErrInvalidValue) Error() string {
	return fmt.Sprintf("invalid value for field %q: %s", e.Field, e.Reason)
}

func (e *ErrInvalidValue) Unwrap() error { return e.cause }

// ErrMissingColumn indicates a column reference absent from the bound
// data source.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrMissingColumn struct {
	Field  string
	Column string
	cause  error
}

func (e *ErrMissingColumn) Error() string {
	return fmt.Sprintf("field %q references missing column %q", e.Field, e.Column)
}

func (e *ErrMissingColumn) Unwrap() error { return e.cause }

// ErrRowOutOfRange indicates a row index beyond the bound source.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrRowOutOfRange struct {
	Row   int
	Rows  int
	cause error
}

func (e *ErrRowOutOfRange) Error() string {
	return fmt.Sprintf("row %d out of range (source has %d rows)", e.Row, e.Rows)
}

func (e *ErrRowOutOfRange) Unwrap() error { return e.cause }

func translateError(err error) error {
	if err == nil {
		return nil
	}

	var iv *property.ErrInvalidValue
	if errors.As(err, &iv) {
		return &ErrInvalidValue{Field: iv.Field, Reason: iv.Reason, cause: err}
	}

	var ifd *annotations.ErrInvalidField
	if errors.As(err, &ifd) {
		return &ErrInvalidField{Variant: ifd.Variant, Field: ifd.Field, cause: err}
	}
	var mc *annotations.ErrMissingColumn
	if errors.As(err, &mc) {
		return &ErrMissingColumn{Field: mc.Field, Column: mc.Column, cause: err}
	}
	var oor *annotations.ErrRowOutOfRange
	if errors.As(err, &oor) {
		return &ErrRowOutOfRange{Row: oor.Row, Rows: oor.Rows, cause: err}
	}
	if errors.Is(err, annotations.ErrRowIndexRequired) {
		return fmt.Errorf("%w: %w", ErrRowIndexRequired, err)
	}
	if errors.Is(err, annotations.ErrSourceRequired) {
		return fmt.Errorf("%w: %w", ErrSourceRequired, err)
	}

	return err
}
