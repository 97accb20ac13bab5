package property

import "fmt"

// ErrInvalidValue indicates a value that violates its field's type, enum
// or non-null constraint.
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
