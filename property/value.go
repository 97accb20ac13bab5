package property

import (
	"math"
	"strconv"
	"strings"
)

// Kind identifies the concrete type stored in a Value.
type Kind uint8

const (
	// KindInvalid represents an invalid kind.
	KindInvalid Kind = iota
	// KindNull represents a null value.
	KindNull
	// KindNumber represents a numeric value.
	KindNumber
	// KindString represents a string value.
	KindString
	// KindBool represents a boolean value.
	KindBool
	// KindArray represents an array value.
	KindArray
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "Null"
	case KindNumber:
		return "Number"
	case KindString:
		return "String"
	case KindBool:
		return "Bool"
	case KindArray:
		return "Array"
	default:
		return "Invalid"
	}
}

// Value is a small typed value used for annotation properties.
//
// The representation avoids reflection and fmt-based stringification:
// validation and serialization switch on Kind directly. Wire documents
// carry the Interface() form, not this struct.
type Value struct {
	Kind Kind
	F64  float64
	S    string
	B    bool
	A    []Value
}

// Null returns a null Value.
func Null() Value { return Value{Kind: KindNull} }

// Number returns a numeric Value.
func Number(v float64) Value { return Value{Kind: KindNumber, F64: v} }

// String returns a string Value.
func String(v string) Value { return Value{Kind: KindString, S: v} }

// Bool returns a boolean Value.
func Bool(v bool) Value { return Value{Kind: KindBool, B: v} }

// Array returns an array Value.
func Array(v []Value) Value { return Value{Kind: KindArray, A: v} }

// IsNull reports whether the Value is null.
func (v Value) IsNull() bool { return v.Kind == KindNull }

// AsNumber returns the numeric value if Kind is KindNumber.
func (v Value) AsNumber() (float64, bool) {
	if v.Kind != KindNumber {
		return 0, false
	}
	return v.F64, true
}

// AsString returns the string value if Kind is KindString.
func (v Value) AsString() (string, bool) {
	if v.Kind != KindString {
		return "", false
	}
	return v.S, true
}

// AsBool returns the boolean value if Kind is KindBool.
func (v Value) AsBool() (bool, bool) {
	if v.Kind != KindBool {
		return false, false
	}
	return v.B, true
}

// AsArray returns the array value if Kind is KindArray.
func (v Value) AsArray() ([]Value, bool) {
	if v.Kind != KindArray {
		return nil, false
	}
	return v.A, true
}

// Equal reports deep equality of two Values.
//
// Numbers compare by value, so Number(2) equals a decoded float64(2)
// regardless of the Go type it originated from.
func (v Value) Equal(o Value) bool {
	if v.Kind != o.Kind {
		return false
	}
	switch v.Kind {
	case KindNumber:
		return v.F64 == o.F64 || (math.IsNaN(v.F64) && math.IsNaN(o.F64))
	case KindString:
		return v.S == o.S
	case KindBool:
		return v.B == o.B
	case KindArray:
		if len(v.A) != len(o.A) {
			return false
		}
		for i := range v.A {
			if !v.A[i].Equal(o.A[i]) {
				return false
			}
		}
		return true
	default:
		return true
	}
}

// Key returns a stable string representation for use in maps and logs.
func (v Value) Key() string {
	switch v.Kind {
	case KindNull:
		return "null"
	case KindNumber:
		return "n:" + strconv.FormatUint(math.Float64bits(v.F64), 16)
	case KindString:
		return "s:" + v.S
	case KindBool:
		if v.B {
			return "b:1"
		}
		return "b:0"
	case KindArray:
		if len(v.A) == 0 {
			return "a:"
		}
		parts := make([]string, len(v.A))
		for i := range v.A {
			parts[i] = v.A[i].Key()
		}
		return "a:" + strings.Join(parts, "\x1f")
	default:
		return "invalid"
	}
}

// Interface returns the plain Go representation of the Value, suitable
// for handing to a codec. Null maps to nil, arrays to []any.
func (v Value) Interface() any {
	switch v.Kind {
	case KindNumber:
		return v.F64
	case KindString:
		return v.S
	case KindBool:
		return v.B
	case KindArray:
		out := make([]any, len(v.A))
		for i := range v.A {
			out[i] = v.A[i].Interface()
		}
		return out
	default:
		return nil
	}
}

// FromInterface converts a plain Go value into a Value.
//
// All numeric widths collapse to float64, matching what JSON decoding
// produces. Returns false for types with no Value representation.
func FromInterface(v any) (Value, bool) {
	switch val := v.(type) {
	case nil:
		return Null(), true
	case Value:
		return val, true
	case float64:
		return Number(val), true
	case float32:
		return Number(float64(val)), true
	case int:
		return Number(float64(val)), true
	case int8:
		return Number(float64(val)), true
	case int16:
		return Number(float64(val)), true
	case int32:
		return Number(float64(val)), true
	case int64:
		return Number(float64(val)), true
	case uint:
		return Number(float64(val)), true
	case uint8:
		return Number(float64(val)), true
	case uint16:
		return Number(float64(val)), true
	case uint32:
		return Number(float64(val)), true
	case uint64:
		return Number(float64(val)), true
	case string:
		return String(val), true
	case bool:
		return Bool(val), true
	case []any:
		arr := make([]Value, len(val))
		for i := range val {
			el, ok := FromInterface(val[i])
			if !ok {
				return Value{}, false
			}
			arr[i] = el
		}
		return Array(arr), true
	case []float64:
		arr := make([]Value, len(val))
		for i := range val {
			arr[i] = Number(val[i])
		}
		return Array(arr), true
	case []string:
		arr := make([]Value, len(val))
		for i := range val {
			arr[i] = String(val[i])
		}
		return Array(arr), true
	default:
		return Value{}, false
	}
}
