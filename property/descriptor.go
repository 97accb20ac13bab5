package property

import (
	"fmt"
	"slices"
)

// FieldType defines the semantic type of an annotation field.
type FieldType uint8

const (
	// FieldTypeNumber is a float64-valued field.
	FieldTypeNumber FieldType = iota
	// FieldTypeString is a free-form string field.
	FieldTypeString
	// FieldTypeBool is a boolean field.
	FieldTypeBool
	// FieldTypeEnum is a string field restricted to a declared domain.
	FieldTypeEnum
	// FieldTypeColor is a string-valued color field. Null means "unset".
	FieldTypeColor
	// FieldTypeAlpha is a numeric field clamped to the [0, 1] domain.
	FieldTypeAlpha
	// FieldTypeNumberArray is an array-of-numbers field (e.g. dash patterns).
	FieldTypeNumberArray
)

// String returns the string representation of the FieldType.
func (t FieldType) String() string {
	switch t {
	case FieldTypeNumber:
		return "Number"
	case FieldTypeString:
		return "String"
	case FieldTypeBool:
		return "Bool"
	case FieldTypeEnum:
		return "Enum"
	case FieldTypeColor:
		return "Color"
	case FieldTypeAlpha:
		return "Alpha"
	case FieldTypeNumberArray:
		return "NumberArray"
	default:
		return "Unknown"
	}
}

// FieldSpec describes a single annotation field: its name, semantic type,
// default, enum domain and assignment behavior.
//
// Field names are part of the wire contract; renderers and persisted
// documents key on them verbatim.
type FieldSpec struct {
	// Name is the exact wire name of the field.
	Name string
	// Type is the semantic type used for validation.
	Type FieldType
	// Enum is the declared domain for FieldTypeEnum fields.
	Enum []string
	// NonNull rejects null assignments.
	NonNull bool
	// Vector marks the field as vectorizable (literal or column reference).
	Vector bool
	// Default is the literal default.
	Default Value
	// DefaultField, when non-empty on a vector field, makes the default a
	// reference to this column instead of the literal Default.
	DefaultField string
	// Normalize, when set, is applied once at assignment time before
	// validation (e.g. datetime to epoch milliseconds).
	Normalize Normalizer
}

// DefaultSpec returns the field's default as a DataSpec.
func (fs FieldSpec) DefaultSpec() DataSpec {
	if fs.Vector && fs.DefaultField != "" {
		return FieldSpecOf(fs.DefaultField)
	}
	return LitSpec(fs.Default)
}

// Convert validates and converts an assignment value into its canonical
// literal representation.
func (fs FieldSpec) Convert(v any) (Value, error) {
	if fs.Normalize != nil {
		if nv, ok := fs.Normalize(v); ok {
			v = nv
		}
	}

	val, ok := FromInterface(v)
	if !ok {
		return Value{}, &ErrInvalidValue{Field: fs.Name, Reason: fmt.Sprintf("unsupported type %T", v)}
	}

	if val.IsNull() {
		if fs.NonNull {
			return Value{}, &ErrInvalidValue{Field: fs.Name, Reason: "null not allowed"}
		}
		if fs.Type == FieldTypeEnum {
			return Value{}, &ErrInvalidValue{Field: fs.Name, Reason: "null is not a member of the enum domain"}
		}
		return val, nil
	}

	switch fs.Type {
	case FieldTypeNumber:
		if val.Kind != KindNumber {
			return Value{}, &ErrInvalidValue{Field: fs.Name, Reason: fmt.Sprintf("expected number, got %s", val.Kind)}
		}
	case FieldTypeString, FieldTypeColor:
		if val.Kind != KindString {
			return Value{}, &ErrInvalidValue{Field: fs.Name, Reason: fmt.Sprintf("expected string, got %s", val.Kind)}
		}
	case FieldTypeBool:
		if val.Kind != KindBool {
			return Value{}, &ErrInvalidValue{Field: fs.Name, Reason: fmt.Sprintf("expected bool, got %s", val.Kind)}
		}
	case FieldTypeEnum:
		if val.Kind != KindString {
			return Value{}, &ErrInvalidValue{Field: fs.Name, Reason: fmt.Sprintf("expected one of %v, got %s", fs.Enum, val.Kind)}
		}
		if !slices.Contains(fs.Enum, val.S) {
			return Value{}, &ErrInvalidValue{Field: fs.Name, Reason: fmt.Sprintf("%q is not one of %v", val.S, fs.Enum)}
		}
	case FieldTypeAlpha:
		if val.Kind != KindNumber {
			return Value{}, &ErrInvalidValue{Field: fs.Name, Reason: fmt.Sprintf("expected number, got %s", val.Kind)}
		}
		if val.F64 < 0 || val.F64 > 1 {
			return Value{}, &ErrInvalidValue{Field: fs.Name, Reason: fmt.Sprintf("alpha %v outside [0, 1]", val.F64)}
		}
	case FieldTypeNumberArray:
		if val.Kind != KindArray {
			return Value{}, &ErrInvalidValue{Field: fs.Name, Reason: fmt.Sprintf("expected array, got %s", val.Kind)}
		}
		for i := range val.A {
			if val.A[i].Kind != KindNumber {
				return Value{}, &ErrInvalidValue{Field: fs.Name, Reason: fmt.Sprintf("array element %d is %s, expected number", i, val.A[i].Kind)}
			}
		}
	}

	return val, nil
}

// ConvertSpec validates and converts an assignment value for a
// vectorizable field into a DataSpec.
//
// Assignment conventions:
//
//   - Field("name") and FieldRef are always column references.
//   - Lit(v) is always a literal, validated against the field type.
//   - A bare string on a string- or number-typed vector field is a column
//     reference. On enum fields a string inside the domain is a literal,
//     outside it a column reference. On color fields a bare string is a
//     literal color.
//   - Everything else is a literal.
func (fs FieldSpec) ConvertSpec(v any) (DataSpec, error) {
	switch sv := v.(type) {
	case DataSpec:
		if sv.IsField() {
			if sv.FieldName() == "" {
				return DataSpec{}, &ErrInvalidValue{Field: fs.Name, Reason: "empty column reference"}
			}
			return sv, nil
		}
		lit, err := fs.Convert(sv.Value())
		if err != nil {
			return DataSpec{}, err
		}
		return LitSpec(lit), nil
	case FieldRef:
		if sv == "" {
			return DataSpec{}, &ErrInvalidValue{Field: fs.Name, Reason: "empty column reference"}
		}
		return FieldSpecOf(string(sv)), nil
	case Literal:
		lit, err := fs.Convert(sv.V)
		if err != nil {
			return DataSpec{}, err
		}
		return LitSpec(lit), nil
	case string:
		switch fs.Type {
		case FieldTypeString, FieldTypeNumber, FieldTypeAlpha:
			return FieldSpecOf(sv), nil
		case FieldTypeEnum:
			if slices.Contains(fs.Enum, sv) {
				return LitSpec(String(sv)), nil
			}
			return FieldSpecOf(sv), nil
		}
	}

	lit, err := fs.Convert(v)
	if err != nil {
		return DataSpec{}, err
	}
	return LitSpec(lit), nil
}
