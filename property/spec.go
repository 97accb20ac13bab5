package property

// DataSpec is the tagged union behind every vectorizable field: either a
// literal Value or a reference to a named column in a bound data source.
//
// The union is collapsed only at resolution time, against a supplied row
// context. Assignment never eagerly resolves a column reference.
type DataSpec struct {
	field   string
	value   Value
	isField bool
}

// LitSpec returns a DataSpec holding a literal value.
func LitSpec(v Value) DataSpec { return DataSpec{value: v} }

// FieldSpecOf returns a DataSpec referencing the named column.
func FieldSpecOf(name string) DataSpec { return DataSpec{field: name, isField: true} }

// IsField reports whether the spec is a column reference.
func (s DataSpec) IsField() bool { return s.isField }

// FieldName returns the referenced column name. Empty for literals.
func (s DataSpec) FieldName() string {
	if !s.isField {
		return ""
	}
	return s.field
}

// Value returns the literal value. Meaningful only when IsField is false.
func (s DataSpec) Value() Value { return s.value }

// Equal reports equality of two DataSpecs.
func (s DataSpec) Equal(o DataSpec) bool {
	if s.isField != o.isField {
		return false
	}
	if s.isField {
		return s.field == o.field
	}
	return s.value.Equal(o.value)
}

// FieldRef marks an assignment value as a column reference.
//
// Assigning Field("height") to a vectorizable field makes the field read
// its per-row values from the "height" column of the bound source.
type FieldRef string

// Field returns a column-reference assignment marker.
func Field(name string) FieldRef { return FieldRef(name) }

// Literal marks an assignment value as a literal, overriding the
// string-means-column convention of vectorizable fields.
//
// Assigning Lit("label") to a vectorizable string field stores the literal
// string "label" instead of referencing a column of that name.
type Literal struct {
	V any
}

// Lit returns a literal assignment marker.
func Lit(v any) Literal { return Literal{V: v} }
