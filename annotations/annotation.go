package annotations

import (
	"fmt"

	"github.com/hupe1980/plotspec/property"
)

// Role distinguishes the abstract bases an annotation descends from.
type Role uint8

const (
	// RoleText marks a renderable text overlay (Label, Title).
	RoleText Role = iota
	// RoleData marks the vectorized, source-bound variant (LabelSet).
	RoleData
)

// String returns the string representation of the Role.
func (r Role) String() string {
	switch r {
	case RoleText:
		return "TextAnnotation"
	case RoleData:
		return "DataAnnotation"
	default:
		return "Unknown"
	}
}

// Schema is the exhaustive, ordered field set of one annotation variant.
// It is immutable after construction and safe for concurrent reads.
type Schema struct {
	variant string
	role    Role
	fields  []property.FieldSpec
	byName  map[string]int
}

// NewSchema assembles a schema from flattened descriptor lists. Field
// order is the wire order. Duplicate names panic: schemas are assembled
// from package-level declarations, so a collision is a programming error.
func NewSchema(variant string, role Role, fields []property.FieldSpec) *Schema {
	s := &Schema{
		variant: variant,
		role:    role,
		fields:  fields,
		byName:  make(map[string]int, len(fields)),
	}
	for i, fs := range fields {
		if _, dup := s.byName[fs.Name]; dup {
			panic(fmt.Sprintf("annotations: duplicate field %q in %s schema", fs.Name, variant))
		}
		s.byName[fs.Name] = i
	}
	return s
}

// Variant returns the variant name (e.g. "Label").
func (s *Schema) Variant() string { return s.variant }

// Role returns the variant's abstract base.
func (s *Schema) Role() Role { return s.role }

// RequiresSource reports whether instances bind an external data source.
func (s *Schema) RequiresSource() bool { return s.role == RoleData }

// Fields returns a copy of the ordered field descriptors.
func (s *Schema) Fields() []property.FieldSpec {
	out := make([]property.FieldSpec, len(s.fields))
	copy(out, s.fields)
	return out
}

// Len returns the number of fields.
func (s *Schema) Len() int { return len(s.fields) }

// Lookup returns the descriptor for the named field.
func (s *Schema) Lookup(name string) (property.FieldSpec, bool) {
	i, ok := s.byName[name]
	if !ok {
		return property.FieldSpec{}, false
	}
	return s.fields[i], true
}

// WithDefaults returns a copy of the schema with the given default
// overlays applied (e.g. from a theme). Overlay values pass the same
// validation as assignments.
func (s *Schema) WithDefaults(overlay map[string]any) (*Schema, error) {
	if len(overlay) == 0 {
		return s, nil
	}
	fields := s.Fields()
	for i := range fields {
		ov, ok := overlay[fields[i].Name]
		if !ok {
			continue
		}
		if fields[i].Vector {
			spec, err := fields[i].ConvertSpec(ov)
			if err != nil {
				return nil, err
			}
			if spec.IsField() {
				fields[i].DefaultField = spec.FieldName()
			} else {
				fields[i].Default = spec.Value()
				fields[i].DefaultField = ""
			}
			continue
		}
		val, err := fields[i].Convert(ov)
		if err != nil {
			return nil, err
		}
		fields[i].Default = val
	}
	for name := range overlay {
		if _, ok := s.byName[name]; !ok {
			return nil, &ErrInvalidField{Variant: s.variant, Field: name}
		}
	}
	return NewSchema(s.variant, s.role, fields), nil
}
