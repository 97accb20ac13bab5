package annotations

import (
	"sort"

	"github.com/hupe1980/plotspec/datasource"
	"github.com/hupe1980/plotspec/property"
)

// SourceKey is the reserved override key that binds a data source at
// construction time on source-bound variants.
const SourceKey = "source"

// Instance is a constructed annotation: a schema plus per-field state.
//
// Mutation is validate-then-commit: a failed Set leaves the instance
// untouched. Every successful mutation bumps Revision, which external
// change-notification machinery can diff against to trigger re-renders.
//
// Instances are not safe for concurrent mutation; the surrounding
// runtime owns any locking discipline.
type Instance struct {
	schema   *Schema
	cells    map[string]property.DataSpec
	source   datasource.ColumnSource
	revision uint64
}

// Construct builds an instance of the schema, applying overrides on top
// of defaults. Validation is atomic: either every override is accepted
// or no instance is returned.
func Construct(schema *Schema, overrides map[string]any) (*Instance, error) {
	in := &Instance{
		schema: schema,
		cells:  make(map[string]property.DataSpec, schema.Len()),
	}
	for _, fs := range schema.Fields() {
		in.cells[fs.Name] = fs.DefaultSpec()
	}

	staged := make(map[string]property.DataSpec, len(overrides))

	// Deterministic order so the first error is stable.
	keys := make([]string, 0, len(overrides))
	for k := range overrides {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, name := range keys {
		if name == SourceKey && schema.RequiresSource() {
			src, ok := overrides[name].(datasource.ColumnSource)
			if !ok {
				return nil, &property.ErrInvalidValue{Field: SourceKey, Reason: "expected a datasource.ColumnSource"}
			}
			in.source = src
			continue
		}
		spec, err := in.convert(name, overrides[name])
		if err != nil {
			return nil, err
		}
		staged[name] = spec
	}

	for name, spec := range staged {
		in.cells[name] = spec
	}
	return in, nil
}

func (in *Instance) convert(name string, value any) (property.DataSpec, error) {
	fs, ok := in.schema.Lookup(name)
	if !ok {
		return property.DataSpec{}, &ErrInvalidField{Variant: in.schema.Variant(), Field: name}
	}
	if fs.Vector {
		return fs.ConvertSpec(value)
	}
	val, err := fs.Convert(value)
	if err != nil {
		return property.DataSpec{}, err
	}
	return property.LitSpec(val), nil
}

// Schema returns the instance's schema.
func (in *Instance) Schema() *Schema { return in.schema }

// Revision returns the mutation counter. It starts at zero and increases
// by one per successful Set or BindSource.
func (in *Instance) Revision() uint64 { return in.revision }

// Set assigns a field with the same validation as Construct. The
// instance is unchanged if validation fails.
func (in *Instance) Set(name string, value any) error {
	spec, err := in.convert(name, value)
	if err != nil {
		return err
	}
	in.cells[name] = spec
	in.revision++
	return nil
}

// Get returns the field's current DataSpec.
func (in *Instance) Get(name string) (property.DataSpec, bool) {
	spec, ok := in.cells[name]
	return spec, ok
}

// Source returns the bound data source, or nil.
func (in *Instance) Source() datasource.ColumnSource { return in.source }

// BindSource attaches a data source. The source is shared, not owned.
func (in *Instance) BindSource(src datasource.ColumnSource) {
	in.source = src
	in.revision++
}

// Equal reports field-for-field equality of two instances of the same
// variant. Bound sources do not participate in equality.
func (in *Instance) Equal(o *Instance) bool {
	if in.schema.Variant() != o.schema.Variant() {
		return false
	}
	for name, spec := range in.cells {
		other, ok := o.cells[name]
		if !ok || !spec.Equal(other) {
			return false
		}
	}
	return len(in.cells) == len(o.cells)
}
