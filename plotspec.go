package plotspec

import (
	"github.com/hupe1980/plotspec/annotations"
	"github.com/hupe1980/plotspec/codec"
	"github.com/hupe1980/plotspec/document"
	"github.com/hupe1980/plotspec/property"
)

// Variant names, re-exported for callers of the registry API.
const (
	VariantLabel    = annotations.VariantLabel
	VariantLabelSet = annotations.VariantLabelSet
	VariantTitle    = annotations.VariantTitle
)

// Registry holds the annotation variant schemas and is the entry point
// for defining, constructing, mutating, resolving and serializing
// annotation instances.
//
// A registry is immutable after New and safe for concurrent use. The
// instances it constructs are not; any locking discipline around a
// mutated instance belongs to the surrounding runtime.
type Registry struct {
	schemas map[string]*annotations.Schema
	order   []string
	codec   codec.Codec
	logger  *Logger
}

// New creates a registry with the three built-in variants (Label,
// LabelSet, Title). A theme passed via WithTheme overlays variant
// defaults; invalid overlay values fail here, not at construction time.
func New(optFns ...Option) (*Registry, error) {
	opts := options{
		codec:  codec.Default,
		logger: NoopLogger(),
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	r := &Registry{
		schemas: make(map[string]*annotations.Schema, 3),
		codec:   opts.codec,
		logger:  opts.logger,
	}

	base := []*annotations.Schema{
		annotations.NewLabelSchema(),
		annotations.NewLabelSetSchema(),
		annotations.NewTitleSchema(),
	}
	for _, s := range base {
		if overlay := opts.theme.Overlay(s.Variant()); overlay != nil {
			themed, err := s.WithDefaults(overlay)
			if err != nil {
				return nil, translateError(err)
			}
			s = themed
		}
		r.schemas[s.Variant()] = s
		r.order = append(r.order, s.Variant())
	}
	return r, nil
}

// Variants returns the registered variant names in registration order.
func (r *Registry) Variants() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Schema returns the schema for a variant.
func (r *Registry) Schema(variant string) (*annotations.Schema, error) {
	s, ok := r.schemas[variant]
	if !ok {
		return nil, &ErrUnknownVariant{Variant: variant}
	}
	return s, nil
}

// Define returns the ordered field descriptors of a variant. The result
// is deterministic and total over the registered variants.
func (r *Registry) Define(variant string) ([]property.FieldSpec, error) {
	s, err := r.Schema(variant)
	if err != nil {
		return nil, err
	}
	return s.Fields(), nil
}

// Construct builds an instance of a variant, applying overrides on top
// of (possibly themed) defaults. Validation is atomic: either every
// override is accepted or no instance is returned.
func (r *Registry) Construct(variant string, overrides map[string]any) (*annotations.Instance, error) {
	s, err := r.Schema(variant)
	if err != nil {
		r.logger.LogConstruct(variant, len(overrides), err)
		return nil, err
	}
	in, err := annotations.Construct(s, overrides)
	if err != nil {
		err = translateError(err)
		r.logger.LogConstruct(variant, len(overrides), err)
		return nil, err
	}
	r.logger.LogConstruct(variant, len(overrides), nil)
	return in, nil
}

// Mutate assigns a field on an instance with the same validation as
// Construct. The instance is unchanged if validation fails.
func (r *Registry) Mutate(in *annotations.Instance, field string, value any) error {
	err := translateError(in.Set(field, value))
	r.logger.LogMutate(in.Schema().Variant(), field, err)
	return err
}

// Resolve returns the effective value of a field: the literal for
// literal fields, or a row's value for column-backed fields.
func (r *Registry) Resolve(in *annotations.Instance, field string, rowIndex ...int) (property.Value, error) {
	v, err := in.Resolve(field, rowIndex...)
	if err != nil {
		return property.Value{}, translateError(err)
	}
	return v, nil
}

// Flatten returns the instance's flat wire mapping.
func (r *Registry) Flatten(in *annotations.Instance) document.Document {
	return document.Flatten(in)
}

// Encode serializes an instance with the registry's codec.
func (r *Registry) Encode(in *annotations.Instance) ([]byte, error) {
	return document.Flatten(in).Encode(r.codec)
}

// Decode reconstructs an instance from a serialized document. The bound
// data source is not part of the wire format; re-bind it afterwards.
func (r *Registry) Decode(data []byte) (*annotations.Instance, error) {
	doc, err := document.Decode(data, r.codec)
	if err != nil {
		r.logger.LogDecode("", len(data), err)
		return nil, err
	}
	variant, err := doc.Variant()
	if err != nil {
		r.logger.LogDecode("", len(data), err)
		return nil, err
	}
	overrides, err := doc.Overrides()
	if err != nil {
		r.logger.LogDecode(variant, len(data), err)
		return nil, err
	}
	in, err := r.Construct(variant, overrides)
	if err != nil {
		r.logger.LogDecode(variant, len(data), err)
		return nil, err
	}
	r.logger.LogDecode(variant, len(data), nil)
	return in, nil
}
