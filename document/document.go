// Package document implements the serialization boundary: the flat
// field-name to value mapping an external renderer consumes.
//
// Scalar fields serialize as bare values. Vectorizable fields serialize
// as a one-key object, {"value": v} for literals or {"field": "name"}
// for column references. Field names and the "value"/"field" markers are
// wire-stable exact strings.
package document

import (
	"fmt"

	"github.com/hupe1980/plotspec/annotations"
	"github.com/hupe1980/plotspec/codec"
	"github.com/hupe1980/plotspec/property"
)

// TypeKey is the reserved document key carrying the variant name.
const TypeKey = "type"

// Document is the flat wire mapping of one annotation instance.
type Document map[string]any

// Flatten converts an instance into its wire mapping. The bound data
// source, if any, is not part of the document; reference resolution
// belongs to the external synchronization layer.
func Flatten(in *annotations.Instance) Document {
	doc := make(Document, in.Schema().Len()+1)
	doc[TypeKey] = in.Schema().Variant()
	for _, fs := range in.Schema().Fields() {
		spec, ok := in.Get(fs.Name)
		if !ok {
			continue
		}
		if fs.Vector {
			if spec.IsField() {
				doc[fs.Name] = map[string]any{"field": spec.FieldName()}
			} else {
				doc[fs.Name] = map[string]any{"value": spec.Value().Interface()}
			}
			continue
		}
		doc[fs.Name] = spec.Value().Interface()
	}
	return doc
}

// Variant returns the document's variant name.
func (d Document) Variant() (string, error) {
	v, ok := d[TypeKey].(string)
	if !ok || v == "" {
		return "", fmt.Errorf("document: missing or invalid %q key", TypeKey)
	}
	return v, nil
}

// Overrides converts the document back into construction overrides.
// One-key {"field"}/{"value"} objects become column references and
// forced literals; everything else passes through as a bare value.
func (d Document) Overrides() (map[string]any, error) {
	overrides := make(map[string]any, len(d))
	for name, raw := range d {
		if name == TypeKey {
			continue
		}
		obj, ok := raw.(map[string]any)
		if !ok {
			overrides[name] = raw
			continue
		}
		if col, ok := obj["field"]; ok {
			colName, ok := col.(string)
			if !ok {
				return nil, fmt.Errorf("document: field %q has non-string column reference", name)
			}
			overrides[name] = property.Field(colName)
			continue
		}
		if lit, ok := obj["value"]; ok {
			overrides[name] = property.Lit(lit)
			continue
		}
		return nil, fmt.Errorf("document: field %q has an object value with neither \"value\" nor \"field\"", name)
	}
	return overrides, nil
}

// Encode serializes the document with the codec. A nil codec selects
// codec.Default.
func (d Document) Encode(c codec.Codec) ([]byte, error) {
	if c == nil {
		c = codec.Default
	}
	return c.Marshal(d)
}

// Decode deserializes a document with the codec. A nil codec selects
// codec.Default.
func Decode(data []byte, c codec.Codec) (Document, error) {
	if c == nil {
		c = codec.Default
	}
	var d Document
	if err := c.Unmarshal(data, &d); err != nil {
		return nil, err
	}
	return d, nil
}
