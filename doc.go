// Package plotspec provides declarative annotation property schemas for
// plot renderers.
//
// Plotspec defines the data model behind visual overlays (text labels,
// label sets, titles) as typed, documented, inheritable attribute bags
// with defaults, enum domains and vectorizable fields. Instances are
// validated synchronously and serialize to a flat field mapping an
// external rendering runtime consumes. Rendering, layout and
// client-server synchronization are out of scope; this layer is the
// stable schema contract they build on.
//
// # Quick Start
//
//	reg, _ := plotspec.New()
//
//	label, err := reg.Construct(plotspec.VariantLabel, map[string]any{
//	    "x": 70, "y": 60,
//	    "text": "peak load",
//	    "x_units": "screen",
//	})
//
// # Vectorized annotations
//
// A LabelSet binds to an external column data source; positional and
// text fields hold either a literal or a column reference, resolved per
// row at read time:
//
//	src, _ := datasource.NewColumnDataSource(map[string][]any{
//	    "x": {1, 2, 3}, "y": {4, 5, 6}, "text": {"a", "b", "c"},
//	})
//	labels, _ := reg.Construct(plotspec.VariantLabelSet, map[string]any{
//	    "source": src,
//	    "text":   property.Field("text"),
//	})
//	v, _ := reg.Resolve(labels, "text", 2) // property.String("c")
//
// # Serialization
//
//	data, _ := reg.Encode(label)      // flat wire document
//	clone, _ := reg.Decode(data)      // field-for-field equal
//
// # Themes
//
// YAML themes overlay variant defaults without touching assigned values:
//
//	t, _ := theme.Load("dark.yaml")
//	reg, _ := plotspec.New(plotspec.WithTheme(t))
//
// # Errors
//
// All failures are synchronous validation errors: ErrUnknownVariant,
// ErrInvalidField, ErrInvalidValue, ErrMissingColumn,
// ErrRowIndexRequired. Nothing is retried and no partial state is left
// behind; a failed construct or mutate leaves the instance unmodified.
//
// # Subpackages
//
//   - property: typed values, field descriptors, prop groups, vector specs
//   - annotations: the Label, LabelSet and Title schemas
//   - datasource: column data sources and bitmap-backed row views
//   - document: the flat wire mapping
//   - codec: JSON codecs and compression wrappers
//   - theme: YAML default overlays
//   - docstore: persistence for encoded documents (local, S3, MinIO)
package plotspec
