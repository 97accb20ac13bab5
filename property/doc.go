// Package property implements the typed field system behind plotspec's
// annotation schemas.
//
// # Values
//
// Property values are small tagged unions:
//
//   - Number: property.Number(3.5)
//   - String: property.String("helvetica")
//   - Bool: property.Bool(true)
//   - Array: property.Array([]property.Value{...})
//   - Null: property.Null()
//
// # Field descriptors
//
// A FieldSpec declares one field: its exact wire name, semantic type
// (number, string, bool, enum, color, alpha, number array), default,
// enum domain and an optional assignment-time Normalizer. Validation is
// synchronous and total: Convert either returns the canonical Value or an
// *ErrInvalidValue.
//
// # Vectorizable fields
//
// Fields on data-bound annotations may hold either a literal or a
// reference to a named column of an external tabular source. The tagged
// union DataSpec carries that distinction and is collapsed only at
// resolution time, never at assignment:
//
//	labelSet.Set("text", property.Field("names")) // per-row column lookup
//	labelSet.Set("text", property.Lit("fixed"))   // one literal for all rows
//
// # Prop groups
//
// Text, fill and line styling come as fixed sub-schemas flattened under a
// naming prefix (e.g. FillProps("background") yields
// "background_fill_color", "background_fill_alpha"). Schemas compose by
// merging flattened descriptor lists and overriding individual defaults.
package property
