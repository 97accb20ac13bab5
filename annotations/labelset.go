package annotations

import "github.com/hupe1980/plotspec/property"

// NewLabelSetSchema returns the schema for a vectorized set of text
// labels bound to an external column data source. The row count of the
// bound source determines how many labels render.
//
// Positions, text, angle and offsets are vectorizable: each holds either
// a literal or a reference to a named column, resolved per row at read
// time. x, y and text default to the columns "x", "y" and "text".
func NewLabelSetSchema() *Schema {
	return NewSchema(VariantLabelSet, RoleData, property.Merge(
		[]property.FieldSpec{
			{Name: "x", Type: property.FieldTypeNumber, Vector: true, DefaultField: "x", Normalize: property.DatetimeToMillis},
			{Name: "x_units", Type: property.FieldTypeEnum, Enum: property.SpatialUnits, Default: property.String("data")},
			{Name: "y", Type: property.FieldTypeNumber, Vector: true, DefaultField: "y", Normalize: property.DatetimeToMillis},
			{Name: "y_units", Type: property.FieldTypeEnum, Enum: property.SpatialUnits, Default: property.String("data")},
			{Name: "text", Type: property.FieldTypeString, Vector: true, DefaultField: "text"},
			{Name: "angle", Type: property.FieldTypeNumber, Vector: true, Default: property.Number(0)},
			{Name: "x_offset", Type: property.FieldTypeNumber, Vector: true, Default: property.Number(0)},
			{Name: "y_offset", Type: property.FieldTypeNumber, Vector: true, Default: property.Number(0)},
		},
		property.TextProps(true),
		property.Override(property.FillProps("background", true), "background_fill_color", property.Null()),
		property.Override(property.LineProps("border", true), "border_line_color", property.Null()),
	))
}
