package annotations

import "github.com/hupe1980/plotspec/property"

// Variant names. These are wire-stable: serialized documents and
// renderers key on them verbatim.
const (
	VariantLabel    = "Label"
	VariantLabelSet = "LabelSet"
	VariantTitle    = "Title"
)

// NewLabelSchema returns the schema for a single positioned text label.
//
// x and y locate the text anchor in data or screen space. Datetime
// values are accepted on both and are immediately converted to
// milliseconds-since-epoch. The text can be offset in screen pixels and
// rotated; background fill and border line styling default to unset.
func NewLabelSchema() *Schema {
	return NewSchema(VariantLabel, RoleText, property.Merge(
		[]property.FieldSpec{
			{Name: "x", Type: property.FieldTypeNumber, NonNull: true, Default: property.Number(0), Normalize: property.DatetimeToMillis},
			{Name: "x_units", Type: property.FieldTypeEnum, Enum: property.SpatialUnits, Default: property.String("data")},
			{Name: "y", Type: property.FieldTypeNumber, NonNull: true, Default: property.Number(0), Normalize: property.DatetimeToMillis},
			{Name: "y_units", Type: property.FieldTypeEnum, Enum: property.SpatialUnits, Default: property.String("data")},
			{Name: "text", Type: property.FieldTypeString, Default: property.String("")},
			{Name: "angle", Type: property.FieldTypeNumber, Default: property.Number(0)},
			{Name: "angle_units", Type: property.FieldTypeEnum, Enum: property.AngleUnits, Default: property.String("rad")},
			{Name: "x_offset", Type: property.FieldTypeNumber, Default: property.Number(0)},
			{Name: "y_offset", Type: property.FieldTypeNumber, Default: property.Number(0)},
		},
		property.TextProps(false),
		property.Override(property.FillProps("background", false), "background_fill_color", property.Null()),
		property.Override(property.LineProps("border", false), "border_line_color", property.Null()),
	))
}
