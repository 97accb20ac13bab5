package annotations

import "github.com/hupe1980/plotspec/property"

// NewTitleSchema returns the schema for a title box anchored to a
// renderer-assigned layout slot (above, below, left or right of the
// plot area).
//
// offset shifts the text by a number of pixels; its direction depends on
// the layout slot and is applied by the rendering collaborator. standoff
// is the gap between the title and the plot edge.
func NewTitleSchema() *Schema {
	return NewSchema(VariantTitle, RoleText, property.Merge(
		[]property.FieldSpec{
			{Name: "text", Type: property.FieldTypeString, Default: property.String("")},
			{Name: "vertical_align", Type: property.FieldTypeEnum, Enum: property.VerticalAlign, Default: property.String("bottom")},
			{Name: "align", Type: property.FieldTypeEnum, Enum: property.TextAlign, Default: property.String("left")},
			{Name: "text_line_height", Type: property.FieldTypeNumber, Default: property.Number(1.0)},
			{Name: "offset", Type: property.FieldTypeNumber, Default: property.Number(0)},
			{Name: "standoff", Type: property.FieldTypeNumber, Default: property.Number(10)},
			{Name: "text_font", Type: property.FieldTypeString, Default: property.String("helvetica")},
			{Name: "text_font_size", Type: property.FieldTypeString, Default: property.String("13px")},
			{Name: "text_font_style", Type: property.FieldTypeEnum, Enum: property.FontStyle, Default: property.String("bold")},
			{Name: "text_color", Type: property.FieldTypeColor, Default: property.String("#444444")},
			{Name: "text_alpha", Type: property.FieldTypeAlpha, Default: property.Number(1.0)},
		},
		property.Override(property.FillProps("background", false), "background_fill_color", property.Null()),
		property.Override(property.LineProps("border", false), "border_line_color", property.Null()),
	))
}
