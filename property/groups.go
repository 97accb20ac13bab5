package property

import "fmt"

// Prop groups are fixed sub-schemas flattened under a naming prefix.
// Annotation schemas compose them by merging the flattened descriptor
// lists, then override individual defaults where needed. This mirrors the
// original system's text/fill/line property mixins.

// TextProps returns the text styling sub-schema. The prefix is "text"
// by convention. vector selects the vectorizable variant in which every
// sub-field is independently literal-or-column.
func TextProps(vector bool) []FieldSpec {
	return []FieldSpec{
		{Name: "text_font", Type: FieldTypeString, Default: String("helvetica"), Vector: vector},
		{Name: "text_font_size", Type: FieldTypeString, Default: String("16px"), Vector: vector},
		{Name: "text_font_style", Type: FieldTypeEnum, Enum: FontStyle, Default: String("normal"), Vector: vector},
		{Name: "text_color", Type: FieldTypeColor, Default: String("#444444"), Vector: vector},
		{Name: "text_alpha", Type: FieldTypeAlpha, Default: Number(1.0), Vector: vector},
		{Name: "text_align", Type: FieldTypeEnum, Enum: TextAlign, Default: String("left"), Vector: vector},
		{Name: "text_baseline", Type: FieldTypeEnum, Enum: TextBaseline, Default: String("bottom"), Vector: vector},
		{Name: "text_line_height", Type: FieldTypeNumber, Default: Number(1.2), Vector: vector},
	}
}

// FillProps returns the fill styling sub-schema flattened under the given
// prefix (e.g. "background" yields "background_fill_color").
func FillProps(prefix string, vector bool) []FieldSpec {
	return []FieldSpec{
		{Name: prefix + "_fill_color", Type: FieldTypeColor, Default: String("gray"), Vector: vector},
		{Name: prefix + "_fill_alpha", Type: FieldTypeAlpha, Default: Number(1.0), Vector: vector},
	}
}

// LineProps returns the line styling sub-schema flattened under the given
// prefix (e.g. "border" yields "border_line_color").
func LineProps(prefix string, vector bool) []FieldSpec {
	return []FieldSpec{
		{Name: prefix + "_line_color", Type: FieldTypeColor, Default: String("black"), Vector: vector},
		{Name: prefix + "_line_alpha", Type: FieldTypeAlpha, Default: Number(1.0), Vector: vector},
		{Name: prefix + "_line_width", Type: FieldTypeNumber, Default: Number(1.0), Vector: vector},
		{Name: prefix + "_line_join", Type: FieldTypeEnum, Enum: LineJoin, Default: String("bevel"), Vector: vector},
		{Name: prefix + "_line_cap", Type: FieldTypeEnum, Enum: LineCap, Default: String("butt"), Vector: vector},
		{Name: prefix + "_line_dash", Type: FieldTypeNumberArray, Default: Array(nil), Vector: vector},
		{Name: prefix + "_line_dash_offset", Type: FieldTypeNumber, Default: Number(0), Vector: vector},
	}
}

// Merge concatenates flattened descriptor lists into a single field set.
// It panics on duplicate names: schemas are assembled from package-level
// declarations, so a collision is a programming error.
func Merge(groups ...[]FieldSpec) []FieldSpec {
	var out []FieldSpec
	seen := make(map[string]struct{})
	for _, g := range groups {
		for _, fs := range g {
			if _, dup := seen[fs.Name]; dup {
				panic(fmt.Sprintf("property: duplicate field %q in merged schema", fs.Name))
			}
			seen[fs.Name] = struct{}{}
			out = append(out, fs)
		}
	}
	return out
}

// Override replaces the default of the named field in place and returns
// the list. It panics if the field does not exist.
func Override(fields []FieldSpec, name string, def Value) []FieldSpec {
	for i := range fields {
		if fields[i].Name == name {
			fields[i].Default = def
			fields[i].DefaultField = ""
			return fields
		}
	}
	panic(fmt.Sprintf("property: override of unknown field %q", name))
}
