package property

// Enumeration domains shared by the annotation schemas.
//
// Renderers key on these exact strings; do not reorder or rename.
var (
	// SpatialUnits selects between data-space and screen-space coordinates.
	SpatialUnits = []string{"data", "screen"}

	// AngleUnits selects the unit for angle fields.
	AngleUnits = []string{"rad", "deg"}

	// FontStyle selects a text rendering style.
	FontStyle = []string{"normal", "italic", "bold"}

	// TextAlign aligns text along the direction it is written.
	TextAlign = []string{"left", "right", "center"}

	// VerticalAlign aligns text across the direction it is written.
	VerticalAlign = []string{"top", "middle", "bottom"}

	// TextBaseline selects the vertical anchor of rendered text.
	TextBaseline = []string{"top", "middle", "bottom", "alphabetic", "hanging", "ideographic"}

	// LineJoin selects how path segments are joined.
	LineJoin = []string{"miter", "round", "bevel"}

	// LineCap selects how path ends are drawn.
	LineCap = []string{"butt", "round", "square"}
)
