package symbol

// Placeholder colors written by the authoring step into element props.
// They are never valid CSS colors, so they cannot collide with a real one.
const (
	// StrokeReplacementColor is replaced by the render context's stroke color.
	StrokeReplacementColor = "sigil:stroke"

	// FillReplacementColor is replaced by the render context's fill color.
	FillReplacementColor = "sigil:fill"
)

// IsReplacementColor reports whether c is one of the placeholder colors.
func IsReplacementColor(c string) bool {
	return c == StrokeReplacementColor || c == FillReplacementColor
}
