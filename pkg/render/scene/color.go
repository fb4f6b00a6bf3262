package scene

import "github.com/matzehuels/sigil/pkg/symbol"

// ResolveColor maps the two placeholder colors to the context's stroke and
// fill. Any other value, including the empty string, is returned as is.
func ResolveColor(ctx Context, color string) string {
	switch color {
	case symbol.StrokeReplacementColor:
		return ctx.Stroke
	case symbol.FillReplacementColor:
		return ctx.Fill
	}
	return color
}
