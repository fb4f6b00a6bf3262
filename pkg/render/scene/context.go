package scene

// DefaultUniformStrokeWidth is the stroke width a fresh [Context] applies to
// every element that declares one.
const DefaultUniformStrokeWidth = 1.0

// Context carries the per-render choices: the colors substituted for the
// placeholders, whether attachment points are drawn, and an optional
// uniform stroke width.
//
// A nil UniformStrokeWidth leaves declared widths untouched.
type Context struct {
	Stroke             string
	Fill               string
	ShowSpecs          bool
	UniformStrokeWidth *float64
}

// ContextOption overrides one field of the default context.
type ContextOption func(*Context)

func WithStroke(color string) ContextOption { return func(c *Context) { c.Stroke = color } }
func WithFill(color string) ContextOption   { return func(c *Context) { c.Fill = color } }
func WithShowSpecs(show bool) ContextOption { return func(c *Context) { c.ShowSpecs = show } }

// WithUniformStrokeWidth forces every declared stroke width to w.
func WithUniformStrokeWidth(w float64) ContextOption {
	return func(c *Context) { c.UniformStrokeWidth = &w }
}

// WithoutUniformStrokeWidth keeps each element's own stroke width.
func WithoutUniformStrokeWidth() ContextOption {
	return func(c *Context) { c.UniformStrokeWidth = nil }
}

// NewContext returns the default context with opts applied in order.
func NewContext(opts ...ContextOption) Context {
	w := DefaultUniformStrokeWidth
	c := Context{
		Stroke:             "#000000",
		Fill:               "#ffffff",
		UniformStrokeWidth: &w,
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// Clone returns a copy of c that shares no memory with it.
func (c Context) Clone() Context {
	if c.UniformStrokeWidth != nil {
		w := *c.UniformStrokeWidth
		c.UniformStrokeWidth = &w
	}
	return c
}

// NoFillIfShowingSpecs returns a copy of c whose fill is "none" when specs
// are shown, so the overlay is not hidden behind filled shapes.
func NoFillIfShowingSpecs(c Context) Context {
	out := c.Clone()
	if out.ShowSpecs {
		out.Fill = "none"
	}
	return out
}

// SwapColors returns a copy of c with stroke and fill exchanged.
func SwapColors(c Context) Context {
	out := c.Clone()
	out.Stroke, out.Fill = c.Fill, c.Stroke
	return out
}
