package scene

import (
	"github.com/matzehuels/sigil/pkg/symbol"
)

// NonScalingStroke is the vector-effect set on elements whose stroke width
// was replaced by the uniform width.
const NonScalingStroke = "non-scaling-stroke"

// RenderOption configures [Render].
type RenderOption func(*renderer)

type renderer struct {
	ctx     Context
	overlay SpecsOverlay
}

// WithOverlay replaces the overlay drawn when the context shows specs.
func WithOverlay(o SpecsOverlay) RenderOption { return func(r *renderer) { r.overlay = o } }

// Render builds the display tree for def under ctx. The result is a group
// named after the symbol holding one node per layer, in order, followed by
// the specs overlay when ctx.ShowSpecs is set and def declares specs.
//
// Render panics if def contains an element tag other than g or path;
// [symbol.Definition.Validate] rejects such definitions.
func Render(def *symbol.Definition, ctx Context, opts ...RenderOption) Node {
	r := renderer{ctx: ctx, overlay: MarkerOverlay{}}
	for _, opt := range opts {
		opt(&r)
	}

	root := Node{
		Kind:     KindGroup,
		Name:     def.Name,
		Children: make([]Node, 0, len(def.Layers)+1),
	}
	for _, el := range def.Layers {
		root.Children = append(root.Children, r.element(el))
	}
	if ctx.ShowSpecs && def.Specs != nil && r.overlay != nil {
		root.Children = append(root.Children, r.overlay.Overlay(def.Specs))
	}
	return root
}

func (r *renderer) element(el symbol.Element) Node {
	p := el.Props
	n := Node{
		Kind:        kindOf(el.Tag),
		D:           p.D,
		Fill:        ResolveColor(r.ctx, p.Fill),
		Stroke:      ResolveColor(r.ctx, p.Stroke),
		StrokeWidth: copyWidth(p.StrokeWidth),
		Transform:   p.Transform,
		Attrs:       r.attrs(p.Attrs),
	}
	if p.StrokeWidth != nil && r.ctx.UniformStrokeWidth != nil {
		n.StrokeWidth = copyWidth(r.ctx.UniformStrokeWidth)
		n.VectorEffect = NonScalingStroke
	}
	if len(el.Children) > 0 {
		n.Children = make([]Node, 0, len(el.Children))
		for _, c := range el.Children {
			n.Children = append(n.Children, r.element(c))
		}
	}
	return n
}

// attrs copies the pass-through attributes of an element, dropping names
// the renderer sets itself and resolving placeholder colors in the rest.
func (r *renderer) attrs(in map[string]string) map[string]string {
	if len(in) == 0 {
		return nil
	}
	out := make(map[string]string, len(in))
	for k, v := range in {
		if symbol.IsReservedAttr(k) {
			continue
		}
		out[k] = ResolveColor(r.ctx, v)
	}
	return out
}

func copyWidth(w *float64) *float64 {
	if w == nil {
		return nil
	}
	v := *w
	return &v
}
