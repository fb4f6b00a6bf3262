package scene

import (
	"fmt"
	"math"

	"github.com/matzehuels/sigil/pkg/symbol"
)

// SpecsOverlay draws a symbol's attachment points.
type SpecsOverlay interface {
	Overlay(specs symbol.Specs) Node
}

// OverlayFunc adapts a function to [SpecsOverlay].
type OverlayFunc func(specs symbol.Specs) Node

func (f OverlayFunc) Overlay(specs symbol.Specs) Node { return f(specs) }

const (
	defaultMarkerRadius = 4.0
	defaultTickLength   = 12.0
	markerStrokeWidth   = 1.5
	unknownMarkerColor  = "#888888"
)

var markerColors = map[symbol.AttachmentPointType]string{
	symbol.Anchor: "#e6194b",
	symbol.Tail:   "#3cb44b",
	symbol.Leg:    "#4363d8",
	symbol.Arm:    "#f58231",
	symbol.Horn:   "#911eb4",
	symbol.Crown:  "#f032e6",
	symbol.Top:    "#469990",
	symbol.Bottom: "#9a6324",
	symbol.Left:   "#800000",
	symbol.Right:  "#000075",
}

// MarkerColor returns the overlay color used for attachment points of type t.
func MarkerColor(t symbol.AttachmentPointType) string {
	if c, ok := markerColors[t]; ok {
		return c
	}
	return unknownMarkerColor
}

// MarkerOverlay draws each attachment point as a small circle with a tick
// pointing along its normal. Points are grouped per type, types in sorted
// order. Zero fields fall back to the defaults.
type MarkerOverlay struct {
	Radius     float64
	TickLength float64
}

// Overlay implements [SpecsOverlay].
func (m MarkerOverlay) Overlay(specs symbol.Specs) Node {
	radius := cmpOr(m.Radius, defaultMarkerRadius)
	tick := cmpOr(m.TickLength, defaultTickLength)

	root := Node{
		Kind:  KindGroup,
		Attrs: map[string]string{"class": "specs"},
	}
	for _, t := range specs.Types() {
		color := MarkerColor(t)
		group := Node{
			Kind:  KindGroup,
			Attrs: map[string]string{"data-spec-type": string(t)},
		}
		for _, p := range specs[t] {
			group.Children = append(group.Children,
				markerNode(circlePath(p.X, p.Y, radius), color, color),
				markerNode(tickPath(p, tick), "none", color),
			)
		}
		root.Children = append(root.Children, group)
	}
	return root
}

func markerNode(d, fill, stroke string) Node {
	w := markerStrokeWidth
	return Node{
		Kind:         KindPath,
		D:            d,
		Fill:         fill,
		Stroke:       stroke,
		StrokeWidth:  &w,
		VectorEffect: NonScalingStroke,
	}
}

func circlePath(cx, cy, r float64) string {
	return fmt.Sprintf("M %s %s a %s %s 0 1 0 %s 0 a %s %s 0 1 0 %s 0 Z",
		num(cx-r), num(cy), num(r), num(r), num(2*r), num(r), num(r), num(-2*r))
}

func tickPath(p symbol.PointWithNormal, length float64) string {
	nx, ny := p.Normal()
	return fmt.Sprintf("M %s %s L %s %s",
		num(p.X), num(p.Y), num(p.X+nx*length), num(p.Y+ny*length))
}

func num(f float64) string {
	if math.Abs(f) < 1e-9 {
		f = 0
	}
	return fmt.Sprintf("%.2f", f)
}

func cmpOr(v, def float64) float64 {
	if v > 0 {
		return v
	}
	return def
}
