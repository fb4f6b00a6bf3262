package sink

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"maps"
	"slices"
	"strconv"

	"github.com/matzehuels/sigil/pkg/render/scene"
	"github.com/matzehuels/sigil/pkg/symbol"
)

// SVGOption configures [RenderSVG].
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	sceneOpts     []scene.RenderOption
	width, height float64
}

// WithOverlay replaces the specs overlay used when the context shows specs.
func WithOverlay(o scene.SpecsOverlay) SVGOption {
	return func(r *svgRenderer) { r.sceneOpts = append(r.sceneOpts, scene.WithOverlay(o)) }
}

// WithSize sets the width and height attributes of the document. Without
// it the bounding box dimensions are used.
func WithSize(w, h float64) SVGOption {
	return func(r *svgRenderer) { r.width, r.height = w, h }
}

// RenderSVG renders def under ctx as a standalone SVG document whose viewBox
// is the symbol's bounding box.
func RenderSVG(def *symbol.Definition, ctx scene.Context, opts ...SVGOption) []byte {
	var r svgRenderer
	for _, opt := range opts {
		opt(&r)
	}

	bb := def.BBox
	w, h := r.width, r.height
	if w <= 0 || h <= 0 {
		w, h = bb.Width, bb.Height
	}

	root := scene.Render(def, ctx, r.sceneOpts...)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="%s %s %s %s" width="%s" height="%s">`+"\n",
		num(bb.X), num(bb.Y), num(bb.Width), num(bb.Height), num(w), num(h))
	writeNode(&buf, root, 1)
	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

// WriteNode writes n and its descendants as SVG markup.
func WriteNode(buf *bytes.Buffer, n scene.Node) {
	writeNode(buf, n, 0)
}

func writeNode(buf *bytes.Buffer, n scene.Node, depth int) {
	for range depth {
		buf.WriteString("  ")
	}
	fmt.Fprintf(buf, "<%s", n.Kind)
	if n.Name != "" {
		attr(buf, "data-symbol-name", n.Name)
	}
	if n.D != "" {
		attr(buf, "d", n.D)
	}
	if n.Fill != "" {
		attr(buf, "fill", n.Fill)
	}
	if n.Stroke != "" {
		attr(buf, "stroke", n.Stroke)
	}
	if n.StrokeWidth != nil {
		attr(buf, "stroke-width", num(*n.StrokeWidth))
	}
	if n.VectorEffect != "" {
		attr(buf, "vector-effect", n.VectorEffect)
	}
	if n.Transform != "" {
		attr(buf, "transform", n.Transform)
	}
	for _, k := range slices.Sorted(maps.Keys(n.Attrs)) {
		if symbol.IsReservedAttr(k) {
			continue
		}
		attr(buf, k, n.Attrs[k])
	}

	if len(n.Children) == 0 {
		buf.WriteString("/>\n")
		return
	}
	buf.WriteString(">\n")
	for _, c := range n.Children {
		writeNode(buf, c, depth+1)
	}
	for range depth {
		buf.WriteString("  ")
	}
	fmt.Fprintf(buf, "</%s>\n", n.Kind)
}

func attr(buf *bytes.Buffer, name, value string) {
	fmt.Fprintf(buf, ` %s="%s"`, name, escapeXML(value))
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}

func num(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
