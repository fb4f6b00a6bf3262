package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/sigil/pkg/render/scene/sink"
	"github.com/matzehuels/sigil/pkg/symbol"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Detailed adds colors, stroke widths and attributes to element labels
	// and draws one leaf per attachment point.
	// When false, only the tag and position are shown.
	Detailed bool
}

const rootID = "root"

// ToDOT converts a symbol's element tree to Graphviz DOT format.
// The resulting DOT string can be rendered using [RenderSVG] or [RenderPNG].
//
// Group elements are drawn as rounded boxes and paths as plain boxes. Path
// data is never included in labels.
func ToDOT(def *symbol.Definition, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=24, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	fmt.Fprintf(&buf, "  %q [label=%q, fillcolor=lightgrey];\n", rootID, def.Name)
	for i, el := range def.Layers {
		writeElement(&buf, rootID, strconv.Itoa(i), i, el, opts.Detailed)
	}

	if opts.Detailed && def.Specs != nil {
		buf.WriteString("\n")
		for _, t := range def.Specs.Types() {
			for i, p := range def.Specs[t] {
				id := fmt.Sprintf("spec:%s:%d", t, i)
				fmt.Fprintf(&buf, "  %q [label=%q, shape=ellipse, style=filled, fillcolor=%q];\n",
					id, fmtPoint(t, i, p), "#fff6d5")
				fmt.Fprintf(&buf, "  %q -> %q [style=dashed];\n", rootID, id)
			}
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func writeElement(buf *bytes.Buffer, parent, id string, index int, el symbol.Element, detailed bool) {
	label := fmtLabel(el, index, detailed)
	attrs := fmtAttrs(el, label)
	fmt.Fprintf(buf, "  %q [%s];\n", id, strings.Join(attrs, ", "))
	fmt.Fprintf(buf, "  %q -> %q;\n", parent, id)

	for i, c := range el.Children {
		writeElement(buf, id, id+"."+strconv.Itoa(i), i, c, detailed)
	}
}

func fmtLabel(el symbol.Element, index int, detailed bool) string {
	head := fmt.Sprintf("%s #%d", el.Tag, index)
	if !detailed {
		return head
	}

	p := el.Props
	var parts []string
	if p.ID != "" {
		parts = append(parts, "id: "+p.ID)
	}
	if p.Fill != "" {
		parts = append(parts, "fill: "+p.Fill)
	}
	if p.Stroke != "" {
		parts = append(parts, "stroke: "+p.Stroke)
	}
	if p.StrokeWidth != nil {
		parts = append(parts, "stroke-width: "+strconv.FormatFloat(*p.StrokeWidth, 'f', -1, 64))
	}
	if p.Transform != "" {
		parts = append(parts, "transform: "+p.Transform)
	}
	for _, k := range slices.Sorted(maps.Keys(p.Attrs)) {
		parts = append(parts, fmt.Sprintf("%s: %s", k, p.Attrs[k]))
	}
	if len(parts) == 0 {
		return head
	}
	return head + "\n" + strings.Join(parts, "\n")
}

func fmtAttrs(el symbol.Element, label string) []string {
	attrs := []string{fmt.Sprintf("label=%q", label)}
	if el.Tag == symbol.TagPath {
		attrs = append(attrs, "style=filled")
	}
	if symbol.IsReplacementColor(el.Props.Fill) || symbol.IsReplacementColor(el.Props.Stroke) {
		attrs = append(attrs, "color=\"#1f77b4\"", "penwidth=2")
	}
	return attrs
}

func fmtPoint(t symbol.AttachmentPointType, i int, p symbol.PointWithNormal) string {
	return fmt.Sprintf("%s[%d]\n(%g, %g) %g rad", t, i, p.X, p.Y, p.NormalAngle)
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}

// RenderPNG renders a DOT graph as PNG via SVG conversion.
// This is a convenience wrapper around [RenderSVG] and [sink.RenderPNG].
//
// Labels are not rasterized; the PNG shows the diagram's shapes and edges.
func RenderPNG(dot string, scale float64) ([]byte, error) {
	svg, err := RenderSVG(dot)
	if err != nil {
		return nil, err
	}
	return sink.RenderPNG(svg, scale)
}
