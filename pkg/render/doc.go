// Package render provides the rendering pipeline for symbols.
//
// # Overview
//
// This package groups the renderers that turn a [symbol.Definition] into
// something a person can look at:
//
//   - Scene rendering (in [scene] subpackage)
//   - Output serializers for scenes (in [scene/sink] subpackage)
//   - Element tree diagrams (in [nodelink] subpackage)
//
// # Scenes
//
// The [scene] subpackage walks a symbol's layers with a render context,
// replaces placeholder colors, normalizes stroke widths and optionally adds
// an attachment point overlay. [scene/sink] writes the result as SVG, JSON
// or PNG.
//
//	svg := sink.RenderSVG(def, scene.NewContext())
//	png, err := sink.RenderPNG(svg, 2.0)  // 2x scale
//
// # Node-Link Diagrams
//
// The [nodelink] subpackage renders the element tree itself using Graphviz.
//
//	dot := nodelink.ToDOT(def, nodelink.Options{})
//	svg, err := nodelink.RenderSVG(dot)
//
// [symbol.Definition]: github.com/matzehuels/sigil/pkg/symbol.Definition
// [scene]: github.com/matzehuels/sigil/pkg/render/scene
// [scene/sink]: github.com/matzehuels/sigil/pkg/render/scene/sink
// [nodelink]: github.com/matzehuels/sigil/pkg/render/nodelink
package render
