// Package sink serializes rendered scenes.
//
// [RenderSVG] produces a standalone SVG document for a symbol, [WriteNode]
// writes any scene node as SVG markup, [RenderJSON] exports the node tree
// and [RenderPNG] rasterizes an SVG document.
//
//	svg := sink.RenderSVG(def, scene.NewContext(scene.WithShowSpecs(true)))
//	png, err := sink.RenderPNG(svg, 2.0)
package sink
