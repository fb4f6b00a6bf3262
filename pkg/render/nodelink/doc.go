// Package nodelink renders a symbol's element tree as a node-link diagram.
//
// # Overview
//
// A symbol's layers form a tree of groups and paths. This package draws that
// tree with Graphviz, one box per element under a root box named after the
// symbol. It is a debugging aid for symbol authors: it shows nesting, where
// the placeholder colors are used and which elements declare a stroke width.
//
// # Usage
//
//	dot := nodelink.ToDOT(def, nodelink.Options{Detailed: true})
//	svg, err := nodelink.RenderSVG(dot)
//
// # Options
//
//   - Detailed: include colors, stroke widths and attributes in element
//     labels and draw every attachment point as a dashed leaf of the root.
//
// Elements that use a placeholder color are outlined in blue.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering.
package nodelink
