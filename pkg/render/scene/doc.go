// Package scene turns symbol definitions into display nodes.
//
// # Overview
//
// A [symbol.Definition] is authoring data: a tree of group and path
// elements whose colors may be the reserved placeholders
// [symbol.StrokeReplacementColor] and [symbol.FillReplacementColor]. Rendering
// walks that tree with a [Context] and produces a [Node] tree in which every
// placeholder has been replaced, internal element ids are gone and, when
// requested, declared stroke widths are normalized.
//
//	ctx := scene.NewContext(scene.WithStroke("#333"), scene.WithShowSpecs(true))
//	ctx = scene.NoFillIfShowingSpecs(ctx)
//	root := scene.Render(def, ctx)
//
// # Contexts
//
// [NewContext] merges options over the defaults: black stroke, white fill,
// specs hidden, uniform stroke width 1. [SwapColors] and
// [NoFillIfShowingSpecs] derive new contexts and never modify their input.
//
// # Specs Overlay
//
// When the context shows specs and the symbol declares attachment points,
// the renderer appends the node built by a [SpecsOverlay]. [MarkerOverlay]
// is the default; pass another with [WithOverlay].
//
// Serializers for the node tree live in the [sink] subpackage.
//
// [sink]: github.com/matzehuels/sigil/pkg/render/scene/sink
package scene
