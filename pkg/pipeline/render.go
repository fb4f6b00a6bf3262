package pipeline

import (
	"fmt"

	"github.com/matzehuels/sigil/pkg/render/nodelink"
	"github.com/matzehuels/sigil/pkg/render/scene"
	"github.com/matzehuels/sigil/pkg/render/scene/sink"
	"github.com/matzehuels/sigil/pkg/symbol"
)

// Render generates output artifacts in the requested formats.
// Options must already have defaults applied.
func Render(def *symbol.Definition, opts Options) (map[string][]byte, error) {
	ctx := opts.Context()
	artifacts := make(map[string][]byte, len(opts.Formats))

	var svg []byte
	svgOnce := func() []byte {
		if svg == nil {
			svg = sink.RenderSVG(def, ctx)
		}
		return svg
	}

	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatSVG:
			data = svgOnce()
		case FormatPNG:
			data, err = sink.RenderPNG(svgOnce(), opts.Scale)
		case FormatJSON:
			data, err = sink.RenderJSON(scene.Render(def, ctx))
		case FormatDOT:
			data = []byte(nodelink.ToDOT(def, nodelink.Options{Detailed: opts.Detailed}))
		default:
			return nil, fmt.Errorf("unsupported format: %s", format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}

	return artifacts, nil
}
