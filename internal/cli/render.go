package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/sigil/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	dir     string // symbol directory for name lookups
	output  string // output file path (or base path for multiple outputs)
	formats string // comma-separated output formats
	noCache bool   // bypass the render cache
	opts    pipeline.Options
}

// renderCommand creates the render command for generating symbol artifacts.
//
// Default settings:
//   - stroke: #000000, fill: #ffffff
//   - uniform stroke width: 1 (declared widths become non-scaling)
//   - format: svg
func (c *CLI) renderCommand() *cobra.Command {
	var ro renderOpts

	cmd := &cobra.Command{
		Use:   "render <file|name>",
		Short: "Render a symbol to SVG, PNG, JSON or DOT",
		Long: `Render a symbol with the given stroke and fill colors.

Elements authored with the stroke or fill placeholder take the chosen colors;
all other colors are kept. With --specs the symbol's attachment points are
drawn on top.`,
		Example: `  sigil render arrow --stroke '#333' --specs
  sigil render shapes/arrow.yaml -f svg,png -o out/arrow
  sigil render arrow --swap --uniform-width 2`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ro.opts.Formats = pipeline.ParseFormats(ro.formats)
			if err := pipeline.ValidateFormats(ro.opts.Formats); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), args[0], &ro)
		},
	}

	f := cmd.Flags()
	addDirFlag(cmd, &ro.dir)
	f.StringVarP(&ro.output, "output", "o", "", "output file (single format) or base path (multiple); - for stdout")
	f.StringVarP(&ro.formats, "format", "f", "", "output format(s): svg (default), png, json, dot (comma-separated)")
	f.StringVar(&ro.opts.Stroke, "stroke", pipeline.DefaultStroke, "stroke color")
	f.StringVar(&ro.opts.Fill, "fill", pipeline.DefaultFill, "fill color")
	f.BoolVar(&ro.opts.ShowSpecs, "specs", false, "draw attachment points")
	f.Float64Var(&ro.opts.UniformStrokeWidth, "uniform-width", pipeline.DefaultUniformStrokeWidth, "stroke width applied to elements that declare one")
	f.BoolVar(&ro.opts.NoUniformStroke, "no-uniform", false, "keep each element's own stroke width")
	f.BoolVar(&ro.opts.SwapColors, "swap", false, "swap stroke and fill colors")
	f.BoolVar(&ro.opts.NoFillWithSpecs, "no-fill-specs", false, "drop the fill when drawing attachment points")
	f.Float64Var(&ro.opts.Scale, "scale", pipeline.DefaultScale, "PNG scale factor")
	f.BoolVar(&ro.opts.Detailed, "detailed", false, "include colors, widths and points in DOT output")
	f.BoolVar(&ro.opts.Refresh, "refresh", false, "re-render even when cached")
	f.BoolVar(&ro.noCache, "no-cache", false, "disable the render cache")

	return cmd
}

// runRender loads the symbol, renders every requested format and writes
// the artifacts.
func (c *CLI) runRender(ctx context.Context, ref string, ro *renderOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	def, err := loadSymbol(ctx, ref, ro.dir)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(ro.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	res, err := runner.Execute(ctx, def, ro.opts)
	if err != nil {
		return err
	}
	logger.Debugf("Symbol hash %s", res.SymbolHash)

	if ro.output == "-" {
		if len(ro.opts.Formats) != 1 {
			return fmt.Errorf("writing to stdout needs exactly one format, got %d", len(ro.opts.Formats))
		}
		_, err := os.Stdout.Write(res.Artifacts[ro.opts.Formats[0]])
		return err
	}

	base := basePath(ro.output, ref, def.Name)
	var paths []string
	for _, format := range ro.opts.Formats {
		path := base + "." + format
		if len(ro.opts.Formats) == 1 && ro.output != "" && hasFormatExt(ro.output) {
			path = ro.output
		}
		if err := writeArtifact(path, res.Artifacts[format]); err != nil {
			return err
		}
		paths = append(paths, path)
	}

	prog.done("Rendered "+def.Name, "formats", strings.Join(ro.opts.Formats, ","))
	effective := ro.opts
	effective.SetDefaults()
	rc := effective.Context()
	printSummary(renderSummary{
		Elements:   def.ElementCount(),
		PointTypes: len(def.Specs),
		Stroke:     rc.Stroke,
		Fill:       rc.Fill,
		Cached:     res.CacheHit,
	})
	for _, p := range paths {
		printFile(p)
	}
	return nil
}

// hasFormatExt reports whether path ends in a known format extension.
func hasFormatExt(path string) bool {
	return pipeline.ValidFormats[strings.TrimPrefix(filepath.Ext(path), ".")]
}

// basePath derives the base output path. An explicit output has any format
// extension stripped; otherwise a symbol file's path without extension is
// used, or the symbol name for symbols looked up by name.
func basePath(output, ref, name string) string {
	if output != "" {
		if hasFormatExt(output) {
			return strings.TrimSuffix(output, filepath.Ext(output))
		}
		return output
	}
	if _, err := os.Stat(ref); err == nil {
		return strings.TrimSuffix(ref, filepath.Ext(ref))
	}
	return name
}

func writeArtifact(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	out, err := openOutput(path)
	if err != nil {
		return err
	}
	defer out.Close()
	_, err = out.Write(data)
	return err
}

// openOutput opens path for writing, or stdout when path is empty.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(path)
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }
