// Package pipeline provides the symbol render pipeline for sigil.
//
// This package turns a symbol definition plus render options into output
// artifacts. It is shared by the CLI and the HTTP service so both apply the
// same defaults, validation, context transforms and caching.
//
// # Architecture
//
// A render runs in three steps:
//
//  1. Options: defaults are applied and every field is validated
//  2. Context: the render context is built from the options, then the
//     color swap and the no-fill-with-specs transforms are applied in
//     that order
//  3. Render: each requested format is produced (SVG, PNG, JSON, DOT)
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	artifacts, err := runner.Render(ctx, def, pipeline.Options{
//	    Stroke:    "#333333",
//	    ShowSpecs: true,
//	    Formats:   []string{"svg", "png"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := artifacts["svg"]
package pipeline

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/sigil/pkg/cache"
	apperr "github.com/matzehuels/sigil/pkg/errors"
	"github.com/matzehuels/sigil/pkg/render/scene"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and Service
// =============================================================================

const (
	// DefaultStroke replaces the stroke placeholder when no color is given.
	DefaultStroke = "#000000"

	// DefaultFill replaces the fill placeholder when no color is given.
	DefaultFill = "#ffffff"

	// DefaultUniformStrokeWidth is applied to every element that declares a
	// stroke width unless NoUniformStroke is set.
	DefaultUniformStrokeWidth = scene.DefaultUniformStrokeWidth

	// DefaultScale is the PNG scale factor (2x for high-DPI displays).
	DefaultScale = 2.0

	// MaxScale bounds the PNG scale factor.
	MaxScale = 16.0
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatJSON = "json"
	FormatDOT  = "dot"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatJSON: true,
	FormatDOT:  true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for a symbol render.
// This struct supports JSON serialization for API requests.
type Options struct {
	Symbol string `json:"symbol,omitempty"`

	// Context options
	Stroke             string  `json:"stroke,omitempty"`
	Fill               string  `json:"fill,omitempty"`
	ShowSpecs          bool    `json:"show_specs,omitempty"`
	UniformStrokeWidth float64 `json:"uniform_stroke_width,omitempty"`
	NoUniformStroke    bool    `json:"no_uniform_stroke,omitempty"` // keep each element's own width
	SwapColors         bool    `json:"swap_colors,omitempty"`
	NoFillWithSpecs    bool    `json:"no_fill_with_specs,omitempty"`

	// Output options
	Formats  []string `json:"formats,omitempty"`
	Scale    float64  `json:"scale,omitempty"`    // PNG only
	Detailed bool     `json:"detailed,omitempty"` // DOT only
	Refresh  bool     `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a render.
type Result struct {
	// SymbolHash is the content hash of the rendered definition.
	SymbolHash string

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// CacheHit is true when every artifact came from the cache.
	CacheHit bool
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return apperr.New(apperr.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: svg, png, json, dot)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ParseFormats splits a comma-separated format list. An empty string yields
// the default format.
func ParseFormats(s string) []string {
	if strings.TrimSpace(s) == "" {
		return []string{FormatSVG}
	}
	var formats []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f != "" {
			formats = append(formats, f)
		}
	}
	return formats
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults applies defaults and checks every field.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	o.SetDefaults()

	if err := apperr.ValidateColor(o.Stroke); err != nil {
		return fmt.Errorf("stroke: %w", err)
	}
	if err := apperr.ValidateColor(o.Fill); err != nil {
		return fmt.Errorf("fill: %w", err)
	}
	if o.UniformStrokeWidth < 0 || !finite(o.UniformStrokeWidth) {
		return apperr.New(apperr.ErrCodeInvalidInput,
			"uniform stroke width must be a finite non-negative number, got %g", o.UniformStrokeWidth)
	}
	// NaN compares false against both bounds.
	if !finite(o.Scale) || o.Scale <= 0 || o.Scale > MaxScale {
		return apperr.New(apperr.ErrCodeInvalidInput,
			"scale must be in (0, %g], got %g", MaxScale, o.Scale)
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}

	o.validated = true
	return nil
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// SetDefaults fills zero-valued fields with their defaults.
func (o *Options) SetDefaults() {
	if o.Stroke == "" {
		o.Stroke = DefaultStroke
	}
	if o.Fill == "" {
		o.Fill = DefaultFill
	}
	if o.UniformStrokeWidth == 0 {
		o.UniformStrokeWidth = DefaultUniformStrokeWidth
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// Context builds the render context described by the options.
// The color swap is applied before the no-fill transform, so a symbol shown
// with specs has no fill whether or not its colors were swapped.
func (o *Options) Context() scene.Context {
	opts := []scene.ContextOption{
		scene.WithStroke(o.Stroke),
		scene.WithFill(o.Fill),
		scene.WithShowSpecs(o.ShowSpecs),
	}
	if o.NoUniformStroke {
		opts = append(opts, scene.WithoutUniformStrokeWidth())
	} else if o.UniformStrokeWidth > 0 {
		opts = append(opts, scene.WithUniformStrokeWidth(o.UniformStrokeWidth))
	}

	ctx := scene.NewContext(opts...)
	if o.SwapColors {
		ctx = scene.SwapColors(ctx)
	}
	if o.NoFillWithSpecs {
		ctx = scene.NoFillIfShowingSpecs(ctx)
	}
	return ctx
}

// ArtifactKeyOpts returns cache key options for one output format.
// Keys are derived from the effective context, so option combinations that
// render identically share a cache entry.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	ctx := o.Context()
	k := cache.ArtifactKeyOpts{
		Format:             format,
		Stroke:             ctx.Stroke,
		Fill:               ctx.Fill,
		ShowSpecs:          ctx.ShowSpecs,
		UniformStrokeWidth: ctx.UniformStrokeWidth,
	}
	switch format {
	case FormatPNG:
		k.Scale = o.Scale
	case FormatDOT:
		k = cache.ArtifactKeyOpts{Format: format, Detailed: o.Detailed}
	}
	return k
}
