package server

import (
	"net/http"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/sigil/pkg/buildinfo"
	apperr "github.com/matzehuels/sigil/pkg/errors"
	"github.com/matzehuels/sigil/pkg/pipeline"
	"github.com/matzehuels/sigil/pkg/registry"
	"github.com/matzehuels/sigil/pkg/symbol"
)

var contentTypes = map[string]string{
	pipeline.FormatSVG:  "image/svg+xml",
	pipeline.FormatPNG:  "image/png",
	pipeline.FormatJSON: "application/json; charset=utf-8",
	pipeline.FormatDOT:  "text/vnd.graphviz; charset=utf-8",
}

// Handler holds the symbol route handlers.
type Handler struct {
	reg    *registry.Registry
	runner *pipeline.Runner
	logger *log.Logger
}

// NewHandler creates a new Handler.
func NewHandler(reg *registry.Registry, runner *pipeline.Runner, logger *log.Logger) *Handler {
	return &Handler{reg: reg, runner: runner, logger: logger}
}

type symbolSummary struct {
	Name      string   `json:"name"`
	Layers    int      `json:"layers"`
	Elements  int      `json:"elements"`
	SpecTypes []string `json:"spec_types"`
	HasSpecs  bool     `json:"has_specs"`
}

// ListSymbols handles GET /symbols.
func (h *Handler) ListSymbols(w http.ResponseWriter, _ *http.Request) {
	defs := h.reg.All()
	items := make([]symbolSummary, 0, len(defs))
	for _, d := range defs {
		types := make([]string, 0, len(d.Specs))
		for _, t := range d.Specs.Types() {
			types = append(types, string(t))
		}
		items = append(items, symbolSummary{
			Name:      d.Name,
			Layers:    len(d.Layers),
			Elements:  d.ElementCount(),
			SpecTypes: types,
			HasSpecs:  d.HasSpecs(),
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"symbols": items,
		"total":   len(items),
	})
}

// GetSymbol handles GET /symbols/{name}.
func (h *Handler) GetSymbol(w http.ResponseWriter, r *http.Request) {
	def, err := h.reg.Get(chi.URLParam(r, "name"))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, def)
}

// RenderSymbol handles GET /symbols/{name}/render.{format}.
//
// Query parameters: stroke, fill, specs, uniform (a width, or "none"),
// swap, nofill, scale, detailed, refresh.
func (h *Handler) RenderSymbol(w http.ResponseWriter, r *http.Request) {
	def, err := h.reg.Get(chi.URLParam(r, "name"))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	format := chi.URLParam(r, "format")
	opts, err := renderOptions(r, format)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	opts.Symbol = def.Name

	res, err := h.runner.Execute(r.Context(), def, opts)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	w.Header().Set("Content-Type", contentTypes[format])
	w.Header().Set("ETag", strconv.Quote(res.SymbolHash))
	if res.CacheHit {
		w.Header().Set("X-Cache", "HIT")
	} else {
		w.Header().Set("X-Cache", "MISS")
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(res.Artifacts[format])
}

func renderOptions(r *http.Request, format string) (pipeline.Options, error) {
	q := r.URL.Query()
	opts := pipeline.Options{
		Stroke:  q.Get("stroke"),
		Fill:    q.Get("fill"),
		Formats: []string{format},
	}

	var err error
	if opts.ShowSpecs, err = queryBool(q.Get("specs"), "specs"); err != nil {
		return opts, err
	}
	if opts.SwapColors, err = queryBool(q.Get("swap"), "swap"); err != nil {
		return opts, err
	}
	if opts.NoFillWithSpecs, err = queryBool(q.Get("nofill"), "nofill"); err != nil {
		return opts, err
	}
	if opts.Detailed, err = queryBool(q.Get("detailed"), "detailed"); err != nil {
		return opts, err
	}
	if opts.Refresh, err = queryBool(q.Get("refresh"), "refresh"); err != nil {
		return opts, err
	}

	switch u := q.Get("uniform"); u {
	case "":
	case "none":
		opts.NoUniformStroke = true
	default:
		if opts.UniformStrokeWidth, err = queryFloat(u, "uniform"); err != nil {
			return opts, err
		}
	}
	if s := q.Get("scale"); s != "" {
		if opts.Scale, err = queryFloat(s, "scale"); err != nil {
			return opts, err
		}
	}
	return opts, nil
}

func queryBool(v, name string) (bool, error) {
	if v == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, apperr.New(apperr.ErrCodeInvalidInput, "query parameter %q must be a boolean", name)
	}
	return b, nil
}

func queryFloat(v, name string) (float64, error) {
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, apperr.New(apperr.ErrCodeInvalidInput, "query parameter %q must be a number", name)
	}
	return f, nil
}

// ListPoints handles GET /symbols/{name}/points/{type}.
func (h *Handler) ListPoints(w http.ResponseWriter, r *http.Request) {
	def, err := h.reg.Get(chi.URLParam(r, "name"))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	t := symbol.AttachmentPointType(chi.URLParam(r, "type"))
	points := symbol.AttachmentPoints(def, t)
	if points == nil {
		points = []symbol.PointWithNormal{}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"symbol": def.Name,
		"type":   t,
		"points": points,
	})
}

// GetPoint handles GET /symbols/{name}/points/{type}/{index}.
//
// A missing point is a 404. With ?safe=true the lookup is lenient instead:
// a missing point yields 200 with a null point.
func (h *Handler) GetPoint(w http.ResponseWriter, r *http.Request) {
	def, err := h.reg.Get(chi.URLParam(r, "name"))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	t := symbol.AttachmentPointType(chi.URLParam(r, "type"))
	idx, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		writeError(w, h.logger, apperr.New(apperr.ErrCodeInvalidInput, "index must be an integer"))
		return
	}
	safe, err := queryBool(r.URL.Query().Get("safe"), "safe")
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	var point *symbol.PointWithNormal
	if safe {
		point, err = symbol.SafeGetAttachmentPoint(def, t, idx)
	} else {
		var p symbol.PointWithNormal
		if p, err = symbol.GetAttachmentPoint(def, t, idx); err == nil {
			point = &p
		}
	}
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"symbol": def.Name,
		"type":   t,
		"index":  idx,
		"point":  point,
	})
}

// Health handles GET /health.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"version": buildinfo.Get().Version,
		"commit":  buildinfo.Get().Commit,
		"symbols": h.reg.Len(),
	})
}
