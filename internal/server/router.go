package server

import (
	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/sigil/pkg/pipeline"
	"github.com/matzehuels/sigil/pkg/registry"
)

// NewRouter creates a chi router with all symbol routes mounted.
func NewRouter(reg *registry.Registry, runner *pipeline.Runner, logger *log.Logger) chi.Router {
	h := NewHandler(reg, runner, logger)

	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(middleware.RealIP)
	r.Use(AccessLog(logger))
	r.Use(middleware.Recoverer)

	r.Get("/health", h.Health)

	r.Route("/symbols", func(r chi.Router) {
		r.Get("/", h.ListSymbols)
		r.Route("/{name}", func(r chi.Router) {
			r.Get("/", h.GetSymbol)
			r.Get("/render.{format}", h.RenderSymbol)
			r.Get("/points/{type}", h.ListPoints)
			r.Get("/points/{type}/{index}", h.GetPoint)
		})
	})

	return r
}
