// Package registry holds the set of symbols a process can render.
//
// A [Registry] is filled from a [Source]: a directory of symbol files
// ([DirSource]) or a MongoDB collection ([MongoSource]). Reads are safe for
// concurrent use and [Registry.Replace] swaps the whole set atomically, which
// is what [Watch] does when files change on disk.
//
//	reg, err := registry.Load(ctx, registry.NewDirSource("symbols"), logger)
//	def, err := reg.Get("arrow")
package registry

import (
	"context"
	"slices"
	"sync"

	"github.com/charmbracelet/log"

	apperr "github.com/matzehuels/sigil/pkg/errors"
	"github.com/matzehuels/sigil/pkg/symbol"
)

// Registry maps symbol names to definitions.
type Registry struct {
	mu     sync.RWMutex
	byName map[string]*symbol.Definition
	names  []string
}

// New creates a registry holding defs. Definitions must have unique names.
func New(defs ...*symbol.Definition) (*Registry, error) {
	r := &Registry{}
	if err := r.Replace(defs); err != nil {
		return nil, err
	}
	return r, nil
}

// Get returns the definition called name.
func (r *Registry) Get(name string) (*symbol.Definition, error) {
	if err := apperr.ValidateSymbolName(name); err != nil {
		return nil, err
	}
	r.mu.RLock()
	def, ok := r.byName[name]
	r.mu.RUnlock()
	if !ok {
		return nil, apperr.New(apperr.ErrCodeSymbolNotFound, "symbol %q not found", name)
	}
	return def, nil
}

// Names returns the symbol names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.names)
}

// All returns every definition, sorted by name.
func (r *Registry) All() []*symbol.Definition {
	r.mu.RLock()
	defer r.mu.RUnlock()
	defs := make([]*symbol.Definition, 0, len(r.names))
	for _, n := range r.names {
		defs = append(defs, r.byName[n])
	}
	return defs
}

// Len returns the number of symbols.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.names)
}

// Replace swaps the registry contents for defs. On error the registry is
// left unchanged.
func (r *Registry) Replace(defs []*symbol.Definition) error {
	byName := make(map[string]*symbol.Definition, len(defs))
	names := make([]string, 0, len(defs))
	for _, d := range defs {
		if d == nil {
			return apperr.New(apperr.ErrCodeInvalidInput, "nil symbol definition")
		}
		if _, dup := byName[d.Name]; dup {
			return apperr.New(apperr.ErrCodeInvalidSymbol, "duplicate symbol name %q", d.Name)
		}
		byName[d.Name] = d
		names = append(names, d.Name)
	}
	slices.Sort(names)

	r.mu.Lock()
	r.byName, r.names = byName, names
	r.mu.Unlock()
	return nil
}

// Load builds a registry from src.
func Load(ctx context.Context, src Source, logger *log.Logger) (*Registry, error) {
	r := &Registry{}
	if err := r.Reload(ctx, src); err != nil {
		return nil, err
	}
	if logger != nil {
		logger.Info("loaded symbols", "source", src, "count", r.Len())
	}
	return r, nil
}

// Reload replaces the registry contents with a fresh load from src. If
// loading fails the current contents are kept.
func (r *Registry) Reload(ctx context.Context, src Source) error {
	defs, err := src.Load(ctx)
	if err != nil {
		return err
	}
	return r.Replace(defs)
}
