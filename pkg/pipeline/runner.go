package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/sigil/pkg/cache"
	apperr "github.com/matzehuels/sigil/pkg/errors"
	"github.com/matzehuels/sigil/pkg/observability"
	"github.com/matzehuels/sigil/pkg/symbol"
)

// Runner encapsulates rendering with caching.
// Both CLI and service use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger. Multiple
// goroutines can safely use the same Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute renders def and reports the symbol hash and cache status.
func (r *Runner) Execute(ctx context.Context, def *symbol.Definition, opts Options) (*Result, error) {
	if def == nil {
		return nil, apperr.New(apperr.ErrCodeInvalidInput, "symbol definition is nil")
	}
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	hash, err := cache.HashJSON(def)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	observability.Render().OnRenderStart(ctx, def.Name, opts.Formats)
	artifacts, hit, err := r.render(ctx, def, hash, opts)
	observability.Render().OnRenderComplete(ctx, def.Name, opts.Formats, time.Since(start), err)
	if err != nil {
		return nil, err
	}

	opts.Logger.Debug("rendered symbol",
		"symbol", def.Name,
		"formats", opts.Formats,
		"cached", hit,
		"duration", time.Since(start))

	return &Result{SymbolHash: hash, Artifacts: artifacts, CacheHit: hit}, nil
}

// RenderWithCacheInfo renders def and reports whether every artifact came
// from the cache.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, def *symbol.Definition, opts Options) (map[string][]byte, bool, error) {
	res, err := r.Execute(ctx, def, opts)
	if err != nil {
		return nil, false, err
	}
	return res.Artifacts, res.CacheHit, nil
}

// Render is a convenience wrapper that calls RenderWithCacheInfo and discards the cache hit info.
func (r *Runner) Render(ctx context.Context, def *symbol.Definition, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, def, opts)
	return artifacts, err
}

func (r *Runner) render(ctx context.Context, def *symbol.Definition, hash string, opts Options) (map[string][]byte, bool, error) {
	// Try to get all formats from cache
	if !opts.Refresh {
		artifacts := make(map[string][]byte, len(opts.Formats))
		for _, format := range opts.Formats {
			key := r.Keyer.ArtifactKey(hash, opts.ArtifactKeyOpts(format))
			data, hit, err := r.Cache.Get(ctx, key)
			if err != nil || !hit {
				observability.Cache().OnCacheMiss(ctx, key)
				break
			}
			observability.Cache().OnCacheHit(ctx, key)
			artifacts[format] = data
		}
		if len(artifacts) == len(opts.Formats) {
			return artifacts, true, nil
		}
	}

	rendered, err := Render(def, opts)
	if err != nil {
		return nil, false, err
	}

	for format, data := range rendered {
		key := r.Keyer.ArtifactKey(hash, opts.ArtifactKeyOpts(format))
		if err := r.Cache.Set(ctx, key, data, cache.ArtifactTTL); err != nil {
			opts.Logger.Warn("cache set failed", "key", key, "error", err)
			continue
		}
		observability.Cache().OnCacheSet(ctx, key, len(data))
	}

	return rendered, false, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
