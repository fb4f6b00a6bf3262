// Package server implements the sigil HTTP service: a read-only API over a
// symbol registry that renders symbols on request and answers attachment
// point queries.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/sigil/pkg/cache"
	"github.com/matzehuels/sigil/pkg/pipeline"
	"github.com/matzehuels/sigil/pkg/registry"
)

// Option is a functional option for configuring the service.
type Option func(*application)

type application struct {
	config *Config
	logger *log.Logger
}

// WithConfig sets the service configuration.
func WithConfig(cfg *Config) Option {
	return func(a *application) { a.config = cfg }
}

// WithLogger sets the service logger. The configured log level is applied
// to it.
func WithLogger(logger *log.Logger) Option {
	return func(a *application) { a.logger = logger }
}

// Run starts the service and blocks until ctx is cancelled or the HTTP
// server fails.
func Run(ctx context.Context, opts ...Option) error {
	app := &application{}
	for _, opt := range opts {
		opt(app)
	}
	if app.config == nil {
		return fmt.Errorf("config is required")
	}
	cfg := app.config

	logger := app.logger
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true})
	}
	logger.SetLevel(cfg.App.Level())

	logger.Info("configuration loaded",
		"http_address", cfg.App.HTTP.Address(),
		"symbols_dir", cfg.Symbols.Dir,
		"mongo", cfg.Mongo.URI != "",
		"cache", cfg.Cache.Backend)

	src, closeSrc, err := openSource(ctx, cfg)
	if err != nil {
		return fmt.Errorf("init symbol source: %w", err)
	}
	defer closeSrc()

	reg, err := registry.Load(ctx, src, logger)
	if err != nil {
		return fmt.Errorf("load symbols: %w", err)
	}

	c, err := openCache(ctx, cfg.Cache)
	if err != nil {
		return fmt.Errorf("init cache: %w", err)
	}
	var keyer cache.Keyer
	if cfg.Cache.Backend == CacheBackendRedis && cfg.Cache.KeyPrefix != "" {
		keyer = cache.NewScopedKeyer(nil, cfg.Cache.KeyPrefix)
	}
	runner := pipeline.NewRunner(c, keyer, logger)
	defer runner.Close()

	httpServer := &http.Server{
		Addr:              cfg.App.HTTP.Address(),
		Handler:           NewRouter(reg, runner, logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gCtx := errgroup.WithContext(ctx)

	if dirSrc, ok := src.(*registry.DirSource); ok && cfg.Symbols.Watch {
		g.Go(func() error {
			return registry.Watch(gCtx, reg, dirSrc, dirSrc.Dir, logger, nil)
		})
	}

	g.Go(func() error {
		logger.Info("starting HTTP server", "address", cfg.App.HTTP.Address())
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		logger.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("HTTP server shutdown error", "error", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("server stopped")
	return nil
}

func openSource(ctx context.Context, cfg *Config) (registry.Source, func(), error) {
	if cfg.Mongo.URI == "" {
		return registry.NewDirSource(cfg.Symbols.Dir), func() {}, nil
	}
	src, err := registry.NewMongoSource(ctx, registry.MongoConfig{
		URI:        cfg.Mongo.URI,
		Database:   cfg.Mongo.Database,
		Collection: cfg.Mongo.Collection,
	})
	if err != nil {
		return nil, nil, err
	}
	return src, func() { _ = src.Close(context.Background()) }, nil
}

func openCache(ctx context.Context, cfg CacheConfig) (cache.Cache, error) {
	switch cfg.Backend {
	case CacheBackendNone:
		return cache.NewNullCache(), nil
	case CacheBackendRedis:
		return cache.NewRedisCache(ctx, cache.RedisConfig{Addr: cfg.RedisAddr})
	default:
		dir := cfg.Dir
		if dir == "" {
			base, err := os.UserCacheDir()
			if err != nil {
				return nil, err
			}
			dir = filepath.Join(base, "sigil")
		}
		return cache.NewFileCache(dir)
	}
}
