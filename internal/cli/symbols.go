package cli

import (
	"context"
	"os"

	apperr "github.com/matzehuels/sigil/pkg/errors"
	sigilio "github.com/matzehuels/sigil/pkg/io"
	"github.com/matzehuels/sigil/pkg/registry"
	"github.com/matzehuels/sigil/pkg/symbol"
)

// loadRegistry loads every symbol under dir, or the default directory when
// dir is empty.
func loadRegistry(ctx context.Context, dir string) (*registry.Registry, error) {
	if dir == "" {
		dir = symbolDir()
	}
	logger := loggerFromContext(ctx)

	var reg *registry.Registry
	err := withSpinner(ctx, os.Stderr, "Loading symbols from "+dir, func() error {
		var err error
		reg, err = registry.Load(ctx, registry.NewDirSource(dir), nil)
		return err
	})
	if err != nil {
		return nil, err
	}
	logger.Debugf("Loaded %d symbols from %s", reg.Len(), dir)
	return reg, nil
}

// loadSymbol resolves ref as a symbol file when one exists at that path,
// and as a symbol name in dir otherwise.
func loadSymbol(ctx context.Context, ref, dir string) (*symbol.Definition, error) {
	if sigilio.IsSymbolFile(ref) {
		if _, err := os.Stat(ref); err == nil {
			loggerFromContext(ctx).Debugf("Reading symbol file %s", ref)
			return sigilio.ImportFile(ref)
		}
	}
	if err := apperr.ValidateSymbolName(ref); err != nil {
		return nil, apperr.New(apperr.ErrCodeFileNotFound, "no symbol file or symbol named %q", ref)
	}
	reg, err := loadRegistry(ctx, dir)
	if err != nil {
		return nil, err
	}
	return reg.Get(ref)
}
