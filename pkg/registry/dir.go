package registry

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"runtime"

	"golang.org/x/sync/errgroup"

	apperr "github.com/matzehuels/sigil/pkg/errors"
	sigilio "github.com/matzehuels/sigil/pkg/io"
	"github.com/matzehuels/sigil/pkg/symbol"
)

// DirSource loads every symbol file (.json, .yaml, .yml, .toml) under a
// directory tree. Hidden directories are skipped.
type DirSource struct {
	Dir string

	// Concurrency bounds parallel file decoding. Zero means GOMAXPROCS.
	Concurrency int
}

// NewDirSource returns a source reading from dir.
func NewDirSource(dir string) *DirSource {
	return &DirSource{Dir: dir}
}

func (s *DirSource) String() string { return "dir:" + s.Dir }

// Files lists the symbol files in the directory in walk order.
func (s *DirSource) Files() ([]string, error) {
	var files []string
	err := filepath.WalkDir(s.Dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != s.Dir && len(d.Name()) > 1 && d.Name()[0] == '.' {
				return filepath.SkipDir
			}
			return nil
		}
		if sigilio.IsSymbolFile(path) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, apperr.Wrap(apperr.ErrCodeInvalidPath, err, "walk %s", s.Dir)
	}
	return files, nil
}

// Load implements [Source]. Files are decoded concurrently; the first
// failure cancels the rest.
func (s *DirSource) Load(ctx context.Context) ([]*symbol.Definition, error) {
	files, err := s.Files()
	if err != nil {
		return nil, err
	}

	defs := make([]*symbol.Definition, len(files))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(s.limit())
	for i, path := range files {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			def, err := sigilio.ImportFile(path)
			if err != nil {
				return err
			}
			defs[i] = def
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("load %s: %w", s.Dir, err)
	}
	return defs, nil
}

func (s *DirSource) limit() int {
	if s.Concurrency > 0 {
		return s.Concurrency
	}
	return runtime.GOMAXPROCS(0)
}
