package registry

import (
	"context"
	"fmt"

	apperr "github.com/matzehuels/sigil/pkg/errors"
	"github.com/matzehuels/sigil/pkg/symbol"
)

// Source produces symbol definitions. Every returned definition has passed
// [symbol.Definition.Validate].
type Source interface {
	Load(ctx context.Context) ([]*symbol.Definition, error)
}

// StaticSource serves a fixed set of definitions.
type StaticSource []*symbol.Definition

// Load implements [Source].
func (s StaticSource) Load(context.Context) ([]*symbol.Definition, error) {
	for _, d := range s {
		if d == nil {
			return nil, apperr.New(apperr.ErrCodeInvalidInput, "nil symbol definition")
		}
		if err := d.Validate(); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (s StaticSource) String() string { return fmt.Sprintf("static(%d)", len(s)) }
