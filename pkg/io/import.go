package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	apperr "github.com/matzehuels/sigil/pkg/errors"
	"github.com/matzehuels/sigil/pkg/symbol"
)

// Format names a symbol file encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

var formatByExt = map[string]Format{
	".json": FormatJSON,
	".yaml": FormatYAML,
	".yml":  FormatYAML,
	".toml": FormatTOML,
}

// FormatFromPath returns the format implied by the file extension of path.
func FormatFromPath(path string) (Format, bool) {
	f, ok := formatByExt[strings.ToLower(filepath.Ext(path))]
	return f, ok
}

// IsSymbolFile reports whether path has a recognized symbol file extension.
func IsSymbolFile(path string) bool {
	_, ok := FormatFromPath(path)
	return ok
}

// ReadJSON decodes a JSON symbol from r. Unknown fields are rejected.
//
// ReadJSON does not close r.
func ReadJSON(r io.Reader) (*symbol.Definition, error) {
	var def symbol.Definition
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&def); err != nil {
		return nil, apperr.Wrap(apperr.ErrCodeInvalidFormat, err, "decode json")
	}
	return validated(&def)
}

// ReadYAML decodes a YAML symbol from r. Unknown fields are rejected.
func ReadYAML(r io.Reader) (*symbol.Definition, error) {
	var def symbol.Definition
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&def); err != nil {
		return nil, apperr.Wrap(apperr.ErrCodeInvalidFormat, err, "decode yaml")
	}
	return validated(&def)
}

// ReadTOML decodes a TOML symbol from r. Unknown keys are rejected.
func ReadTOML(r io.Reader) (*symbol.Definition, error) {
	var def symbol.Definition
	md, err := toml.NewDecoder(r).Decode(&def)
	if err != nil {
		return nil, apperr.Wrap(apperr.ErrCodeInvalidFormat, err, "decode toml")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, apperr.New(apperr.ErrCodeInvalidFormat, "decode toml: unknown key %q", undecoded[0].String())
	}
	return validated(&def)
}

// Read decodes a symbol in the given format.
func Read(r io.Reader, f Format) (*symbol.Definition, error) {
	switch f {
	case FormatJSON:
		return ReadJSON(r)
	case FormatYAML:
		return ReadYAML(r)
	case FormatTOML:
		return ReadTOML(r)
	}
	return nil, apperr.New(apperr.ErrCodeUnsupported, "unsupported symbol format %q", f)
}

// ImportFile reads the symbol file at path, choosing the decoder from the
// file extension.
func ImportFile(path string) (*symbol.Definition, error) {
	f, ok := FormatFromPath(path)
	if !ok {
		return nil, apperr.New(apperr.ErrCodeUnsupported, "unsupported symbol file %s", path)
	}
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, apperr.Wrap(apperr.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	def, err := Read(file, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return def, nil
}

func validated(def *symbol.Definition) (*symbol.Definition, error) {
	if err := def.Validate(); err != nil {
		return nil, err
	}
	return def, nil
}
