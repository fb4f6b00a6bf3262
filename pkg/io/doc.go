// Package io reads and writes symbol definitions.
//
// # Overview
//
// Symbols are authored as data files. This package decodes them into
// [symbol.Definition] values and encodes definitions back to JSON. Three
// input formats are supported:
//
//   - JSON (.json), the canonical interchange format
//   - YAML (.yaml, .yml), convenient for hand-written symbols
//   - TOML (.toml)
//
// # Format
//
// All three formats share the same field names:
//
//	{
//	  "name": "arrow",
//	  "bbox": {"x": 0, "y": 0, "width": 10, "height": 4},
//	  "layers": [
//	    {"tag": "path", "props": {"d": "M0 2 L10 2", "stroke": "sigil:stroke", "strokeWidth": 1}}
//	  ],
//	  "specs": {"tip": [{"x": 10, "y": 2, "normalAngle": 0}]}
//	}
//
// A missing "specs" key, or "specs": null, means the symbol declares no
// attachment points at all. An empty object means it declares the concept
// but no points.
//
// # Import
//
// Use [ImportFile] to read a symbol from a path (the format is picked by
// extension), or [ReadJSON], [ReadYAML] and [ReadTOML] to read from any
// io.Reader:
//
//	def, err := io.ImportFile("symbols/arrow.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Every decoded definition is validated with [symbol.Definition.Validate]
// before it is returned.
//
// # Export
//
// Use [ExportJSON] to write a symbol to a file, or [WriteJSON] to write to
// any io.Writer. Exported files can be re-imported unchanged.
//
// [symbol.Definition]: github.com/matzehuels/sigil/pkg/symbol.Definition
// [symbol.Definition.Validate]: github.com/matzehuels/sigil/pkg/symbol.Definition.Validate
package io
