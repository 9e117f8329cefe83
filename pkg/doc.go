// Package pkg provides the libraries behind the glassblock design tool.
//
// # Overview
//
// Glassblock plans glass block windows: a design holds a list of rectangular
// windows measured in blocks and a palette of block colors with the number of
// blocks on hand for each. The pkg directory is organized by concern:
//
//  1. [design] - The in-memory model and its JSON wire format
//  2. [io] - Reading and writing design files
//  3. [errors] - Structured errors shared by every layer
//  4. [observability] - Hooks for file and edit events
//  5. [buildinfo] - Version information for the binary
//
// # Architecture
//
// Edits flow down and snapshots flow up:
//
//	CLI / terminal editor
//	         ↓  setters
//	  design.State ──→ design.Window (per window)
//	         │
//	         └──────→ design.BlockSupply (palette)
//	         ↓  Serialize
//	      design.Data
//	         ↓
//	   io.WriteJSON / io.ExportJSON
//
// Every setter validates its input and leaves the model unchanged when it
// rejects a value, so a design held in memory is always valid.
//
// # Quick Start
//
//	import (
//	    "github.com/matzehuels/glassblock/pkg/design"
//	    "github.com/matzehuels/glassblock/pkg/io"
//	)
//
//	s := design.New()
//	_ = s.SetNumWindows(2)
//	w, _ := s.Window(1)
//	_ = w.SetWidth(10)
//	_ = s.BlockSupply().SetBlockCount(0, 96)
//
//	if err := io.ExportJSON(s, "kitchen.json"); err != nil {
//	    // handle error
//	}
//
// # Errors
//
// Model operations fail in three ways, distinguished by code in [errors]:
// malformed serialized text (PARSE_ERROR), a value outside its domain
// (INVALID_VALUE) and an index outside the current windows or palette
// (INDEX_OUT_OF_RANGE). Messages are written for end users and can be shown
// as is.
//
// [design]: https://pkg.go.dev/github.com/matzehuels/glassblock/pkg/design
// [io]: https://pkg.go.dev/github.com/matzehuels/glassblock/pkg/io
// [errors]: https://pkg.go.dev/github.com/matzehuels/glassblock/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/glassblock/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/glassblock/pkg/buildinfo
package pkg
