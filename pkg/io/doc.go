// Package io provides JSON import and export for glass block designs.
//
// # Overview
//
// A design file is the wire format of [design.State] written as indented
// JSON, the same document the editor shows as "design details" and copies to
// the clipboard:
//
//	{
//	  "numWindows": 2,
//	  "windows": [
//	    {"width": 6, "height": 6},
//	    {"width": 12, "height": 4}
//	  ],
//	  "blockSupply": {
//	    "numColors": 3,
//	    "colors": ["#ff4040", "#354cfe", "#58fc2a"],
//	    "blockCounts": [40, 12, 0]
//	  }
//	}
//
// # Import
//
// Use [ImportJSON] to read a design from a file path, or [ReadJSON] to read
// from any io.Reader:
//
//	s, err := io.ImportJSON("kitchen.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Both functions run the document through [design.Parse], so every value is
// validated exactly as the setters would. A missing file fails with
// errors.ErrCodeFileNotFound, malformed JSON with errors.ErrCodeParse, and a
// rejected value with errors.ErrCodeInvalidValue.
//
// # Export
//
// Use [ExportJSON] to write a design to a file, or [WriteJSON] to write to
// any io.Writer. [Encode] returns the document as bytes. The indent defaults
// to two spaces and can be changed with [WithIndent].
//
// ExportJSON writes to a temporary file in the target directory and renames
// it into place, so an interrupted write never leaves a truncated design.
//
// [design.State]: github.com/matzehuels/glassblock/pkg/design.State
// [design.Parse]: github.com/matzehuels/glassblock/pkg/design.Parse
package io
