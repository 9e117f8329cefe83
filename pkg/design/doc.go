// Package design holds the in-memory model of a glass block design.
//
// # Overview
//
// A design is a set of rectangular windows plus a palette of colored block
// supplies. The model is made of three cooperating types:
//
//   - [Window]: one opening, width and height each in [1, 100]
//   - [BlockSupply]: the palette, one (color, block count) pair per slot
//   - [State]: the root, owning the windows and the block supply
//
// Every mutator validates before it writes. A rejected call returns an error
// from [github.com/matzehuels/glassblock/pkg/errors] and leaves the target
// exactly as it was, which lets an editor revert a field to its last valid
// value.
//
// # Resizing
//
// [State.SetNumWindows] and [BlockSupply.SetNumColors] grow by appending
// defaults at the end and shrink by truncating the tail. Entries below the
// new length are never touched:
//
//	s := design.New()
//	_ = s.BlockSupply().SetBlockCount(0, 5)
//	_ = s.BlockSupply().SetNumColors(4)
//	_ = s.BlockSupply().SetNumColors(2)
//	s.BlockSupply().BlockCounts() // [5 0]
//
// # Default Colors
//
// New palette slots get a color from [DefaultColor], a pure function of the
// slot index. Shrinking and growing the palette therefore reproduces the
// same defaults regardless of history.
//
// # Serialization
//
// Each type has a Serialize method returning a plain snapshot ([WindowData],
// [BlockSupplyData], [Data]) that encodes to the wire format:
//
//	{
//	  "numWindows": 1,
//	  "windows": [{"width": 6, "height": 6}],
//	  "blockSupply": {
//	    "numColors": 3,
//	    "colors": ["#ff4040", "#354cfe", "#58fc2a"],
//	    "blockCounts": [0, 0, 0]
//	  }
//	}
//
// Deserialization has two entry points per type: a structured one
// ([FromData], [WindowFromData], [BlockSupplyFromData]) and a text one
// ([Parse], [ParseWindow], [ParseBlockSupply]) that decodes JSON and then
// takes the structured path. Missing keys fall back to constructor defaults.
// Building is all-or-nothing: on the first failure no value is returned.
//
// Malformed text fails with errors.ErrCodeParse; values that decode but break
// a constraint fail with errors.ErrCodeInvalidValue, exactly as the setter
// would have.
//
// # Concurrency
//
// The model is single-owner and synchronous. None of the types are safe for
// concurrent mutation.
package design
