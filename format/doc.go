// Package format rewrites JSON documents in canonical form.
//
// # Usage
//
//	// Format a document held in memory
//	formatted, err := format.Bytes(input)
//
//	// Format a file in place
//	err := format.File("config.json")
//
//	// Format a file through a temporary file and rename
//	err := format.File("config.json", format.Atomic(true))
//
// Formatting parses the input, removes object fields whose value is (or
// becomes) the empty object, and encodes the result with sorted keys, no
// wrapping and one space after each colon, followed by a newline.
//
// # Related Packages
//
//   - github.com/signadot/format-json/parse - Parse text to IR
//   - github.com/signadot/format-json/normalize - Empty object pruning
//   - github.com/signadot/format-json/encode - Encode IR to text
package format
