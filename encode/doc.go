// Package encode encodes IR nodes to JSON text.
//
// # Usage
//
//	node := ir.FromMap(map[string]*ir.Node{
//	    "name": ir.FromString("alice"),
//	    "age":  ir.FromInt(30),
//	})
//	err := encode.Encode(node, w)
//	// {"age": 30, "name": "alice"}
//
//	// Encode with options
//	err := encode.Encode(node, w, encode.EncodeWrap(40), encode.EncodeAfterColon(0))
//
// The defaults are the canonical formatting returned by Canonical: keys
// sorted, no wrapping, and one space after each colon.
//
// # Related Packages
//
//   - github.com/signadot/format-json/ir - IR representation
//   - github.com/signadot/format-json/parse - Parse text to IR
package encode
