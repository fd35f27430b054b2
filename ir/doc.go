// Package ir provides the in-memory representation of JSON documents.
//
// A Node is a recursive tagged union: the Type field says which of the
// other fields carry the value.
//
//   - NullType: no payload
//   - BoolType: Bool
//   - NumberType: Number, the literal text of the number
//   - StringType: String
//   - ArrayType: Values
//   - ObjectType: Fields and Values, parallel slices; Fields[i] is a
//     StringType node holding the key of Values[i]
//
// Each child node records its Parent, its index in the parent and, for
// object values, the key it is stored under.  Path uses these to render a
// location such as $.a[0].b.
//
// # Related Packages
//
//   - github.com/signadot/format-json/parse - Parse text to IR
//   - github.com/signadot/format-json/encode - Encode IR to text
package ir
