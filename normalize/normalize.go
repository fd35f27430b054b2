// Package normalize prunes empty objects from JSON documents.
package normalize

import (
	"github.com/signadot/format-json/debug"
	"github.com/signadot/format-json/ir"
)

// Normalize returns a copy of node in which every object field whose
// normalized value is the empty object {} is removed.  Pruning cascades:
// an object whose fields are all removed becomes {} and is itself removed
// from its parent object.
//
// Arrays are normalized element by element but never filtered, so {} may
// still appear as an array element or as the root.  node is not modified.
func Normalize(node *ir.Node) *ir.Node {
	switch {
	case node.Type.IsLeaf():
		res := node.Clone()
		res.Parent = nil
		res.ParentIndex = 0
		res.ParentField = ""
		return res
	case node.Type == ir.ArrayType:
		vals := make([]*ir.Node, len(node.Values))
		for i, v := range node.Values {
			vals[i] = Normalize(v)
		}
		return ir.FromSlice(vals)
	default:
		kvs := make([]ir.KeyVal, 0, len(node.Fields))
		for i, f := range node.Fields {
			v := Normalize(node.Values[i])
			if v.IsEmptyObject() {
				if debug.Normalize() {
					debug.Logf("pruned %s\n", node.Values[i].Path())
				}
				continue
			}
			kvs = append(kvs, ir.KeyVal{Key: ir.FromString(f.String), Val: v})
		}
		return ir.FromKeyVals(kvs)
	}
}
