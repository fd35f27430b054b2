package ir

import (
	"strconv"
	"strings"
)

// Path returns the location of y relative to its root, e.g. $.a[0].'b.c'.
func (y *Node) Path() string {
	if y.Parent == nil {
		return "$"
	}
	switch y.Parent.Type {
	case ObjectType:
		f := y.ParentField
		prefix := y.Parent.Path() + "."
		if f != "" && strings.IndexAny(f, "'.*$[] ") == -1 {
			return prefix + f
		}
		return prefix + "'" + strings.ReplaceAll(f, "'", "\\'") + "'"
	case ArrayType:
		return y.Parent.Path() + "[" + strconv.Itoa(y.ParentIndex) + "]"
	default:
		panic("parent but not in container")
	}
}
