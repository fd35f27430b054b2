package ir

import (
	"cmp"
	"slices"
	"strconv"
	"strings"
)

// Compare returns an integer comparing two nodes.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
//
// Objects are compared as if their fields were sorted by key, so field
// order does not matter.
func Compare(a, b *Node) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}

	rankA := rank(a.Type)
	rankB := rank(b.Type)
	if rankA != rankB {
		return cmp.Compare(rankA, rankB)
	}

	switch a.Type {
	case NumberType:
		return compareNumbers(a, b)
	case StringType:
		return strings.Compare(a.String, b.String)
	case BoolType:
		if a.Bool == b.Bool {
			return 0
		}
		if !a.Bool {
			return -1
		}
		return 1
	case ArrayType:
		return compareArrays(a, b)
	case ObjectType:
		return compareObjects(a, b)
	}
	return 0
}

// Equal reports whether a and b hold the same JSON value.
func Equal(a, b *Node) bool {
	return Compare(a, b) == 0
}

// rank returns the sorting rank of a type.
// Order: Null < Bool < Number < String < Array < Object
func rank(t Type) int {
	switch t {
	case NullType:
		return 1
	case BoolType:
		return 2
	case NumberType:
		return 3
	case StringType:
		return 4
	case ArrayType:
		return 5
	case ObjectType:
		return 6
	}
	return 100
}

// compareNumbers compares numerically when both literals fit a float64,
// and falls back to the literal text otherwise.
func compareNumbers(a, b *Node) int {
	if a.Number == b.Number {
		return 0
	}
	fa, errA := strconv.ParseFloat(a.Number, 64)
	fb, errB := strconv.ParseFloat(b.Number, 64)
	if errA == nil && errB == nil {
		return cmp.Compare(fa, fb)
	}
	return strings.Compare(a.Number, b.Number)
}

func compareArrays(a, b *Node) int {
	lenA := len(a.Values)
	lenB := len(b.Values)
	minLen := min(lenA, lenB)

	for i := 0; i < minLen; i++ {
		if c := Compare(a.Values[i], b.Values[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(lenA, lenB)
}

func compareObjects(a, b *Node) int {
	ia := sortedFieldIndices(a)
	ib := sortedFieldIndices(b)
	minLen := min(len(ia), len(ib))

	for i := 0; i < minLen; i++ {
		if c := strings.Compare(a.Fields[ia[i]].String, b.Fields[ib[i]].String); c != 0 {
			return c
		}
		if c := Compare(a.Values[ia[i]], b.Values[ib[i]]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(ia), len(ib))
}

// sortedFieldIndices returns the indices of y's fields in key order.
func sortedFieldIndices(y *Node) []int {
	res := make([]int, len(y.Fields))
	for i := range res {
		res[i] = i
	}
	slices.SortStableFunc(res, func(i, j int) int {
		return strings.Compare(y.Fields[i].String, y.Fields[j].String)
	})
	return res
}
