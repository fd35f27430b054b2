package encode

type EncodeOption func(*EncState)

// EncodeSortKeys controls whether object keys are written in byte order
// or in the order they are stored in the node.
func EncodeSortKeys(v bool) EncodeOption {
	return func(es *EncState) { es.sortKeys = v }
}

// EncodeWrap sets the line width beyond which arrays and objects are
// broken over several lines.  A width of 0 or less never wraps.
func EncodeWrap(n int) EncodeOption {
	return func(es *EncState) { es.wrap = n }
}

// EncodeAfterColon sets the number of spaces written after each key
// colon, at every depth.
func EncodeAfterColon(n int) EncodeOption {
	return func(es *EncState) { es.afterColon = max(n, 0) }
}

// Canonical returns the options of the canonical format:
// sorted keys, no wrapping and one space after colons.
func Canonical() []EncodeOption {
	return []EncodeOption{
		EncodeSortKeys(true),
		EncodeWrap(0),
		EncodeAfterColon(1),
	}
}
