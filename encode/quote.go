package encode

import (
	"encoding/hex"
	"unicode/utf8"
)

// quote returns v as a JSON string literal.  Only '"', '\\' and control
// characters below 0x20 are escaped; everything else is written as is.
func quote(v string) string {
	d := make([]byte, 1, len(v)+2)
	d[0] = '"'
	cps := []byte{0, 0, 0, 0}
	for _, r := range v {
		switch r {
		case '"':
			d = append(d, '\\', '"')
		case '\\':
			d = append(d, '\\', '\\')
		case '\b':
			d = append(d, '\\', 'b')
		case '\f':
			d = append(d, '\\', 'f')
		case '\n':
			d = append(d, '\\', 'n')
		case '\r':
			d = append(d, '\\', 'r')
		case '\t':
			d = append(d, '\\', 't')
		default:
			if r < 0x20 {
				cps = hex.AppendEncode(cps[:0], []byte{0, byte(r)})
				d = append(d, '\\', 'u', cps[0], cps[1], cps[2], cps[3])
			} else {
				d = utf8.AppendRune(d, r)
			}
		}
	}
	d = append(d, '"')
	return string(d)
}
