package encode

import (
	"bytes"
	"strings"

	"github.com/signadot/format-json/ir"
)

// MustString encodes node and trims the trailing newline.  It panics on error.
func MustString(node *ir.Node) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf); err != nil {
		panic(err)
	}
	return strings.TrimSpace(buf.String())
}
