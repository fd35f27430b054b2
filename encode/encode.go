package encode

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/signadot/format-json/ir"
)

var ErrEncoding = errors.New("encoding error")

type EncState struct {
	col           int
	depth, indent int

	sortKeys   bool
	wrap       int
	afterColon int
}

// Encode writes node to w as JSON followed by a newline.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent:     2,
		sortKeys:   true,
		afterColon: 1,
	}
	for _, opt := range opts {
		opt(es)
	}
	if err := encode(node, w, es); err != nil {
		return err
	}
	return writeString(w, "\n", es)
}

func writeString(w io.Writer, s string, es *EncState) error {
	if i := strings.LastIndexByte(s, '\n'); i != -1 {
		es.col = utf8.RuneCountInString(s[i+1:])
	} else {
		es.col += utf8.RuneCountInString(s)
	}
	_, err := w.Write([]byte(s))
	return err
}

func writeNL(w io.Writer, es *EncState) error {
	return writeString(w, "\n"+strings.Repeat(" ", es.indent*es.depth), es)
}

func encode(node *ir.Node, w io.Writer, es *EncState) error {
	if node == nil {
		return fmt.Errorf("%w: nil node", ErrEncoding)
	}
	switch node.Type {
	case ir.NullType:
		return writeString(w, "null", es)
	case ir.BoolType:
		if node.Bool {
			return writeString(w, "true", es)
		}
		return writeString(w, "false", es)
	case ir.NumberType:
		if node.Number == "" {
			return fmt.Errorf("%w: number without text at %s", ErrEncoding, node.Path())
		}
		return writeString(w, node.Number, es)
	case ir.StringType:
		return writeString(w, quote(node.String), es)
	case ir.ObjectType:
		if len(node.Fields) != len(node.Values) {
			return fmt.Errorf("%w: object at %s has %d keys and %d values", ErrEncoding, node.Path(), len(node.Fields), len(node.Values))
		}
		for _, f := range node.Fields {
			if f == nil || f.Type != ir.StringType {
				return fmt.Errorf("%w: object at %s has a non string key", ErrEncoding, node.Path())
			}
		}
		return encodeContainer(node, w, es)
	case ir.ArrayType:
		return encodeContainer(node, w, es)
	default:
		return fmt.Errorf("%w: unknown node type %s", ErrEncoding, node.Type)
	}
}

func encodeContainer(node *ir.Node, w io.Writer, es *EncState) error {
	if es.wrap <= 0 || len(node.Values) == 0 {
		return encodeFlat(node, w, es)
	}
	flat, err := flatString(node, es)
	if err != nil {
		return err
	}
	if es.col+utf8.RuneCountInString(flat) <= es.wrap {
		return writeString(w, flat, es)
	}
	return encodeWrapped(node, w, es)
}

// flatString renders node on a single line.
func flatString(node *ir.Node, es *EncState) (string, error) {
	buf := bytes.NewBuffer(nil)
	flatES := *es
	flatES.wrap = 0
	if err := encodeFlat(node, buf, &flatES); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func encodeFlat(node *ir.Node, w io.Writer, es *EncState) error {
	opn, cls := brackets(node)
	if err := writeString(w, opn, es); err != nil {
		return err
	}
	for i, j := range order(node, es) {
		if i > 0 {
			if err := writeString(w, ", ", es); err != nil {
				return err
			}
		}
		if err := encodeElement(node, j, w, es); err != nil {
			return err
		}
	}
	return writeString(w, cls, es)
}

func encodeWrapped(node *ir.Node, w io.Writer, es *EncState) error {
	opn, cls := brackets(node)
	if err := writeString(w, opn, es); err != nil {
		return err
	}
	es.depth++
	for i, j := range order(node, es) {
		if i > 0 {
			if err := writeString(w, ",", es); err != nil {
				return err
			}
		}
		if err := writeNL(w, es); err != nil {
			return err
		}
		if err := encodeElement(node, j, w, es); err != nil {
			return err
		}
	}
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	return writeString(w, cls, es)
}

// encodeElement writes the i'th element of node, preceded by its key when
// node is an object.
func encodeElement(node *ir.Node, i int, w io.Writer, es *EncState) error {
	if node.Type == ir.ObjectType {
		if err := writeField(w, node.Fields[i], es); err != nil {
			return err
		}
	}
	return encode(node.Values[i], w, es)
}

func writeField(w io.Writer, f *ir.Node, es *EncState) error {
	return writeString(w, quote(f.String)+":"+strings.Repeat(" ", es.afterColon), es)
}

func brackets(node *ir.Node) (string, string) {
	if node.Type == ir.ObjectType {
		return "{", "}"
	}
	return "[", "]"
}

// order returns the indices of node's elements in output order.
func order(node *ir.Node, es *EncState) []int {
	res := make([]int, len(node.Values))
	for i := range res {
		res[i] = i
	}
	if node.Type != ir.ObjectType || !es.sortKeys {
		return res
	}
	slices.SortStableFunc(res, func(i, j int) int {
		return strings.Compare(node.Fields[i].String, node.Fields[j].String)
	})
	return res
}
