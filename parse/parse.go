// Package parse provides JSON parsing into ir nodes.
package parse

import (
	"bytes"
	stdjson "encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/signadot/format-json/debug"
	"github.com/signadot/format-json/ir"

	json "github.com/goccy/go-json"
)

// Parse parses d, which must contain exactly one JSON value surrounded by
// optional whitespace.  Numbers keep their literal text.  When an object
// repeats a key, the last occurrence wins.
//
// All returned errors wrap ErrParse.
func Parse(d []byte) (*ir.Node, error) {
	if len(bytes.TrimSpace(d)) == 0 {
		return nil, ErrEmpty
	}
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	var extra any
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrTrailing, err)
		}
		return nil, ErrTrailing
	}
	// the decoder above lets through leading zeros, bare '1.', raw control
	// characters in strings and truncated literals.
	if err := checkStrict(d); err != nil {
		return nil, err
	}
	res, err := fromAny(v)
	if err != nil {
		return nil, err
	}
	if debug.Parse() {
		debug.Logf("parsed %d bytes:\n%v\n", len(d), res)
	}
	return res, nil
}

func checkStrict(d []byte) error {
	if stdjson.Valid(d) {
		return nil
	}
	buf := bytes.NewBuffer(make([]byte, 0, len(d)))
	if err := stdjson.Compact(buf, d); err != nil {
		return fmt.Errorf("%w: %w", ErrParse, err)
	}
	return fmt.Errorf("%w: invalid JSON", ErrParse)
}

func fromAny(v any) (*ir.Node, error) {
	switch x := v.(type) {
	case nil:
		return ir.Null(), nil
	case bool:
		return ir.FromBool(x), nil
	case json.Number:
		if !validNumber(string(x)) {
			return nil, fmt.Errorf("%w: invalid number %q", ErrParse, string(x))
		}
		return ir.FromNumber(string(x)), nil
	case string:
		return ir.FromString(x), nil
	case []any:
		vals := make([]*ir.Node, len(x))
		for i, elt := range x {
			node, err := fromAny(elt)
			if err != nil {
				return nil, err
			}
			vals[i] = node
		}
		return ir.FromSlice(vals), nil
	case map[string]any:
		m := make(map[string]*ir.Node, len(x))
		for k, elt := range x {
			node, err := fromAny(elt)
			if err != nil {
				return nil, err
			}
			m[k] = node
		}
		return ir.FromMap(m), nil
	default:
		return nil, fmt.Errorf("%w: unexpected decoded type %T", ErrParse, v)
	}
}
