package format

import (
	"bytes"
	"fmt"
	"os"

	"github.com/signadot/format-json/debug"
	"github.com/signadot/format-json/encode"
	"github.com/signadot/format-json/normalize"
	"github.com/signadot/format-json/parse"

	"github.com/natefinch/atomic"
)

var ErrParse = parse.ErrParse

// Bytes returns the canonical form of the JSON document in, terminated by
// a newline.
func Bytes(in []byte, opts ...Option) ([]byte, error) {
	return formatBytes(in, newOptions(opts...))
}

func formatBytes(in []byte, o *options) ([]byte, error) {
	node, err := parse.Parse(in)
	if err != nil {
		return nil, err
	}
	buf := bytes.NewBuffer(make([]byte, 0, len(in)+1))
	if err := encode.Encode(normalize.Normalize(node), buf, o.encOpts...); err != nil {
		return nil, fmt.Errorf("error encoding: %w", err)
	}
	return buf.Bytes(), nil
}

// File replaces the contents of the JSON file at path with its canonical
// form.  Nothing is written if path cannot be read or does not hold valid
// JSON.
//
// Unless Atomic is set, the file is truncated before the new contents are
// written, so a failing write may leave it empty or partially written.
func File(path string, opts ...Option) error {
	o := newOptions(opts...)
	in, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("could not read %q: %w", path, err)
	}
	out, err := formatBytes(in, o)
	if err != nil {
		return fmt.Errorf("error processing %s: %w", path, err)
	}
	if debug.Diff() {
		debug.LogDiff(path, string(in), string(out))
	}
	if o.atomic {
		if err := atomic.WriteFile(path, bytes.NewReader(out)); err != nil {
			return fmt.Errorf("error writing %s: %w", path, err)
		}
		return nil
	}
	return writeInPlace(path, out)
}

func writeInPlace(path string, d []byte) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("could not open %q for writing: %w", path, err)
	}
	defer f.Close()
	if _, err := f.Write(d); err != nil {
		return fmt.Errorf("error writing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("error closing %s: %w", path, err)
	}
	return nil
}
