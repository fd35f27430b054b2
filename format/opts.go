package format

import "github.com/signadot/format-json/encode"

type options struct {
	atomic  bool
	encOpts []encode.EncodeOption
}

func newOptions(opts ...Option) *options {
	o := &options{
		encOpts: encode.Canonical(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

type Option func(*options)

// Atomic makes File write the result to a temporary file in the same
// directory and rename it over the original, so a failed write leaves
// the original untouched.  By default the file is truncated and
// rewritten in place.
func Atomic(v bool) Option {
	return func(o *options) { o.atomic = v }
}
