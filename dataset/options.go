package dataset

import (
	"github.com/hupe1980/vecmath/codec"
	"github.com/hupe1980/vecmath/compress"
)

type options struct {
	codec       codec.Codec
	compression compress.Type
}

func defaultOptions() options {
	return options{
		codec:       codec.Default,
		compression: compress.None,
	}
}

// Option configures how a dataset is encoded.
type Option func(*options)

// WithCodec configures the codec used for the payload.
//
// If nil is passed, codec.Default is used.
func WithCodec(c codec.Codec) Option {
	return func(o *options) {
		if c == nil {
			c = codec.Default
		}
		o.codec = c
	}
}

// WithCompression configures payload compression.
func WithCompression(t compress.Type) Option {
	return func(o *options) {
		o.compression = t
	}
}
