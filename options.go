package plotspec

import (
	"github.com/hupe1980/plotspec/codec"
	"github.com/hupe1980/plotspec/theme"
)

type options struct {
	codec  codec.Codec
	logger *Logger
	theme  *theme.Theme
}

// Option configures registry construction.
type Option func(*options)

// WithCodec configures the codec used for encoding and decoding
// serialized documents.
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

// WithLogger configures the logger. If nil is passed, logging is
// disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithTheme applies a theme's default overlays to every variant the
// theme covers. Explicitly assigned values are never themed; only
// defaults change.
func WithTheme(t *theme.Theme) Option {
	return func(o *options) {
		o.theme = t
	}
}
