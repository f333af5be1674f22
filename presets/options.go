package presets

import "attr-linker/linker"

// Option configures a preset call.
type Option func(*options)

type options struct {
	setter bool
	doc    string
	def    any
	strict bool
	bind   []linker.Option
}

func newOptions(opts []Option) options {
	var o options
	for _, fn := range opts {
		fn(&o)
	}

	return o
}

// Writable enables writes through the link.
func Writable() Option { return WithSetter(true) }

// WithSetter enables or disables writes through the link.
func WithSetter(enabled bool) Option { return func(o *options) { o.setter = enabled } }

// WithDoc documents the link property.
func WithDoc(doc string) Option { return func(o *options) { o.doc = doc } }

// WithDefault sets the value a dictionary link reads for a missing key.
func WithDefault(v any) Option { return func(o *options) { o.def = v } }

// StrictKey makes a dictionary link fail with linker.ErrKeyLookup on a missing key.
func StrictKey() Option { return func(o *options) { o.strict = true } }

// WithBind passes options through to linker.Manager.Bind.
func WithBind(opts ...linker.Option) Option {
	return func(o *options) { o.bind = append(o.bind, opts...) }
}

func (o options) bindOptions() []linker.Option {
	out := []linker.Option{linker.WithRealize(linker.WithSetter(o.setter))}
	if o.doc != "" {
		out = append(out, linker.WithDoc(o.doc))
	}

	return append(out, o.bind...)
}
