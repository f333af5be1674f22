package linker

import (
	"fmt"
	"reflect"
)

// ReadFunc converts the source attribute value into the linked value.
type ReadFunc func(value any) (any, error)

// TransformFunc converts a replacement into the value stored in the source attribute.
type TransformFunc func(self Instance, replacement any) (any, error)

// OverrideFunc performs a whole write on behalf of the linked attribute.
type OverrideFunc func(self Instance, source string, replacement any) error

//go:generate go tool stringer -type=WriteMode -trimprefix=Mode -output=writemode_string.go

// WriteMode tells how a Writer stores a replacement.
type WriteMode int

const (
	ModeTransform WriteMode = iota // transform the replacement, then store it in the source attribute
	ModeOverride                   // hand the replacement to an override that writes it itself
)

// Writer is the write half of a Spec. The zero Writer stores replacements
// unchanged into the source attribute.
type Writer struct {
	mode      WriteMode
	transform TransformFunc
	override  OverrideFunc
}

// WriteTransform stores fn(self, replacement) into the source attribute.
func WriteTransform(fn TransformFunc) Writer {
	return Writer{mode: ModeTransform, transform: fn}
}

// WriteOverride lets fn perform the write. A nil fn yields the zero Writer.
func WriteOverride(fn OverrideFunc) Writer {
	if fn == nil {
		return Writer{}
	}

	return Writer{mode: ModeOverride, override: fn}
}

// Mode returns the write mode.
func (w Writer) Mode() WriteMode {
	return w.mode
}

// Spec holds the raw parameters of a linker.
type Spec struct {
	// Source is the attribute of the instance the link reads from and writes into.
	Source string
	// Read converts the source value; nil is the identity.
	Read ReadFunc
	// Write stores replacements.
	Write Writer
	// Doc documents the resulting property.
	Doc string
}

// Accessor is the capability set a manager needs from the accessors it creates.
// Types embedding Linker satisfy it.
type Accessor interface {
	Init(spec Spec)
	Spec() Spec
	Realize(opts ...RealizeOption)
	Ready() bool
	Property() *Property
	Install(host Host, name string) error
	Links() map[reflect.Type][]string
}

// RealizeOptions control how a property is built.
type RealizeOptions struct {
	// Setter enables writes through the property.
	Setter bool
}

// RealizeOption modifies RealizeOptions.
type RealizeOption func(*RealizeOptions)

// WithSetter enables or disables the property setter.
func WithSetter(enabled bool) RealizeOption {
	return func(o *RealizeOptions) { o.Setter = enabled }
}

// ReadOnly builds the property without setter.
func ReadOnly() RealizeOption {
	return WithSetter(false)
}

func newRealizeOptions(opts []RealizeOption) RealizeOptions {
	o := RealizeOptions{Setter: true}
	for _, fn := range opts {
		fn(&o)
	}

	return o
}

// Linker links an attribute of an instance to its Source attribute.
type Linker struct {
	spec     Spec
	property *Property
	links    map[reflect.Type][]string
}

var _ Accessor = (*Linker)(nil)

// NewLinker creates an unrealized linker.
func NewLinker(spec Spec) *Linker {
	l := &Linker{}
	l.Init(spec)

	return l
}

// Init resets the linker to spec.
func (l *Linker) Init(spec Spec) {
	if spec.Doc == "" {
		spec.Doc = "Linker to instance variable: " + spec.Source
	}

	l.spec = spec
	l.property = nil
	l.links = make(map[reflect.Type][]string)
}

// Spec returns the linker parameters.
func (l *Linker) Spec() Spec {
	return l.spec
}

// Realize builds the property. It may be called again, for instance to switch
// between read-only and read-write; already installed properties keep the
// behavior they were built with.
func (l *Linker) Realize(opts ...RealizeOption) {
	o := newRealizeOptions(opts)
	spec := l.spec

	read := spec.Read
	if read == nil {
		read = func(v any) (any, error) { return v, nil }
	}

	get := func(self Instance) (any, error) {
		v, err := self.Attr(spec.Source)
		if err != nil {
			return nil, err
		}

		return read(v)
	}

	var set func(self Instance, replacement any) error

	if o.Setter {
		switch spec.Write.mode {
		case ModeOverride:
			override := spec.Write.override
			set = func(self Instance, replacement any) error {
				return override(self, spec.Source, replacement)
			}

		default:
			transform := spec.Write.transform
			set = func(self Instance, replacement any) error {
				v := replacement
				if transform != nil {
					var err error
					if v, err = transform(self, replacement); err != nil {
						return err
					}
				}

				return self.SetAttr(spec.Source, v)
			}
		}
	}

	l.property = &Property{get: get, set: set, doc: spec.Doc, owner: l}
}

// Ready reports whether Realize has been called.
func (l *Linker) Ready() bool {
	return l.property != nil
}

// Property returns the realized property, nil before Realize.
func (l *Linker) Property() *Property {
	return l.property
}

// Install defines the property on host under name and records the link.
func (l *Linker) Install(host Host, name string) error {
	if !l.Ready() {
		return fmt.Errorf("%w: realize the linker before installing it as %q", ErrNotReady, name)
	}

	host.DefineProperty(name, l.property)

	if l.links == nil {
		l.links = make(map[reflect.Type][]string)
	}

	t := host.Type()
	l.links[t] = append(l.links[t], name)

	return nil
}

// Links returns the installed attribute names per type.
func (l *Linker) Links() map[reflect.Type][]string {
	out := make(map[reflect.Type][]string, len(l.links))
	for t, names := range l.links {
		out[t] = append([]string(nil), names...)
	}

	return out
}

// String returns a short description of the linker.
func (l *Linker) String() string {
	return fmt.Sprintf("Linker SourceVariable=%s ReadyToBeApplied=%t", l.spec.Source, l.Ready())
}
