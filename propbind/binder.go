// Package propbind installs properties that read one shared value.
//
// Unlike a linker, which reads an attribute of the instance it is accessed
// through, a Binder ignores the instance: every instance of a bound type
// observes the same source value. It suits types with a single live
// instance, or values owned by something outside the type.
package propbind

import (
	"fmt"
	"reflect"
	"slices"

	"attr-linker/internal/attrs"
	"attr-linker/linker"
)

// Converter derives the property value from the source.
type Converter func(source any) (any, error)

// Binder binds properties of several types to one source value.
type Binder struct {
	ns     *linker.Namespace
	source any
	props  map[string]*linker.Property
}

// New creates a binder installing into the default namespace.
func New(source any) *Binder {
	return NewIn(linker.DefaultNamespace(), source)
}

// NewIn creates a binder installing into ns.
func NewIn(ns *linker.Namespace, source any) *Binder {
	return &Binder{ns: ns, source: source, props: make(map[string]*linker.Property)}
}

// Source returns the shared value.
func (b *Binder) Source() any {
	return b.source
}

// CreateProp builds a read-only property evaluating convert(source).
// A nil convert returns the source itself.
func (b *Binder) CreateProp(convert Converter) *linker.Property {
	get := func(linker.Instance) (any, error) {
		if convert == nil {
			return b.source, nil
		}

		return convert(b.source)
	}

	return linker.NewProperty(get, nil, fmt.Sprintf("Bound to %T", b.source))
}

// ApplyProp installs p on t as name.
func (b *Binder) ApplyProp(p *linker.Property, t reflect.Type, name string) error {
	if attrs.BaseType(t) == nil {
		return linker.ErrNilType
	}

	class := b.ns.Class(t)
	class.DefineProperty(name, p)
	b.props[key(class.Type(), name)] = p

	return nil
}

// Bind creates a property from convert and installs it on t as name.
func (b *Binder) Bind(t reflect.Type, name string, convert Converter) error {
	return b.ApplyProp(b.CreateProp(convert), t, name)
}

// Props returns the keys of the installed properties, "<type>.<name>", sorted.
func (b *Binder) Props() []string {
	keys := make([]string, 0, len(b.props))
	for k := range b.props {
		keys = append(keys, k)
	}

	slices.Sort(keys)

	return keys
}

// Prop returns the property installed under key.
func (b *Binder) Prop(key string) (*linker.Property, bool) {
	p, ok := b.props[key]
	return p, ok
}

func (b *Binder) String() string {
	return fmt.Sprintf("<Binder Source=%v>", b.source)
}

func key(t reflect.Type, name string) string {
	return t.String() + "." + name
}
