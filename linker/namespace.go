package linker

import (
	"fmt"
	"reflect"
	"slices"
	"strings"

	"attr-linker/internal/attrs"
)

// Host receives computed properties for one Go type.
type Host interface {
	Type() reflect.Type
	DefineProperty(name string, p *Property)
}

// Class is the property table of one Go type.
type Class struct {
	typ   reflect.Type
	props map[string]*Property
	order []string
}

// Type returns the type the class describes.
func (c *Class) Type() reflect.Type {
	return c.typ
}

// DefineProperty installs p under name, replacing any previous property.
func (c *Class) DefineProperty(name string, p *Property) {
	if _, ok := c.props[name]; !ok {
		c.order = append(c.order, name)
	}

	c.props[name] = p
}

// Property returns the property installed under name.
func (c *Class) Property(name string) (*Property, bool) {
	p, ok := c.props[name]
	return p, ok
}

// Names returns the property names in definition order.
func (c *Class) Names() []string {
	return slices.Clone(c.order)
}

// Namespace maps Go types to their classes.
type Namespace struct {
	classes map[reflect.Type]*Class
}

// NewNamespace creates an empty namespace.
func NewNamespace() *Namespace {
	return &Namespace{classes: make(map[reflect.Type]*Class)}
}

var defaultNamespace = NewNamespace()

// DefaultNamespace returns the process-wide namespace.
func DefaultNamespace() *Namespace {
	return defaultNamespace
}

// Class returns the class of t, creating it on first use.
// Pointer levels are stripped, so T and *T share one class.
func (n *Namespace) Class(t reflect.Type) *Class {
	t = attrs.BaseType(t)
	if t == nil {
		panic("linker: Class called with nil type")
	}

	c, ok := n.classes[t]
	if !ok {
		c = &Class{typ: t, props: make(map[string]*Property)}
		n.classes[t] = c
	}

	return c
}

// Lookup returns the class of t if one was created.
func (n *Namespace) Lookup(t reflect.Type) (*Class, bool) {
	c, ok := n.classes[attrs.BaseType(t)]
	return c, ok
}

// Types returns every type with a class, ordered by name.
func (n *Namespace) Types() []reflect.Type {
	out := make([]reflect.Type, 0, len(n.classes))
	for t := range n.classes {
		out = append(out, t)
	}

	slices.SortFunc(out, func(a, b reflect.Type) int {
		return strings.Compare(a.String(), b.String())
	})

	return out
}

// Property returns the property defined as name on the type of obj.
func (n *Namespace) Property(obj any, name string) (*Property, bool) {
	t := attrs.TypeOf(obj)
	if t == nil {
		return nil, false
	}

	c, ok := n.classes[t]
	if !ok {
		return nil, false
	}

	return c.Property(name)
}

// Instance binds obj to the namespace.
func (n *Namespace) Instance(obj any) Instance {
	return Instance{ns: n, obj: obj}
}

// Get reads attribute name of obj, evaluating a computed property if the
// type of obj defines one.
func (n *Namespace) Get(obj any, name string) (any, error) {
	p, ok := n.Property(obj, name)
	if !ok {
		return attrs.Get(obj, name)
	}

	v, err := p.Get(n.Instance(obj))
	if err != nil {
		return nil, fmt.Errorf("%s.%s: %w", attrs.TypeOf(obj), name, err)
	}

	return v, nil
}

// Set writes attribute name of obj, going through a computed property if the
// type of obj defines one.
func (n *Namespace) Set(obj any, name string, value any) error {
	p, ok := n.Property(obj, name)
	if !ok {
		return attrs.Set(obj, name, value)
	}

	if err := p.Set(n.Instance(obj), value); err != nil {
		return fmt.Errorf("%s.%s: %w", attrs.TypeOf(obj), name, err)
	}

	return nil
}

// ClassOf returns the class of T in the default namespace.
func ClassOf[T any]() *Class {
	return defaultNamespace.Class(reflect.TypeFor[T]())
}

// Get reads attribute name of obj in the default namespace.
func Get(obj any, name string) (any, error) {
	return defaultNamespace.Get(obj, name)
}

// Set writes attribute name of obj in the default namespace.
func Set(obj any, name string, value any) error {
	return defaultNamespace.Set(obj, name, value)
}

// Instance is an object seen through a namespace. Transform and override
// functions receive it to reach the other attributes of the linked object.
type Instance struct {
	ns  *Namespace
	obj any
}

// Object returns the underlying object.
func (i Instance) Object() any {
	return i.obj
}

// Namespace returns the namespace the instance resolves attributes in.
func (i Instance) Namespace() *Namespace {
	return i.ns
}

// Attr reads attribute name of the instance.
func (i Instance) Attr(name string) (any, error) {
	return i.ns.Get(i.obj, name)
}

// SetAttr writes attribute name of the instance.
func (i Instance) SetAttr(name string, value any) error {
	return i.ns.Set(i.obj, name, value)
}
