package linker

import (
	"fmt"
	"reflect"
	"slices"
	"sync"

	"github.com/sirupsen/logrus"

	"attr-linker/internal/attrs"
)

// Record is the last link a manager applied to a type.
type Record struct {
	Attr     string
	Accessor Accessor
}

// Manager is a named collection of accessors.
type Manager struct {
	accessors map[string]Accessor
	records   map[reflect.Type]Record
	tracking  bool
	defaults  []RealizeOption
	ns        *Namespace
	log       logrus.FieldLogger
}

var (
	managersMu sync.Mutex
	managers   []*Manager

	defaultMu      sync.Mutex
	defaultManager *Manager

	accessorMu   sync.RWMutex
	accessorType = reflect.TypeFor[*Linker]()

	accessorInterface = reflect.TypeFor[Accessor]()
)

// NewManager creates a manager and adds it to the process-wide list.
func NewManager(opts ...ManagerOption) *Manager {
	m := &Manager{
		accessors: make(map[string]Accessor),
		records:   make(map[reflect.Type]Record),
		tracking:  true,
		ns:        DefaultNamespace(),
		log:       logrus.StandardLogger(),
	}

	for _, fn := range opts {
		fn(m)
	}

	managersMu.Lock()
	managers = append(managers, m)
	managersMu.Unlock()

	return m
}

// Managers returns every manager created so far.
func Managers() []*Manager {
	managersMu.Lock()
	defer managersMu.Unlock()

	return slices.Clone(managers)
}

// Default returns the process-wide manager, creating it on first call.
func Default() *Manager {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	if defaultManager == nil {
		defaultManager = NewManager()
	}

	return defaultManager
}

// SetDefault replaces the process-wide manager and returns the previous one.
// A nil m makes the next Default call create a fresh manager.
func SetDefault(m *Manager) *Manager {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	prev := defaultManager
	defaultManager = m

	return prev
}

// SetAccessorType changes the accessor type every manager creates from now on.
// t must be a pointer to a struct implementing Accessor, typically a struct
// embedding Linker. The zero value of the struct must accept Init, so a
// struct embedding *Linker is rejected.
func SetAccessorType(t reflect.Type) error {
	if t == nil || t.Kind() != reflect.Pointer || t.Elem().Kind() != reflect.Struct || !t.Implements(accessorInterface) {
		return fmt.Errorf("%w: %v must be a pointer to a struct implementing linker.Accessor", ErrIncompatibleAccessor, t)
	}

	if err := tryInit(t); err != nil {
		return fmt.Errorf("%w: %v: %w", ErrIncompatibleAccessor, t, err)
	}

	accessorMu.Lock()
	accessorType = t
	accessorMu.Unlock()

	return nil
}

// AccessorType returns the accessor type managers create.
func AccessorType() reflect.Type {
	accessorMu.RLock()
	defer accessorMu.RUnlock()

	return accessorType
}

// tryInit initializes a throwaway instance of t.
func tryInit(t reflect.Type) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("init of zero value panicked: %v", r)
		}
	}()

	reflect.New(t.Elem()).Interface().(Accessor).Init(Spec{})

	return nil
}

func newAccessor(spec Spec) Accessor {
	a := reflect.New(AccessorType().Elem()).Interface().(Accessor)
	a.Init(spec)

	return a
}

// Namespace returns the namespace the manager installs into.
func (m *Manager) Namespace() *Namespace {
	return m.ns
}

// Create builds an accessor from spec and registers it as name. Unless
// NoRealize is given, the accessor is realized with the manager defaults
// followed by the per-call WithRealize options.
func (m *Manager) Create(name string, spec Spec, opts ...Option) (Accessor, error) {
	o := newCallOptions(opts)

	if _, exists := m.accessors[name]; exists && !o.overwrite {
		return nil, fmt.Errorf("%w: %q (use Overwrite to replace it)", ErrExists, name)
	}

	a := newAccessor(spec)
	m.accessors[name] = a

	if !o.noRealize {
		a.Realize(m.realizeOptions(o.realize)...)
	}

	m.log.WithFields(logrus.Fields{
		"name":     name,
		"source":   spec.Source,
		"realized": a.Ready(),
	}).Debug("linker created")

	return a, nil
}

// Lookup returns the accessor registered as name.
func (m *Manager) Lookup(name string) (Accessor, bool) {
	a, ok := m.accessors[name]
	return a, ok
}

// Names returns the registered names in lexicographic order.
func (m *Manager) Names() []string {
	names := make([]string, 0, len(m.accessors))
	for name := range m.accessors {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}

// Len returns the number of registered accessors.
func (m *Manager) Len() int {
	return len(m.accessors)
}

// RealizeAll realizes every registered accessor again.
func (m *Manager) RealizeAll(opts ...RealizeOption) {
	merged := m.realizeOptions(opts)
	for _, a := range m.accessors {
		a.Realize(merged...)
	}
}

// Apply installs the accessor registered as name onto type t under attr.
func (m *Manager) Apply(name string, t reflect.Type, attr string) error {
	a, ok := m.accessors[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrNotFound, name)
	}

	if t == nil {
		return ErrNilType
	}

	class := m.ns.Class(t)
	if err := a.Install(class, attr); err != nil {
		return err
	}

	if m.tracking {
		m.records[class.Type()] = Record{Attr: attr, Accessor: a}
	}

	m.log.WithFields(logrus.Fields{"name": name, "type": class.Type(), "attr": attr}).Debug("linker applied")

	return nil
}

// Record returns the last link applied to t, if tracking is enabled.
func (m *Manager) Record(t reflect.Type) (Record, bool) {
	r, ok := m.records[attrs.BaseType(t)]
	return r, ok
}

// Records returns a copy of the tracking table.
func (m *Manager) Records() map[reflect.Type]Record {
	out := make(map[reflect.Type]Record, len(m.records))
	for t, r := range m.records {
		out[t] = r
	}

	return out
}

// Bind creates an accessor for source and installs it on t as target.
// With Orphan the accessor is installed without being registered. Otherwise
// it is registered under Name, or under DefaultName(t, source, target).
func (m *Manager) Bind(t reflect.Type, source, target string, read ReadFunc, write Writer, opts ...Option) (Accessor, error) {
	if t == nil {
		return nil, ErrNilType
	}

	o := newCallOptions(opts)
	spec := Spec{Source: source, Read: read, Write: write, Doc: o.doc}

	if o.orphan {
		a := newAccessor(spec)
		a.Realize(m.realizeOptions(o.realize)...)

		if err := a.Install(m.ns.Class(t), target); err != nil {
			return nil, err
		}

		m.log.WithFields(logrus.Fields{"type": attrs.BaseType(t), "source": source, "target": target}).Debug("orphan linker bound")

		return a, nil
	}

	name := o.name
	if name == "" {
		name = m.DefaultName(t, source, target)
	}

	a, err := m.Create(name, spec, opts...)
	if err != nil {
		return nil, err
	}

	if err := m.Apply(name, t, target); err != nil {
		return nil, err
	}

	return a, nil
}

// DefaultName derives the registration name Bind uses when none is given.
// It is unique as long as each (type, target) pair is bound once.
func (m *Manager) DefaultName(t reflect.Type, source, target string) string {
	return fmt.Sprintf("%s-class:%s;source:%s;target:%s", AccessorType(), attrs.BaseType(t), source, target)
}

// String returns a short description of the manager.
func (m *Manager) String() string {
	return fmt.Sprintf("LinkManager LinkerClass=%s LinkersCount=%d", AccessorType(), len(m.accessors))
}

func (m *Manager) realizeOptions(extra []RealizeOption) []RealizeOption {
	out := make([]RealizeOption, 0, len(m.defaults)+len(extra))
	out = append(out, m.defaults...)

	return append(out, extra...)
}
