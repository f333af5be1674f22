package linker

import "github.com/sirupsen/logrus"

// Option modifies a Create or Bind call.
type Option func(*callOptions)

type callOptions struct {
	name      string
	doc       string
	orphan    bool
	overwrite bool
	noRealize bool
	realize   []RealizeOption
}

func newCallOptions(opts []Option) callOptions {
	var o callOptions
	for _, fn := range opts {
		fn(&o)
	}

	return o
}

// Name registers a bound linker under n instead of the derived name.
func Name(n string) Option { return func(o *callOptions) { o.name = n } }

// WithDoc documents the property created by Bind.
func WithDoc(doc string) Option { return func(o *callOptions) { o.doc = doc } }

// Orphan makes Bind install the linker without registering it in the manager.
func Orphan() Option { return func(o *callOptions) { o.orphan = true } }

// Overwrite allows replacing a linker registered under the same name.
func Overwrite() Option { return func(o *callOptions) { o.overwrite = true } }

// NoRealize leaves a created linker unrealized.
func NoRealize() Option { return func(o *callOptions) { o.noRealize = true } }

// WithRealize adds realize options applied after the manager defaults.
func WithRealize(opts ...RealizeOption) Option {
	return func(o *callOptions) { o.realize = append(o.realize, opts...) }
}

// ManagerOption configures a Manager.
type ManagerOption func(*Manager)

// WithoutTracking stops the manager from recording the last link per type.
func WithoutTracking() ManagerOption { return func(m *Manager) { m.tracking = false } }

// WithRealizeDefaults sets the realize options applied to every linker the
// manager realizes, before per-call options.
func WithRealizeDefaults(opts ...RealizeOption) ManagerOption {
	return func(m *Manager) { m.defaults = append(m.defaults, opts...) }
}

// WithNamespace makes the manager install properties into ns.
func WithNamespace(ns *Namespace) ManagerOption { return func(m *Manager) { m.ns = ns } }

// WithLogger sets the logger for debug output.
func WithLogger(l logrus.FieldLogger) ManagerOption { return func(m *Manager) { m.log = l } }
