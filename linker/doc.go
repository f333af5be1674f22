// Package linker synthesizes computed properties that alias one attribute of
// a Go type onto a location nested inside another attribute of the same
// instance.
//
// Go types cannot grow members at run time, so computed properties are kept
// in an explicit registration table: a Namespace holds one Class per
// reflect.Type, and a Class maps attribute names to Properties. Instances are
// read and written through Namespace.Get and Namespace.Set, which fall back to
// the plain attribute (exported struct field or string-keyed map entry) when
// no property is defined under the name.
//
// # Lifecycle
//
// A Linker is built from a Spec, realized into a Property, and installed onto
// any number of (type, attribute) pairs:
//
//	l := linker.NewLinker(linker.Spec{Source: "UserData", Read: pickID})
//	l.Realize(linker.ReadOnly())
//	err := l.Install(linker.DefaultNamespace().Class(reflect.TypeFor[User]()), "ID")
//
// # Manager
//
// A Manager names linkers, applies them by name and offers Bind, the one-call
// entry point used by the presets package. Default returns the process-wide
// manager, created on first use.
//
// # Concurrency
//
// Process-wide state (default manager, manager list, accessor type) is
// guarded, but Manager and Class tables are not: register links during
// program initialization, before instances are shared between goroutines.
package linker
