package declare

import (
	"fmt"
	"reflect"

	"attr-linker/internal/attrs"
	"attr-linker/linker"
)

// Declarer is implemented by types that list their own links.
type Declarer interface {
	Links() []*Link
}

// Finalize applies the links declared by t in order. Types that do not
// implement Declarer, on value or pointer receiver, are left untouched.
// The first failing link stops the run; links applied before it stay.
func Finalize(t reflect.Type) error {
	base := attrs.BaseType(t)
	if base == nil {
		return linker.ErrNilType
	}

	d, ok := reflect.New(base).Interface().(Declarer)
	if !ok {
		return nil
	}

	for i, l := range d.Links() {
		if l == nil {
			continue
		}

		if err := l.Apply(base); err != nil {
			return fmt.Errorf("finalize %s: link %d %s on %s: %w", base, i, l.method, l.source, err)
		}
	}

	return nil
}

// Linked finalizes T and returns its type.
func Linked[T any]() (reflect.Type, error) {
	t := reflect.TypeFor[T]()
	return t, Finalize(t)
}

// MustLink finalizes T and panics on error. It is meant for init functions.
func MustLink[T any]() {
	if _, err := Linked[T](); err != nil {
		panic(err)
	}
}
