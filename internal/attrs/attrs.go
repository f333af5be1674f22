package attrs

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

// TagName is the struct tag key that renames a field for attribute lookup.
const TagName = "attr"

var (
	// ErrNoAttribute indicates that a value has no attribute with the requested name.
	ErrNoAttribute = errors.New("no such attribute")
	// ErrNotAddressable indicates that an attribute exists but cannot be written.
	ErrNotAddressable = errors.New("attribute is not addressable")
	// ErrTypeMismatch indicates that a value cannot be used where another type is expected.
	ErrTypeMismatch = errors.New("type mismatch")
	// ErrIndexOutOfRange indicates a sequence index outside the sequence bounds.
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrKeyLookup indicates a missing mapping key.
	ErrKeyLookup = errors.New("key not found")
	// ErrFormat indicates a malformed template.
	ErrFormat = errors.New("malformed template")
)

// Indirect follows pointers and interfaces down to the concrete value.
// It returns the zero Value when a nil is met on the way.
func Indirect(v reflect.Value) reflect.Value {
	for v.IsValid() && (v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface) {
		if v.IsNil() {
			return reflect.Value{}
		}

		v = v.Elem()
	}

	return v
}

// BaseType strips all pointer levels from t.
func BaseType(t reflect.Type) reflect.Type {
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	return t
}

// TypeOf returns the base type of obj, or nil for an untyped nil.
func TypeOf(obj any) reflect.Type {
	return BaseType(reflect.TypeOf(obj))
}

// FieldByAttr finds the exported struct field answering to name.
// A field tagged `attr:"name"` wins over a field literally called name.
func FieldByAttr(t reflect.Type, name string) (reflect.StructField, bool) {
	t = BaseType(t)
	if t == nil || t.Kind() != reflect.Struct {
		return reflect.StructField{}, false
	}

	for i := range t.NumField() {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}

		if tag, _, _ := strings.Cut(f.Tag.Get(TagName), ","); tag == name {
			return f, true
		}
	}

	f, ok := t.FieldByName(name)
	if !ok || !f.IsExported() {
		return reflect.StructField{}, false
	}

	return f, true
}

// Get reads attribute name of obj.
func Get(obj any, name string) (any, error) {
	v := Indirect(reflect.ValueOf(obj))
	if !v.IsValid() {
		return nil, fmt.Errorf("%w %q: value is nil", ErrNoAttribute, name)
	}

	switch v.Kind() {
	case reflect.Struct:
		fv, err := field(v, name)
		if err != nil {
			return nil, err
		}

		if !fv.CanInterface() {
			return nil, fmt.Errorf("%w: %s.%s is not accessible", ErrNoAttribute, v.Type(), name)
		}

		return fv.Interface(), nil

	case reflect.Map:
		if v.Type().Key().Kind() != reflect.String {
			break
		}

		e := v.MapIndex(reflect.ValueOf(name).Convert(v.Type().Key()))
		if !e.IsValid() {
			return nil, fmt.Errorf("%w: %s has no key %q", ErrNoAttribute, v.Type(), name)
		}

		return e.Interface(), nil
	}

	return nil, fmt.Errorf("%w: %s has no attribute %q", ErrNoAttribute, v.Type(), name)
}

// Set writes value into attribute name of obj.
// Struct fields are only writable through a pointer.
func Set(obj any, name string, value any) error {
	v := Indirect(reflect.ValueOf(obj))
	if !v.IsValid() {
		return fmt.Errorf("%w %q: value is nil", ErrNoAttribute, name)
	}

	switch v.Kind() {
	case reflect.Struct:
		fv, err := field(v, name)
		if err != nil {
			return err
		}

		if !fv.CanSet() {
			return fmt.Errorf("%w: %s.%s (pass a pointer)", ErrNotAddressable, v.Type(), name)
		}

		nv, err := Coerce(value, fv.Type())
		if err != nil {
			return fmt.Errorf("%s.%s: %w", v.Type(), name, err)
		}

		fv.Set(nv)

		return nil

	case reflect.Map:
		if v.Type().Key().Kind() != reflect.String {
			break
		}

		if v.IsNil() {
			return fmt.Errorf("%w: %s is a nil map", ErrNotAddressable, v.Type())
		}

		nv, err := Coerce(value, v.Type().Elem())
		if err != nil {
			return fmt.Errorf("%s[%q]: %w", v.Type(), name, err)
		}

		v.SetMapIndex(reflect.ValueOf(name).Convert(v.Type().Key()), nv)

		return nil
	}

	return fmt.Errorf("%w: %s has no attribute %q", ErrNoAttribute, v.Type(), name)
}

func field(v reflect.Value, name string) (reflect.Value, error) {
	f, ok := FieldByAttr(v.Type(), name)
	if !ok {
		return reflect.Value{}, fmt.Errorf("%w: %s has no attribute %q", ErrNoAttribute, v.Type(), name)
	}

	fv, err := v.FieldByIndexErr(f.Index)
	if err != nil {
		return reflect.Value{}, fmt.Errorf("%w: %s.%s: %v", ErrNoAttribute, v.Type(), name, err)
	}

	return fv, nil
}
