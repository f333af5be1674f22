package attrs

import (
	"fmt"
	"reflect"
)

// MapGet returns m[key]. A missing key yields def, or ErrKeyLookup when strict.
// A nil map of a known type behaves as an empty map.
func MapGet(m any, key any, def any, strict bool) (any, error) {
	v := Indirect(reflect.ValueOf(m))
	if !v.IsValid() || v.Kind() != reflect.Map {
		return nil, fmt.Errorf("%w: %T is not a mapping", ErrTypeMismatch, m)
	}

	k, err := Coerce(key, v.Type().Key())
	if err != nil {
		return nil, fmt.Errorf("key %v: %w", key, err)
	}

	e := v.MapIndex(k)
	if !e.IsValid() {
		if strict {
			return nil, fmt.Errorf("%w: %v", ErrKeyLookup, key)
		}

		return def, nil
	}

	return e.Interface(), nil
}

// MapWith returns a copy of m with key set to value. m itself is left untouched.
func MapWith(m any, key any, value any) (any, error) {
	v := Indirect(reflect.ValueOf(m))
	if !v.IsValid() || v.Kind() != reflect.Map {
		return nil, fmt.Errorf("%w: %T is not a mapping", ErrTypeMismatch, m)
	}

	k, err := Coerce(key, v.Type().Key())
	if err != nil {
		return nil, fmt.Errorf("key %v: %w", key, err)
	}

	nv, err := Coerce(value, v.Type().Elem())
	if err != nil {
		return nil, fmt.Errorf("value for key %v: %w", key, err)
	}

	out := reflect.MakeMapWithSize(v.Type(), v.Len()+1)

	iter := v.MapRange()
	for iter.Next() {
		out.SetMapIndex(iter.Key(), iter.Value())
	}

	out.SetMapIndex(k, nv)

	return out.Interface(), nil
}
