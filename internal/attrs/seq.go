package attrs

import (
	"fmt"
	"reflect"
)

// Index returns seq[i]. Negative indexes count from the end.
func Index(seq any, i int) (any, error) {
	v := Indirect(reflect.ValueOf(seq))
	if !v.IsValid() || (v.Kind() != reflect.Slice && v.Kind() != reflect.Array) {
		return nil, fmt.Errorf("%w: %T is not a sequence", ErrTypeMismatch, seq)
	}

	j, err := normIndex(i, v.Len())
	if err != nil {
		return nil, err
	}

	return v.Index(j).Interface(), nil
}

// PopInsert removes the element at i and then inserts value at i.
// Both steps shift elements inside the slice's own backing array, so the
// length is unchanged afterwards and every holder of the slice sees the
// update. Between the two steps the slice is one element short.
func PopInsert(seq any, i int, value any) error {
	v := Indirect(reflect.ValueOf(seq))
	if !v.IsValid() || v.Kind() != reflect.Slice {
		return fmt.Errorf("%w: %T is not a slice", ErrTypeMismatch, seq)
	}

	n := v.Len()

	j, err := normIndex(i, n)
	if err != nil {
		return err
	}

	nv, err := Coerce(value, v.Type().Elem())
	if err != nil {
		return err
	}

	// pop
	reflect.Copy(v.Slice(j, n-1), v.Slice(j+1, n))
	popped := v.Slice(0, n-1)

	// insert
	reflect.Copy(v.Slice(j+1, n), popped.Slice(j, n-1))
	v.Index(j).Set(nv)

	return nil
}

// normIndex resolves a possibly negative index against length n.
func normIndex(i, n int) (int, error) {
	j := i
	if j < 0 {
		j += n
	}

	if j < 0 || j >= n {
		return 0, fmt.Errorf("%w: index %d with length %d", ErrIndexOutOfRange, i, n)
	}

	return j, nil
}
