package attrs

import (
	"fmt"
	"math"
	"reflect"
)

// Coerce adapts value to type t. A nil value yields the zero value of t.
// Besides plain assignability, conversions are allowed between types of the
// same kind and between numeric kinds, as long as the value survives the
// conversion: 300 does not fit an int8 and -1 does not fit a uint.
func Coerce(value any, t reflect.Type) (reflect.Value, error) {
	if value == nil {
		return reflect.Zero(t), nil
	}

	v := reflect.ValueOf(value)
	if v.Type().AssignableTo(t) {
		return v, nil
	}

	if convertible(v.Type(), t) {
		out := v.Convert(t)
		if !lossless(v, out) {
			return reflect.Value{}, fmt.Errorf("%w: %v overflows %s", ErrTypeMismatch, value, t)
		}

		return out, nil
	}

	return reflect.Value{}, fmt.Errorf("%w: cannot use %s as %s", ErrTypeMismatch, v.Type(), t)
}

func convertible(from, to reflect.Type) bool {
	if !from.ConvertibleTo(to) {
		return false
	}

	fk, tk := from.Kind(), to.Kind()

	switch {
	case fk == tk:
		return true
	case isInteger(fk) && (isInteger(tk) || isFloat(tk)):
		return true
	case isFloat(fk) && isFloat(tk):
		return true
	default:
		return false
	}
}

// lossless reports whether out holds the same number as v.
func lossless(v, out reflect.Value) bool {
	fk, tk := v.Kind(), out.Kind()

	switch {
	case isInteger(fk) && isInteger(tk):
		if isSigned(fk) != isSigned(tk) {
			if isSigned(fk) && v.Int() < 0 {
				return false
			}

			if isSigned(tk) && out.Int() < 0 {
				return false
			}
		}

		return out.Convert(v.Type()).Equal(v)
	case isInteger(fk) && isFloat(tk):
		f := out.Float()
		if isSigned(fk) {
			return f >= -(1<<63) && f < 1<<63 && int64(f) == v.Int()
		}

		return f < 1<<64 && uint64(f) == v.Uint()
	case isFloat(fk) && tk == reflect.Float32:
		f := v.Float()
		return math.IsInf(f, 0) || math.IsNaN(f) || math.Abs(f) <= math.MaxFloat32
	default:
		return true
	}
}

func isSigned(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	default:
		return false
	}
}

func isInteger(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	default:
		return false
	}
}

func isFloat(k reflect.Kind) bool {
	return k == reflect.Float32 || k == reflect.Float64
}
