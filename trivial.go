package transmute

import (
	"fmt"
	"reflect"
	"unsafe"

	"github.com/wippyai/transmute/errors"
)

// Trivial reports whether T may be built from arbitrary bytes. It returns
// nil for fixed-size, pointer-free, bool-free types: integers of every
// width, uintptr, floats, complex numbers, and arrays and structs of such
// types, padding included. Everything else returns a
// *errors.UnsupportedTypeError naming the disqualifying part.
//
// The check covers the mechanical half of the contract: no bit pattern
// can make the value unsafe to hold. The semantic half stays with the
// caller; a byte field with enum-like meaning passes this check and still
// decodes garbage from a hostile buffer.
//
// bool is rejected here because its encoding is constrained; the Bools
// entry points cover it.
func Trivial[T any]() error {
	return trivially[T](false)
}

// trivially runs the capability walk. allowBool admits bool fields for
// entry points that pair the type with a validity checker.
func trivially[T any](allowBool bool) error {
	t := reflect.TypeOf((*T)(nil)).Elem()
	if detail := walk(t, allowBool); detail != "" {
		return errors.UnsupportedType(t.String(), detail)
	}
	var zero T
	if unsafe.Sizeof(zero) == 0 {
		return errors.UnsupportedType(t.String(), "zero-size type")
	}
	return nil
}

// walk returns "" when t is fixed-size and pointer-free, else a detail
// string naming the disqualifying part.
func walk(t reflect.Type, allowBool bool) string {
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return ""

	case reflect.Bool:
		if allowBool {
			return ""
		}
		return "bool has a constrained encoding"

	case reflect.Array:
		if detail := walk(t.Elem(), allowBool); detail != "" {
			return "array element: " + detail
		}
		return ""

	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if detail := walk(f.Type, allowBool); detail != "" {
				return fmt.Sprintf("field %s: %s", f.Name, detail)
			}
		}
		return ""

	default:
		// Pointers, maps, chans, funcs, interfaces, slices, strings and
		// unsafe.Pointer all carry addresses a hostile buffer must never
		// forge.
		return fmt.Sprintf("kind %s is not transmutable", t.Kind())
	}
}
