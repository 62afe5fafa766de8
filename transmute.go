package transmute

import (
	"fmt"
	"unsafe"

	"github.com/wippyai/transmute/align"
	"github.com/wippyai/transmute/guard"
	"github.com/wippyai/transmute/internal/cast"
	"github.com/wippyai/transmute/valid"
)

// Policy selects how strictly a buffer length must fit the element size.
// The guard package documents the arithmetic behind each policy.
type Policy = guard.Policy

const (
	// SingleValue accepts only a buffer holding exactly one element.
	SingleValue = guard.SingleValue
	// Pedantic accepts a non-empty buffer holding whole elements only.
	Pedantic = guard.Pedantic
	// Exact accepts any buffer holding whole elements, including none.
	Exact = guard.Exact
	// AtLeast accepts a buffer holding at least one whole element and
	// ignores a partial trailing element.
	AtLeast = guard.AtLeast
	// Permissive accepts every buffer and yields however many whole
	// elements fit.
	Permissive = guard.Permissive
)

// view runs the borrowed-view pipeline: capability, alignment, guard.
// Empty input skips the alignment check since no storage is dereferenced.
func view[T any](b []byte, p Policy) (int, error) {
	if err := Trivial[T](); err != nil {
		return 0, err
	}
	size := cast.Size[T]()
	if len(b) > 0 {
		if err := align.Check(unsafe.Pointer(unsafe.SliceData(b)), cast.Align[T]()); err != nil {
			return 0, err
		}
	}
	return guard.Check(p, len(b), size)
}

// One reads one T from the front of b. The buffer must hold at least
// sizeof(T) bytes; extra bytes are ignored. The value is copied out, so
// the result does not alias b.
func One[T any](b []byte) (T, error) {
	var zero T
	if _, err := view[T](b, AtLeast); err != nil {
		return zero, err
	}
	return cast.Value[T](b), nil
}

// OnePedantic reads one T from b and insists that b holds exactly
// sizeof(T) bytes, rejecting both short and oversized buffers.
func OnePedantic[T any](b []byte) (T, error) {
	var zero T
	if _, err := view[T](b, SingleValue); err != nil {
		return zero, err
	}
	return cast.Value[T](b), nil
}

// Many views b as a slice of T under the given policy. The result aliases
// b: mutating the buffer mutates the view. Its capacity is clamped to its
// length so appends cannot clobber bytes beyond the accepted window.
func Many[T any](b []byte, p Policy) ([]T, error) {
	count, err := view[T](b, p)
	if err != nil {
		return nil, err
	}
	return cast.Slice[T](b, count), nil
}

// ManyPedantic views b as a slice of T, requiring at least one element
// and no trailing remainder.
func ManyPedantic[T any](b []byte) ([]T, error) {
	return Many[T](b, Pedantic)
}

// ManyPermissive views b as a slice of T, accepting any length and
// ignoring a partial trailing element. An empty result is a valid
// outcome. Misaligned storage still fails; permissiveness governs length
// only.
func ManyPermissive[T any](b []byte) ([]T, error) {
	return Many[T](b, Permissive)
}

// ManyChecked views b as a slice of a constrained type T, running c over
// every whole element before any view is produced. The capability gate is
// relaxed to admit bool fields; the checker carries the validity burden
// the gate waives.
//
// ManyChecked panics if c.Size() does not equal sizeof(T). Pairing a
// checker with the wrong type is a programming error, not input to
// validate.
func ManyChecked[T any](b []byte, p Policy, c valid.Checker) ([]T, error) {
	if err := trivially[T](true); err != nil {
		return nil, err
	}
	size := cast.Size[T]()
	if c.Size() != size {
		panic(fmt.Sprintf("transmute: checker size %d does not match element size %d", c.Size(), size))
	}
	if len(b) > 0 {
		if err := align.Check(unsafe.Pointer(unsafe.SliceData(b)), cast.Align[T]()); err != nil {
			return nil, err
		}
		if err := c.Check(b[:len(b)-len(b)%size]); err != nil {
			return nil, err
		}
	}
	count, err := guard.Check(p, len(b), size)
	if err != nil {
		return nil, err
	}
	return cast.Slice[T](b, count), nil
}

// Convert takes over b's allocation and returns it viewed as a slice of
// T. No bytes are copied: length becomes the element count the policy
// accepts and capacity becomes cap(b)/sizeof(T). The caller must not
// touch b afterwards; the byte view and the typed view share storage, and
// appends through either corrupt the other.
func Convert[T any](b []byte, p Policy) ([]T, error) {
	if err := Trivial[T](); err != nil {
		return nil, err
	}
	size := cast.Size[T]()
	capn := cap(b) / size
	if capn > 0 {
		// Capacity bytes are reachable through appends on the result, so
		// alignment matters even for an empty buffer.
		if err := align.Check(unsafe.Pointer(unsafe.SliceData(b)), cast.Align[T]()); err != nil {
			return nil, err
		}
	}
	count, err := guard.Check(p, len(b), size)
	if err != nil {
		return nil, err
	}
	return cast.SliceCap[T](b, count, capn), nil
}

// ConvertPedantic converts b's allocation to a slice of T, requiring at
// least one element and no trailing remainder.
func ConvertPedantic[T any](b []byte) ([]T, error) {
	return Convert[T](b, Pedantic)
}

// ConvertPermissive converts b's allocation to a slice of T, accepting
// any length. Bytes past the last whole element stay inside the result's
// capacity.
func ConvertPermissive[T any](b []byte) ([]T, error) {
	return Convert[T](b, Permissive)
}
