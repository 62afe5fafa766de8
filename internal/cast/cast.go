package cast

import "unsafe"

// Size returns sizeof(T) in bytes.
func Size[T any]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

// Align returns the alignment requirement of T in bytes.
func Align[T any]() uintptr {
	var zero T
	return unsafe.Alignof(zero)
}

// Slice views b as count elements of type T. The result aliases b. Its
// capacity is clamped to count so that appends reallocate instead of
// writing into an unclaimed tail of b.
func Slice[T any](b []byte, count int) []T {
	if count == 0 {
		return nil
	}
	return unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(b))), count)
}

// SliceCap views b as count elements of type T with a capacity of capn
// elements. capn elements must fit within cap(b) bytes. Used by the
// ownership-taking conversions, which keep the original allocation's
// whole capacity.
func SliceCap[T any](b []byte, count, capn int) []T {
	if capn == 0 {
		return nil
	}
	return unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(b))), capn)[:count]
}

// Value copies one T out of the first sizeof(T) bytes of b.
func Value[T any](b []byte) T {
	return *(*T)(unsafe.Pointer(unsafe.SliceData(b)))
}

// Bytes views the storage of *v as bytes.
func Bytes[T any](v *T) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(v)), unsafe.Sizeof(*v))
}

// SliceBytes views the storage of s as bytes, scaling both length and
// capacity by the element size.
func SliceBytes[T any](s []T) []byte {
	if cap(s) == 0 {
		return nil
	}
	size := Size[T]()
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(s))), cap(s)*size)[:len(s)*size]
}
